package codec

import "log"

// debug gates verbose per-field tracing during decode. It is off by
// default; tests and callers that need to see why a decode failed can
// flip it with SetDebug.
var debug = false

// SetDebug turns the codec's internal decode tracing on or off. It is not
// safe to call concurrently with an in-flight Decode.
func SetDebug(on bool) {
	debug = on
}

func logf(format string, args ...interface{}) {
	if debug {
		log.Printf(format, args...)
	}
}
