package digest

import (
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// debugEnabled controls whether tracing is enabled. It starts from the
// DIGEST_DEBUG env var and may be flipped while hashers are running.
var debugEnabled atomic.Bool

func init() {
	debugEnabled.Store(os.Getenv("DIGEST_DEBUG") == "1")
}

// tracer is the logger traces go to. Tests swap it out.
var tracer = newTracer()

func newTracer() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.TraceLevel)
	return l
}

// SetDebug turns tracing on or off, overriding DIGEST_DEBUG. It is safe to
// call concurrently with hashing.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// traceLog records a buffer state transition if tracing is enabled.
func traceLog(event string, blockSize, pos int) {
	if debugEnabled.Load() {
		tracer.WithFields(logrus.Fields{
			"block_size": blockSize,
			"pos":        pos,
		}).Trace(event)
	}
}
