package brdf

import "sync"

// Tracer receives structured notifications at sample-set mutation
// points (resize, clamp, angle-attribute updates). Implementations must
// be safe for concurrent use.
type Tracer interface {
	Trace(event string, kv ...any)
}

var (
	tracerMu sync.RWMutex
	tracer   Tracer
)

// SetTracer installs a package-wide trace sink. A nil tracer disables
// tracing, which is the default.
func SetTracer(t Tracer) {
	tracerMu.Lock()
	defer tracerMu.Unlock()
	tracer = t
}

func trace(event string, kv ...any) {
	tracerMu.RLock()
	t := tracer
	tracerMu.RUnlock()
	if t != nil {
		t.Trace(event, kv...)
	}
}
