package repository

import "github.com/rs/zerolog"

// CallEvent records metadata about a single remote store call.
type CallEvent struct {
	Backend   string
	Op        string
	LatencyMs int64
	Err       error
}

// Observer receives events about store calls for logging and metrics.
type Observer interface {
	OnStoreCall(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnStoreCall(CallEvent) {}

// ZerologObserver logs store calls at debug level.
type ZerologObserver struct {
	logger zerolog.Logger
}

// NewZerologObserver creates an Observer that logs events through logger.
func NewZerologObserver(logger zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{logger: logger}
}

func (o *ZerologObserver) OnStoreCall(event CallEvent) {
	o.logger.Debug().
		Str("backend", event.Backend).
		Str("op", event.Op).
		Int64("latency_ms", event.LatencyMs).
		Err(event.Err).
		Msg("store call")
}
