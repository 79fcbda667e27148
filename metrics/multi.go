package metrics

import "github.com/kilianp07/creational/infra/logger"

// MultiRecorder fans creations out to multiple recorders.
type MultiRecorder struct {
	Recorders []Recorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...Recorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

func (m *MultiRecorder) RecordCreation(pattern, variant string) {
	for _, r := range m.Recorders {
		r.RecordCreation(pattern, variant)
	}
}

// LogRecorder writes every creation as a debug entry.
type LogRecorder struct {
	log logger.Logger
}

func NewLogRecorder(l logger.Logger) LogRecorder { return LogRecorder{log: l} }

func (r LogRecorder) RecordCreation(pattern, variant string) {
	r.log.Debugw("object created", map[string]any{"pattern": pattern, "variant": variant})
}
