package metrics

// Recorder counts objects handed out by the creational components.
type Recorder interface {
	// RecordCreation counts one object of variant created through pattern.
	RecordCreation(pattern, variant string)
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordCreation(string, string) {}
