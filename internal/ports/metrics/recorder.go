package metrics

// Recorder receives counters from the feed and write paths.
type Recorder interface {
	PostCreated()
	WriteRejected(reason string)
	FeedServed(kind string)
	FeedFailed(kind, reason string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) PostCreated()              {}
func (Nop) WriteRejected(string)      {}
func (Nop) FeedServed(string)         {}
func (Nop) FeedFailed(string, string) {}
