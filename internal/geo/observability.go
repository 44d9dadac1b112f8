package geo

import (
	"fmt"
	"io"
	"time"
)

// LookupEvent records metadata about a single Locate call.
type LookupEvent struct {
	RequestID string
	Endpoint  string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about geolocation lookups.
type Observer interface {
	OnLookupComplete(event LookupEvent)
}

// LogObserver writes lookup events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnLookupComplete(event LookupEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] geo_lookup id=%s endpoint=%s attempts=%d latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Endpoint, event.Attempts, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnLookupComplete(LookupEvent) {}
