package metrics

import (
	"sync"
	"time"
)

type operationKey struct {
	resource  string
	operation string
}

type operationStats struct {
	calls  int
	errors int
}

// Recorder captures lightweight, in-memory counts of store operations alongside
// the OpenTelemetry instruments when they are configured.
type Recorder struct {
	mu          sync.Mutex
	ops         map[operationKey]*operationStats
	rejections  map[string]int
	lastLatency time.Duration
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		ops:        make(map[operationKey]*operationStats),
		rejections: make(map[string]int),
		otel:       otel,
	}
}

// RecordOperation counts a resource operation and whether it failed.
func (r *Recorder) RecordOperation(resource, operation string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.ops[operationKey{resource, operation}]
	if !ok {
		stats = &operationStats{}
		r.ops[operationKey{resource, operation}] = stats
	}
	stats.calls++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOperation(resource, operation, err)
	}
}

// RecordValidationRejection counts a payload rejected by a business rule.
func (r *Recorder) RecordValidationRejection(resource string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rejections[resource]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRejection(resource)
	}
}

// Snapshot is a copy of the counts for one resource operation.
type Snapshot struct {
	Calls  int
	Errors int
}

// Snapshot returns the current counts for a resource operation.
func (r *Recorder) Snapshot(resource, operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.ops[operationKey{resource, operation}]; ok {
		return Snapshot{Calls: stats.calls, Errors: stats.errors}
	}
	return Snapshot{}
}

// ValidationRejections returns how many payloads were rejected for a resource.
func (r *Recorder) ValidationRejections(resource string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejections[resource]
}

// LastRequestLatency returns the duration of the most recently recorded HTTP request.
func (r *Recorder) LastRequestLatency() time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastLatency
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}
