// Package errkit defines the generator's closed set of error kinds and
// tracks how often each fires, so a long-running caller can tell a burst
// of RegistryFull drops from a one-off InvalidEventType typo.
package errkit

import (
	"errors"
	"sync"
	"time"

	"github.com/deepfield/genesis/internal/logkit"
)

var metricsLog = logkit.WithComponent("ErrorMetrics")

// Kind is the generator's closed set of error conditions. These never
// panic; fallible operations return the matching sentinel error (see Err)
// alongside their result instead.
type Kind string

const (
	// InvalidEventType: an unknown event type was passed to the event
	// engine's emit path. No side effects occur.
	InvalidEventType Kind = "invalid_event_type"
	// RegistryFull: a fixed-capacity registry (events, anomalies,
	// civilizations) was already at capacity. The triggering mutation
	// still applies; only the record is dropped.
	RegistryFull Kind = "registry_full"
	// NoCivGenerated: alien_check_planet's probability roll failed, so
	// no civilization was produced for an encounter.
	NoCivGenerated Kind = "no_civ_generated"
)

// Sentinel errors, one per Kind, for callers that want a real Go error
// rather than a (T, bool) result. Compare with errors.Is.
var (
	ErrInvalidEventType = errors.New(string(InvalidEventType))
	ErrRegistryFull     = errors.New(string(RegistryFull))
	ErrNoCivGenerated   = errors.New(string(NoCivGenerated))
)

// Err returns the sentinel error for kind.
func Err(kind Kind) error {
	switch kind {
	case InvalidEventType:
		return ErrInvalidEventType
	case RegistryFull:
		return ErrRegistryFull
	case NoCivGenerated:
		return ErrNoCivGenerated
	default:
		return errors.New(string(kind))
	}
}

// Metrics tracks error statistics by kind and source component.
type Metrics struct {
	mu             sync.RWMutex
	TotalErrors    int64
	ErrorsByKind   map[Kind]int64
	ErrorsBySource map[string]int64
	LastError      time.Time
	LastErrorMsg   string
	startTime      time.Time
}

// NewMetrics creates a new error metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		ErrorsByKind:   make(map[Kind]int64),
		ErrorsBySource: make(map[string]int64),
		startTime:      time.Now(),
	}
}

// Record records one occurrence of kind, attributed to source (typically
// a component name like "events" or "civ").
func (m *Metrics) Record(source string, kind Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalErrors++
	m.ErrorsByKind[kind]++
	m.ErrorsBySource[source]++
	m.LastError = time.Now()
	m.LastErrorMsg = string(kind)

	metricsLog.Debug("error recorded: source=%s, kind=%s, total=%d", source, kind, m.TotalErrors)
}

// GetStats returns a snapshot of current error statistics.
func (m *Metrics) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	errorsByKind := make(map[Kind]int64, len(m.ErrorsByKind))
	for k, v := range m.ErrorsByKind {
		errorsByKind[k] = v
	}

	errorsBySource := make(map[string]int64, len(m.ErrorsBySource))
	for k, v := range m.ErrorsBySource {
		errorsBySource[k] = v
	}

	return Stats{
		TotalErrors:    m.TotalErrors,
		ErrorsByKind:   errorsByKind,
		ErrorsBySource: errorsBySource,
		LastError:      m.LastError,
		LastErrorMsg:   m.LastErrorMsg,
		Uptime:         time.Since(m.startTime),
		ErrorRate:      m.calculateErrorRate(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalErrors = 0
	m.ErrorsByKind = make(map[Kind]int64)
	m.ErrorsBySource = make(map[string]int64)
	m.LastError = time.Time{}
	m.LastErrorMsg = ""
	m.startTime = time.Now()

	metricsLog.Info("error metrics reset")
}

func (m *Metrics) calculateErrorRate() float64 {
	uptime := time.Since(m.startTime)
	if uptime == 0 {
		return 0
	}
	return float64(m.TotalErrors) / uptime.Minutes()
}

// Stats is a point-in-time snapshot of Metrics.
type Stats struct {
	TotalErrors    int64
	ErrorsByKind   map[Kind]int64
	ErrorsBySource map[string]int64
	LastError      time.Time
	LastErrorMsg   string
	Uptime         time.Duration
	ErrorRate      float64 // errors per minute
}

var globalMetrics = NewMetrics()

// RecordGlobal records an error to the package-level global metrics.
func RecordGlobal(source string, kind Kind) {
	globalMetrics.Record(source, kind)
}

// GetGlobalStats returns the package-level global error statistics.
func GetGlobalStats() Stats {
	return globalMetrics.GetStats()
}

// ResetGlobalMetrics clears the package-level global error metrics.
func ResetGlobalMetrics() {
	globalMetrics.Reset()
}

// LogStats logs the current error statistics at info level.
func (m *Metrics) LogStats() {
	stats := m.GetStats()

	metricsLog.Info("error statistics:")
	metricsLog.Info("  total errors: %d", stats.TotalErrors)
	metricsLog.Info("  error rate: %.2f errors/min", stats.ErrorRate)
	metricsLog.Info("  uptime: %v", stats.Uptime)

	for kind, count := range stats.ErrorsByKind {
		metricsLog.Info("  %s: %d", kind, count)
	}

	if !stats.LastError.IsZero() {
		metricsLog.Info("  last error: %v (%s)", stats.LastError, stats.LastErrorMsg)
	}
}

// LogGlobalStats logs the package-level global error statistics.
func LogGlobalStats() {
	globalMetrics.LogStats()
}
