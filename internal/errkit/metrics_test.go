package errkit

import (
	"testing"
	"time"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()

	m.Record("events", InvalidEventType)
	m.Record("events", RegistryFull)
	m.Record("civ", RegistryFull)

	stats := m.GetStats()

	if stats.TotalErrors != 3 {
		t.Errorf("Expected TotalErrors=3, got %d", stats.TotalErrors)
	}
	if stats.ErrorsByKind[RegistryFull] != 2 {
		t.Errorf("Expected ErrorsByKind[RegistryFull]=2, got %d", stats.ErrorsByKind[RegistryFull])
	}
	if stats.ErrorsByKind[InvalidEventType] != 1 {
		t.Errorf("Expected ErrorsByKind[InvalidEventType]=1, got %d", stats.ErrorsByKind[InvalidEventType])
	}
	if stats.ErrorsBySource["events"] != 2 {
		t.Errorf("Expected ErrorsBySource[events]=2, got %d", stats.ErrorsBySource["events"])
	}
	if stats.LastErrorMsg != string(RegistryFull) {
		t.Errorf("Expected LastErrorMsg=%q, got %q", RegistryFull, stats.LastErrorMsg)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.Record("civ", NoCivGenerated)

	if m.GetStats().TotalErrors != 1 {
		t.Fatalf("expected 1 error recorded")
	}

	m.Reset()
	stats := m.GetStats()

	if stats.TotalErrors != 0 {
		t.Errorf("Expected TotalErrors=0 after reset, got %d", stats.TotalErrors)
	}
	if len(stats.ErrorsByKind) != 0 {
		t.Errorf("Expected ErrorsByKind to be empty after reset, got %d items", len(stats.ErrorsByKind))
	}
	if !stats.LastError.IsZero() {
		t.Error("Expected LastError to be zero after reset")
	}
}

func TestMetrics_ErrorRate(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 10; i++ {
		m.Record("test", RegistryFull)
	}

	time.Sleep(50 * time.Millisecond)

	stats := m.GetStats()
	if stats.ErrorRate <= 0 {
		t.Errorf("Expected ErrorRate > 0, got %f", stats.ErrorRate)
	}
	if stats.TotalErrors != 10 {
		t.Errorf("Expected TotalErrors=10, got %d", stats.TotalErrors)
	}
}

func TestGlobalMetrics(t *testing.T) {
	ResetGlobalMetrics()

	RecordGlobal("events", RegistryFull)
	RecordGlobal("civ", NoCivGenerated)

	stats := GetGlobalStats()
	if stats.TotalErrors != 2 {
		t.Errorf("Expected TotalErrors=2, got %d", stats.TotalErrors)
	}
	if stats.ErrorsBySource["events"] != 1 {
		t.Errorf("Expected ErrorsBySource[events]=1, got %d", stats.ErrorsBySource["events"])
	}

	ResetGlobalMetrics()
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	m := NewMetrics()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.Record("test", RegistryFull)
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	stats := m.GetStats()
	if stats.TotalErrors != 1000 {
		t.Errorf("Expected TotalErrors=1000, got %d", stats.TotalErrors)
	}
}
