package session

import (
	"testing"
	"time"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
)

// TestSessionDatasetLifecycle tests the single-dataset slot semantics
func TestSessionDatasetLifecycle(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Create()

	if _, ok := s.Dataset(); ok {
		t.Error("Fresh session should have no dataset")
	}

	first := &dataset.Table{Name: "first.csv", Headers: []string{"A"}}
	s.SetDataset(first)
	got, ok := s.Dataset()
	if !ok || got.Name != "first.csv" {
		t.Fatalf("Expected first.csv, got %v (ok=%v)", got, ok)
	}

	// A new import replaces the slot wholesale
	second := &dataset.Table{Name: "second.xlsx", Headers: []string{"B"}}
	s.SetDataset(second)
	got, _ = s.Dataset()
	if got.Name != "second.xlsx" {
		t.Errorf("Expected second.xlsx after replacement, got %s", got.Name)
	}

	s.ClearDataset()
	if _, ok := s.Dataset(); ok {
		t.Error("Dataset should be gone after ClearDataset")
	}
}

// TestManagerGetOrCreate tests session resumption and fallback creation
func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager(time.Hour)

	created := m.Create()
	resumed := m.GetOrCreate(created.ID)
	if resumed.ID != created.ID {
		t.Errorf("Expected to resume session %s, got %s", created.ID, resumed.ID)
	}

	fresh := m.GetOrCreate(core.SessionID("unknown-session-id"))
	if fresh.ID == created.ID {
		t.Error("Unknown ID should create a fresh session")
	}
	if m.Count() != 2 {
		t.Errorf("Expected 2 live sessions, got %d", m.Count())
	}
}

// TestSweepReapsIdleSessions tests the TTL sweep
func TestSweepReapsIdleSessions(t *testing.T) {
	m := NewManager(50 * time.Millisecond)

	idle := m.Create()
	idle.touch(time.Now().Add(-time.Second))
	active := m.Create()

	reaped := m.Sweep()
	if reaped != 1 {
		t.Fatalf("Expected 1 reaped session, got %d", reaped)
	}
	if _, ok := m.Get(idle.ID); ok {
		t.Error("Idle session should be gone after sweep")
	}
	if _, ok := m.Get(active.ID); !ok {
		t.Error("Active session should survive the sweep")
	}
}

// TestGetRefreshesIdleTimer tests that lookups keep a session alive
func TestGetRefreshesIdleTimer(t *testing.T) {
	m := NewManager(50 * time.Millisecond)

	s := m.Create()
	s.touch(time.Now().Add(-time.Second))

	// A Get right before the sweep refreshes lastSeen
	if _, ok := m.Get(s.ID); !ok {
		t.Fatal("Session should still exist")
	}
	if reaped := m.Sweep(); reaped != 0 {
		t.Errorf("Refreshed session should not be reaped, got %d", reaped)
	}
}
