// diagnostics_test.go — Tests for the startup snapshot.
package diagnostics

import (
	"os"
	"runtime"
	"testing"
)

func TestSnapshot(t *testing.T) {
	s := New("1.2.3", "release", true, false)
	report := s.Report()

	if report.Version != "1.2.3" {
		t.Errorf("Version = %q", report.Version)
	}
	if report.Mode != "release" {
		t.Errorf("Mode = %q", report.Mode)
	}
	if report.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", report.GoVersion)
	}
	if report.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", report.PID, os.Getpid())
	}
	if report.NumCPU < 1 {
		t.Errorf("NumCPU = %d", report.NumCPU)
	}
	if !report.SpeechAPI {
		t.Error("SpeechAPI = false, want true")
	}
	if report.SecretGate {
		t.Error("SecretGate = true, want false")
	}
	if report.StartedAt.IsZero() {
		t.Error("StartedAt is zero")
	}
	if report.Uptime == "" {
		t.Error("Uptime is empty")
	}
}

func TestSnapshotIsStatic(t *testing.T) {
	s := New("dev", "debug", false, true)
	a := s.Report()
	b := s.Report()

	// Snapshot fields never change between reports; only uptime moves.
	if a.StartedAt != b.StartedAt || a.PID != b.PID || a.Hostname != b.Hostname {
		t.Error("snapshot mutated between reports")
	}
}
