// Package diagnostics captures a snapshot of process/environment metadata
// at startup for the /diagnostics endpoint (LK-13).
//
// The snapshot is taken once — it reflects conditions at boot, which is what
// you want when debugging "why is this instance behaving differently".
// Uptime is the only field computed per request.
package diagnostics

import (
	"os"
	"runtime"
	"time"
)

// Snapshot is the startup diagnostics record.
type Snapshot struct {
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	PID        int       `json:"pid"`
	Hostname   string    `json:"hostname"`
	NumCPU     int       `json:"num_cpu"`
	Mode       string    `json:"mode"`
	StartedAt  time.Time `json:"started_at"`
	SpeechAPI  bool      `json:"speech_api_configured"`
	SecretGate bool      `json:"access_secret_configured"`
}

// Report is a Snapshot plus the computed uptime, as served over HTTP.
type Report struct {
	Snapshot
	Uptime string `json:"uptime"`
}

// Service holds the one-time snapshot.
type Service struct {
	snapshot Snapshot
}

// New captures the snapshot. Call once at startup, after config is loaded.
func New(version, mode string, speechConfigured, secretConfigured bool) *Service {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return &Service{
		snapshot: Snapshot{
			Version:    version,
			GoVersion:  runtime.Version(),
			PID:        os.Getpid(),
			Hostname:   hostname,
			NumCPU:     runtime.NumCPU(),
			Mode:       mode,
			StartedAt:  time.Now(),
			SpeechAPI:  speechConfigured,
			SecretGate: secretConfigured,
		},
	}
}

// Report returns the snapshot with current uptime.
func (s *Service) Report() Report {
	return Report{
		Snapshot: s.snapshot,
		Uptime:   time.Since(s.snapshot.StartedAt).Round(time.Second).String(),
	}
}
