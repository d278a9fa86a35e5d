package handlers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/evolveer/docker-python-framework/internal/config"
	"github.com/evolveer/docker-python-framework/internal/sysinfo"
)

var fixedTime = time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)

// newTestHandler returns a SystemHandler with a fixed clock, a fixed
// environment and a container marker that does not exist.
func newTestHandler(t *testing.T, environ ...string) *SystemHandler {
	t.Helper()
	return &SystemHandler{
		Config: config.Config{
			DebugRaw: "False",
			Port:     8000,
			Host:     "0.0.0.0",
		},
		Runtime: sysinfo.Info{
			GoVersion:   "go1.25.0",
			Platform:    "linux",
			Executable:  "/usr/local/bin/server",
			ModulePaths: []string{"github.com/evolveer/docker-python-framework", "github.com/go-chi/chi/v5"},
		},
		Environ:         func() []string { return environ },
		Now:             func() time.Time { return fixedTime },
		ContainerMarker: filepath.Join(t.TempDir(), ".dockerenv"),
	}
}
