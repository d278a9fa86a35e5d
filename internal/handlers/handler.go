package handlers

import (
	"os"
	"time"

	"github.com/evolveer/docker-python-framework/internal/config"
	"github.com/evolveer/docker-python-framework/internal/sysinfo"
)

// ServiceName identifies this service in health responses.
const ServiceName = "docker-python-framework"

// SystemHandler serves the landing page and the system API. Its fields are
// set once at construction and only read afterwards, so one value is safe to
// share across concurrent requests.
type SystemHandler struct {
	Config  config.Config
	Runtime sysinfo.Info

	// Environ returns the process environment as "KEY=value" entries.
	Environ func() []string
	// Now is the request-time clock.
	Now func() time.Time
	// ContainerMarker is the path whose existence means we run in a container.
	ContainerMarker string
}

// NewSystemHandler returns a SystemHandler backed by the real process
// environment, wall clock and container marker.
func NewSystemHandler(cfg config.Config) *SystemHandler {
	return &SystemHandler{
		Config:          cfg,
		Runtime:         sysinfo.Collect(),
		Environ:         os.Environ,
		Now:             time.Now,
		ContainerMarker: sysinfo.ContainerMarker,
	}
}

func (h *SystemHandler) inContainer() bool {
	return sysinfo.InContainer(h.ContainerMarker)
}
