package handlers

import "net/http"

type infoResponse struct {
	GoVersion   string          `json:"go_version"`
	Platform    string          `json:"platform"`
	Executable  string          `json:"executable"`
	Path        []string        `json:"path"`
	Environment infoEnvironment `json:"environment"`
	Timestamp   string          `json:"timestamp"`
}

type infoEnvironment struct {
	Debug       string `json:"DEBUG"`
	Port        int    `json:"PORT"`
	Host        string `json:"HOST"`
	InContainer bool   `json:"in_container"`
}

// Info returns runtime details and the effective configuration.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	path := h.Runtime.ModulePaths
	if path == nil {
		path = []string{}
	}

	writeJSON(w, http.StatusOK, infoResponse{
		GoVersion:  h.Runtime.GoVersion,
		Platform:   h.Runtime.Platform,
		Executable: h.Runtime.Executable,
		Path:       path,
		Environment: infoEnvironment{
			Debug:       h.Config.DebugRaw,
			Port:        h.Config.Port,
			Host:        h.Config.Host,
			InContainer: h.inContainer(),
		},
		Timestamp: isoTimestamp(h.Now()),
	})
}
