package handlers

import (
	"net/http"
	"strings"
)

// sensitiveSubstrings marks environment keys that are never exposed.
var sensitiveSubstrings = []string{"PASSWORD", "SECRET", "KEY", "TOKEN"}

type envResponse struct {
	EnvironmentVariables map[string]string `json:"environment_variables"`
	Count                int               `json:"count"`
	Timestamp            string            `json:"timestamp"`
}

// Env returns the process environment minus sensitive-looking keys.
func (h *SystemHandler) Env(w http.ResponseWriter, r *http.Request) {
	vars := FilterEnv(h.Environ())
	writeJSON(w, http.StatusOK, envResponse{
		EnvironmentVariables: vars,
		Count:                len(vars),
		Timestamp:            isoTimestamp(h.Now()),
	})
}

// FilterEnv turns "KEY=value" entries into a map, dropping every key that
// contains a sensitive substring in any letter case. Entries without a key
// are skipped. A later duplicate key wins.
func FilterEnv(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" || IsSensitive(key) {
			continue
		}
		vars[key] = value
	}
	return vars
}

// IsSensitive reports whether key names something that looks like a credential.
func IsSensitive(key string) bool {
	upper := strings.ToUpper(key)
	for _, s := range sensitiveSubstrings {
		if strings.Contains(upper, s) {
			return true
		}
	}
	return false
}
