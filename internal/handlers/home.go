package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/evolveer/docker-python-framework/pkg/version"
)

//go:embed templates/home.html
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/home.html"))

type homeData struct {
	CurrentTime string
	GoVersion   string
	Host        string
	Port        int
	Debug       bool
	InContainer bool
	Version     string
}

// Home renders the landing page.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		CurrentTime: h.Now().UTC().Format(homeLayout),
		GoVersion:   h.Runtime.GoVersion,
		Host:        h.Config.Host,
		Port:        h.Config.Port,
		Debug:       h.Config.Debug,
		InContainer: h.inContainer(),
		Version:     version.Version,
	}

	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, data); err != nil {
		slog.Error("rendering home page", "error", err)
		WriteInternalError(w, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
