package version

// Version, Commit, and Date are set via ldflags at build time.
//
//	go build -ldflags "-X github.com/evolveer/docker-python-framework/pkg/version.Version=v1.0.0
//	  -X github.com/evolveer/docker-python-framework/pkg/version.Commit=abc1234
//	  -X github.com/evolveer/docker-python-framework/pkg/version.Date=2025-01-01T00:00:00Z"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
