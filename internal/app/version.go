package app

import (
	"fmt"
	"log/slog"
)

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/ecoponto-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildTime string
}

// CurrentBuild returns the values injected at link time.
func CurrentBuild() Build {
	return Build{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// String is the form reported by /health.
func (b Build) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.BuildTime)
}

// LogValue groups the build fields in log records.
func (b Build) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.String("built", b.BuildTime),
	)
}
