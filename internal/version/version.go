// Package version holds build-time metadata injected via -ldflags.
package version

import "runtime"

var (
	AppName        = "JackyBot"
	AppDescription = "Discord music bot with Lavalink playback, queues and lyrics"

	// Set at build time:
	//   -X .../internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)
	BuildDate = ""
	GoVersion = runtime.Version()
)
