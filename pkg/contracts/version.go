package contracts

import (
	"fmt"
	"runtime"
)

// Version is the release of the normalizer.
const Version = "1.0.0"

// Set with -ldflags "-X campaignclean/pkg/contracts.GitCommit=..." at build time.
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Build reports the build of the running binary.
func Build() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the line printed by -version.
func (b BuildInfo) String() string {
	return fmt.Sprintf("campaignclean v%s (commit %s, built %s, %s %s)",
		b.Version, b.GitCommit, b.BuildTime, b.GoVersion, b.Platform)
}
