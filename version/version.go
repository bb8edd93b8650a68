// Package version reports what a webidl binary is and which declaration
// documents it reads.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags. Empty values fall back to the build
// metadata the Go toolchain embeds.
var (
	Version    = ""
	CommitHash = ""
	BuildTime  = ""
)

// DocumentFormats is the semver constraint on the format field of the
// declaration documents this build decodes.
const DocumentFormats = "^1.0"

const unknown = "unknown"

// Info describes the running binary.
type Info struct {
	Version         string `json:"version"`
	CommitHash      string `json:"commit_hash"`
	BuildTime       string `json:"build_time"`
	Modified        bool   `json:"modified,omitempty"`
	GoVersion       string `json:"go_version"`
	Platform        string `json:"platform"`
	DocumentFormats string `json:"document_formats"`
}

// Get returns the build information of the running binary.
func Get() Info {
	build, _ := debug.ReadBuildInfo()
	return fromBuild(build)
}

func fromBuild(build *debug.BuildInfo) Info {
	info := Info{
		Version:         Version,
		CommitHash:      CommitHash,
		BuildTime:       BuildTime,
		GoVersion:       runtime.Version(),
		Platform:        runtime.GOOS + "/" + runtime.GOARCH,
		DocumentFormats: DocumentFormats,
	}

	if build != nil {
		if info.Version == "" && build.Main.Version != "" && build.Main.Version != "(devel)" {
			info.Version = build.Main.Version
		}
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.CommitHash == "" {
					info.CommitHash = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.CommitHash == "" {
		info.CommitHash = unknown
	}
	if info.BuildTime == "" {
		info.BuildTime = unknown
	}
	return info
}

// String renders the one-line banner, e.g.
// "webidl v1.2.0 (abc1234, 2026-01-02T10:00:00Z)".
func (i Info) String() string {
	commit := i.Short()
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("webidl %s (%s, %s)", i.Version, commit, i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 && i.CommitHash != unknown {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// Details lists the remaining fields as label/value lines.
func (i Info) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Platform: %s\n", i.Platform)
	fmt.Fprintf(&sb, "Go: %s\n", i.GoVersion)
	fmt.Fprintf(&sb, "Document formats: %s\n", i.DocumentFormats)
	return sb.String()
}
