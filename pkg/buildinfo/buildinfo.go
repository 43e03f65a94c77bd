// Package buildinfo provides build metadata for the jet2my binary.
//
// Release builds inject version, commit and date through -ldflags; dev
// builds from a git checkout fall back to the VCS settings embedded by
// runtime/debug.ReadBuildInfo. Set() should be called from main()
// before any call to Get().
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Info holds the resolved build metadata.
type Info struct {
	Version   string // version tag (e.g. "v1.2.3"), or "dev"
	Commit    string // full git commit hash, or "unknown"
	Date      string // build date in RFC3339, or "unknown"
	Modified  bool   // true if the working tree had uncommitted changes
	GoVersion string // Go version used for the build
}

// String renders the single version line the CLI prints.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("jet2my %s (%s %s) %s", i.Version, commit, i.Date, i.GoVersion)
}

var (
	// Populated by Set() from main using ldflags.
	ldflagsVersion string
	ldflagsCommit  string
	ldflagsDate    string

	once   sync.Once
	cached Info
)

// Set stores the compile-time injected values from -ldflags.
//
// Example:
//
//	go build -ldflags "-X main.version=v1.2.3 -X main.commit=$(git rev-parse HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func Set(version, commit, date string) {
	ldflagsVersion = version
	ldflagsCommit = commit
	ldflagsDate = date
}

// Get returns the resolved build info, preferring ldflags-injected
// values over the VCS settings. The result is computed once and cached.
func Get() Info {
	once.Do(func() {
		cached = resolve()
	})
	return cached
}

func resolve() Info {
	info := Info{
		Version: "dev",
		Commit:  "unknown",
		Date:    "unknown",
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				info.Date = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	// The release pipeline's values win when present.
	if ldflagsVersion != "" {
		info.Version = ldflagsVersion
	}
	if ldflagsCommit != "" {
		info.Commit = ldflagsCommit
	}
	if ldflagsDate != "" {
		info.Date = ldflagsDate
	}

	return info
}
