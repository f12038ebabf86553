// Package version reports the build version of the urlmap binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time with
// -ldflags "-X github.com/gidocs/urlmap/internal/version.Version=v1.2.3 -X github.com/gidocs/urlmap/internal/version.Commit=abc1234".
// Unset values are derived from the binary's VCS stamp.
var (
	Version = ""
	Commit  = ""
)

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	Version, Commit = derive(Version, Commit, settings, time.Now())
}

// derive fills missing version and commit values from VCS build settings.
// Explicit values always win. Without a VCS stamp the version is dev-<now>
// and the commit is "unknown".
func derive(version, commit string, settings []debug.BuildSetting, now time.Time) (string, string) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			vcs[s.Key] = s.Value
		}
	}

	if commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			commit = rev[:min(len(rev), 7)]
			if vcs["vcs.modified"] == "true" {
				commit += "-dirty"
			}
		} else {
			commit = "unknown"
		}
	}

	if version == "" {
		// Build info has no tags; the commit date is the best stand-in
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}

	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
