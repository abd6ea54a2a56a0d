// Package version provides build version information.
package version

import (
	"runtime/debug"
	"strings"
)

// Version returns the module version from embedded build info followed by the VCS revision if
// the binary was built from a repository checkout.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return format(info)
}

func format(info *debug.BuildInfo) string {
	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return version
	}

	var out strings.Builder
	out.WriteString(version)
	out.WriteString(" (")
	out.WriteString(revision[:min(len(revision), 12)])
	if modified {
		out.WriteString(", modified")
	}
	out.WriteString(")")
	return out.String()
}
