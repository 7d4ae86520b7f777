// Package version exposes the build metadata of the larkfmt binary.
package version

import (
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// Overridden at build time via -ldflags "-X larkfmt/internal/version.Version=...".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorAttrs = []color.Attribute{color.FgYellow, color.Bold}
	minorAttrs = []color.Attribute{color.FgGreen, color.Bold}
	patchAttrs = []color.Attribute{color.FgBlue, color.Bold}
)

// Info is the resolved build metadata.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

// Get returns the build metadata. Commit and date fall back to the VCS
// stamps recorded by the Go toolchain when they were not set by ldflags.
func Get() Info {
	info := Info{
		Version:   strings.TrimSpace(Version),
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.GitCommit != "" && info.BuildDate != "" {
		return info
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == "":
			info.BuildDate = s.Value
		}
	}
	return info
}

// Colored renders v with its major, minor and patch numbers coloured.
// Versions that are not dotted triples are returned unchanged.
func Colored(v string, enabled bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return v
	}
	paint := func(attrs []color.Attribute, s string) string {
		if !enabled {
			return s
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(majorAttrs, parts[0]) + "." + paint(minorAttrs, parts[1]) + "." + paint(patchAttrs, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
