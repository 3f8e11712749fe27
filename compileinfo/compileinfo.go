// Package compileinfo reports which build of the statistics generator is
// running, so that published artifacts can be traced back to a commit.
package compileinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

type CompileInfo struct {
	Module     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Module == "" {
		return "Build information is unavailable for this binary."
	}

	var details []string
	details = append(details, c.GoVersion)
	if c.Commit != "" {
		details = append(details, "commit "+c.Commit)
	}
	if c.CommitTime != "" {
		details = append(details, "committed "+c.CommitTime)
	}
	if c.Modified {
		details = append(details, "with uncommitted changes")
	}

	return fmt.Sprintf("%s %s (%s)", c.Module, c.Version, strings.Join(details, ", "))
}

// Get reads the build settings embedded by the Go toolchain.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Module:    z.Main.Path,
		Version:   z.Main.Version,
	}
	if out.Module == "" {
		out.Module = z.Path
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}
