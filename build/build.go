// Package build reports what binary is running. Release builds inject a JSON
// document with -ldflags; development builds fall back to the metadata the
// Go toolchain embeds.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	BuildTime string `json:"build_time"` //nolint:tagliatelle
	GoVersion string `json:"go_version"` //nolint:tagliatelle
}

// LogValue implements slog.LogValuer.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", i.Version),
		slog.String("git_commit", i.GitCommit),
		slog.String("build_time", i.BuildTime),
		slog.String("go_version", i.GoVersion),
	)
}

// Parse deserializes injected build metadata.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON", "data", js, "error", err)

		return nil, false
	}

	return &info, true
}

// Current returns the injected metadata if js parses, otherwise whatever
// runtime/debug knows about the running binary.
func Current(js string) Info {
	if info, ok := Parse(js); ok {
		return *info
	}

	info := Info{Version: "devel"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = bi.GoVersion

	if bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		}
	}

	return info
}
