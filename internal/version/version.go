/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the fptokens CLI.
package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/fptokens/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo is the JSON shape of `fptokens version -f json`.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Get returns the version string: the ldflags value, else the module
// version from the build info, else "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// Full returns the version with a short commit suffix when known.
func Full() string {
	v := Get()
	if GitCommit == "unknown" || GitCommit == "" {
		return v
	}
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	if strings.HasSuffix(v, short) {
		return v
	}
	v += " (" + short
	if GitDirty == "dirty" {
		v += ", dirty"
	}
	return v + ")"
}

// Info returns detailed build information.
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
	}
	return bi
}
