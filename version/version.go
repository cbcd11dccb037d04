// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version exposes the command name and build information.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// CmdName returns the base name of the currently running binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Version returns a human-readable version string derived from the
// binary's embedded build information.
func Version() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s", CmdName())

	info, ok := debug.ReadBuildInfo()
	if !ok {
		sb.WriteString(" (no build info)")
		return sb.String()
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		fmt.Fprintf(&sb, " %s", info.Main.Version)
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			fmt.Fprintf(&sb, " (%s)", rev)
			break
		}
	}
	fmt.Fprintf(&sb, ", built with %s", info.GoVersion)

	return sb.String()
}
