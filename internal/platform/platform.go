// Package platform identifies the running platform for drop-server
// file selection and locates the compiler executable name for it.
package platform

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Target returns the platform identifier used in drop-server archive
// file names (e.g. "linux" in "sourcemod-1.12.0-git7192-linux.tar.gz").
func Target() string {
	return runtime.GOOS
}

// CompilerExe returns the file name of the SourcePawn compiler
// executable appropriate for this target: spcomp64 on 64-bit targets,
// spcomp otherwise, with the ".exe" suffix on windows.
func CompilerExe() string {
	stem := "spcomp"
	if strconv.IntSize == 64 {
		stem = "spcomp64"
	}
	if runtime.GOOS == "windows" {
		return stem + ".exe"
	}
	return stem
}

// IsCompiler reports whether fileName is the compiler executable for
// this target.
func IsCompiler(fileName string) bool {
	return fileName == CompilerExe()
}

// Info describes the host for diagnostics output.
type Info struct {
	OS      string
	Arch    string
	Distro  string
	Version string
}

// String renders the host description on one line.
func (i *Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", i.OS, i.Arch)
	if i.Distro != "" {
		fmt.Fprintf(&b, " (%s", i.Distro)
		if i.Version != "" {
			fmt.Fprintf(&b, " %s", i.Version)
		}
		b.WriteString(")")
	}
	return b.String()
}

// Describe returns host information for display. OS and architecture
// come from the runtime; distribution details come from gopsutil and
// degrade gracefully to empty fields when detection fails.
func Describe(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		// Detection failure is not fatal; OS/arch alone is enough.
		return info, nil
	}

	info.Distro = strings.TrimSpace(platform)
	info.Version = strings.TrimSpace(version)
	return info, nil
}
