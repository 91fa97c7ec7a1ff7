// Command spcomp proxies the SourcePawn compiler of the currently
// selected toolchain. It resolves the selector from ROOKUP_TOOLCHAIN or
// the rookup config, locates the installed toolchain, and spawns its
// compiler with this process's arguments and stdio.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"rookup/internal/config"
	"rookup/internal/platform"
	"rookup/internal/toolchain"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spcomp: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	f, err := config.Open()
	if err != nil {
		return 1, err
	}

	selText, source := config.CurrentToolchain(&f.Data)
	sel := toolchain.ParseSelector(selText)

	found, err := toolchain.Find(sel, f.Data.Aliases)
	if err != nil {
		return 1, fmt.Errorf("%w\ntoolchain %q was selected by %s; install it with `rookup install %s`",
			err, selText, source.Describe(), selText)
	}

	cmd := exec.Command(filepath.Join(found.Path, platform.CompilerExe()), os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The compiler ran and failed; its diagnostics already went
			// to stderr, just forward the code.
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("spawn compiler in %s: %w", found.Path, err)
	}
	return 0, nil
}
