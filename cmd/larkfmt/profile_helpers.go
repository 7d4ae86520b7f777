package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"larkfmt/internal/prof"
)

// setupProfiling reads the profiling flags and starts the requested
// profilers. The returned cleanup stops them and writes the heap profile.
func setupProfiling(cmd *cobra.Command) (func(failed bool), error) {
	flags := cmd.Root().PersistentFlags()

	var cfg prof.Config
	var err error
	if cfg.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.ExecTrace, err = flags.GetString("exec-trace"); err != nil {
		return nil, fmt.Errorf("failed to get exec-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return func(bool) {}, nil
	}

	session, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	return func(bool) {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(errOut, "profile: %v\n", err)
		}
	}, nil
}
