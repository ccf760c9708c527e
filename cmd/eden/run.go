package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/eden/pkg/cmdcheck"
	"github.com/vertti/eden/pkg/config"
	"github.com/vertti/eden/pkg/envcheck"
	"github.com/vertti/eden/pkg/exec"
	"github.com/vertti/eden/pkg/logging"
	"github.com/vertti/eden/pkg/output"
	"github.com/vertti/eden/pkg/runner"
)

// ErrChecksFailed is returned when at least one check fails.
// The failures have already been printed, so main only sets the exit code.
var ErrChecksFailed = errors.New("checks failed")

// Injected for testing.
var (
	cmdRunner cmdcheck.CmdRunner = &cmdcheck.RealCmdRunner{}
	envGetter envcheck.EnvGetter = &envcheck.RealEnvGetter{}
	executor  exec.Executor      = &exec.RealExecutor{}
)

// execCommand holds everything after "--" on the command line.
var execCommand []string

func setup(cmd *cobra.Command, _ []string) {
	if noColor {
		output.DisableColor()
	}

	cfg := logging.DefaultConfig(cmd.ErrOrStderr())
	if verbose {
		cfg = logging.VerboseConfig(cmd.ErrOrStderr())
	}
	logging.Setup(cfg)
}

// splitExecArgs separates eden's own arguments from the command after "--".
func splitExecArgs(args []string) (own, command []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// configFlag returns --config, falling back to $EDEN_CONFIG.
func configFlag() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("EDEN_CONFIG")
}

// runCheckCommand loads the config, runs every check and prints the report.
// The returned error causes Cobra to exit with code 1.
func runCheckCommand(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(configFlag())
	if err != nil {
		return err
	}
	slog.Debug("config file", "path", path, "checks", cfg.CheckCount())

	results := runner.Run(cmd.Context(), cfg, runner.Options{
		Runner:         cmdRunner,
		Getter:         envGetter,
		Timeout:        probeTimeout,
		StrictVersions: strictVersions,
		Logger:         slog.Default(),
	})

	out := cmd.OutOrStdout()
	passed, failed := output.PrintSummary(out, results)
	output.PrintTally(out, passed, failed)

	if output.Failed(failed) {
		return ErrChecksFailed
	}

	if len(execCommand) > 0 {
		if err := executor.Exec(execCommand[0], execCommand[1:]); err != nil {
			return fmt.Errorf("exec: %w", err)
		}
	}
	return nil
}
