// Package runner executes every check in a config and collects the results.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/vertti/eden/pkg/check"
	"github.com/vertti/eden/pkg/cmdcheck"
	"github.com/vertti/eden/pkg/config"
	"github.com/vertti/eden/pkg/envcheck"
)

// Options injects the collaborators used by the checks.
type Options struct {
	Runner         cmdcheck.CmdRunner // default: cmdcheck.RealCmdRunner
	Getter         envcheck.EnvGetter // default: envcheck.RealEnvGetter
	Timeout        time.Duration      // per version probe
	StrictVersions bool
	Logger         *slog.Logger
}

// Checkers builds one checker per configured item: binaries first, then
// environment variables, each in file order.
func Checkers(cfg *config.Config, opts Options) []check.Checker {
	opts = opts.withDefaults()

	checkers := make([]check.Checker, 0, cfg.CheckCount())
	for _, bin := range cfg.Checks.Binaries {
		checkers = append(checkers, &cmdcheck.Check{
			Spec:           bin,
			Timeout:        opts.Timeout,
			StrictVersions: opts.StrictVersions,
			Runner:         opts.Runner,
			Logger:         opts.Logger,
		})
	}
	for _, name := range cfg.Checks.Environment {
		checkers = append(checkers, &envcheck.Check{
			Name:   name,
			Getter: opts.Getter,
		})
	}
	return checkers
}

// Run executes every check sequentially and returns exactly one result per
// configured item, in the order of Checkers. A failing check never stops
// the run.
func Run(ctx context.Context, cfg *config.Config, opts Options) []check.Result {
	opts = opts.withDefaults()

	checkers := Checkers(cfg, opts)
	results := make([]check.Result, 0, len(checkers))
	for _, c := range checkers {
		results = append(results, c.Run(ctx))
	}

	passed, failed := check.Count(results)
	opts.Logger.Debug("checks complete", "total", len(results), "passed", passed, "failed", failed)
	return results
}

func (o Options) withDefaults() Options {
	if o.Runner == nil {
		o.Runner = &cmdcheck.RealCmdRunner{}
	}
	if o.Getter == nil {
		o.Getter = &envcheck.RealEnvGetter{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
