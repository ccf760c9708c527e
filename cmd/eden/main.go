package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/eden/pkg/cmdcheck"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath     string
	probeTimeout   time.Duration
	strictVersions bool
	verbose        bool
	noColor        bool
)

func main() {
	os.Args, execCommand = splitExecArgs(os.Args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eden [-- command [args...]]",
	Short: "Developer onboarding preflight checks",
	Long: `eden reads eden.toml, eden.yaml, eden.yml, eden.json or eden.jsonc from the
current directory and checks that every listed binary is on your PATH and
every listed environment variable is set.

Anything after "--" is executed once all checks pass.`,
	Version:          Version,
	Args:             cobra.NoArgs,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: setup,
	RunE:             runCheckCommand,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to config file (auto-detects eden.toml/yaml/json if not specified, or $EDEN_CONFIG)")
	flags.DurationVar(&probeTimeout, "timeout", cmdcheck.DefaultTimeout, "timeout for each version probe")
	flags.BoolVar(&strictVersions, "strict-versions", false, "fail binaries whose version does not satisfy their configured constraint")
	flags.BoolVar(&verbose, "verbose", false, "log config discovery and version probes to stderr")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
}
