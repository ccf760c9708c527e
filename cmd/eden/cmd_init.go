package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vertti/eden/templates"
)

var initFormat string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new eden config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFormat, "format", "f", "toml",
		fmt.Sprintf("config format to generate (%s)", strings.Join(templates.Formats, ", ")))
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	filename, content, err := templates.For(initFormat)
	if err != nil {
		return err
	}

	// O_EXCL so an existing config is never overwritten.
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // config is meant to be committed
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", filename)
		}
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "🌱 Planted %s\n", filename)
	return nil
}
