// Package cli provides the command-line interface for tailhash.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/asteroid-belt/tailhash/internal/config"
	"github.com/asteroid-belt/tailhash/internal/hash"
	"github.com/asteroid-belt/tailhash/internal/log"
	"github.com/asteroid-belt/tailhash/pkg/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	// ErrMissingInput is returned when no input string is given.
	ErrMissingInput = errors.New("missing required argument <input-string>")

	// ErrTooManyArgs is returned when more than one positional argument is given.
	ErrTooManyArgs = errors.New("too many arguments")
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tailhash <input-string>",
		Short: "Print the tail of a string's SHA-256 digest",
		Long: fmt.Sprintf(`Print the last %d hex characters of the SHA-256 digest of a string.

The input is hashed as UTF-8 and the digest is rendered as lowercase hex.
Quote inputs that contain spaces. Put inputs that start with "-" after "--".

Exit codes:
  0  success
  1  internal error
  2  missing or extra arguments, unknown flags`, cfg.TailLength),
		Example: `  tailhash "hello world"
  tailhash ""
  tailhash -- -starts-with-dash`,
		Version:      version.Short(),
		Args:         exactlyOneInput,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, cfg, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// exactlyOneInput accepts exactly one positional argument. An empty string
// counts as an argument.
func exactlyOneInput(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingInput
	case len(args) > 1:
		return fmt.Errorf("%w: expected 1, received %d", ErrTooManyArgs, len(args))
	default:
		return nil
	}
}

// inputArgs returns args as given, except that cobra's hidden completion
// request words are moved behind "--" so they are hashed like any other input.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return append([]string{"--"}, args...)
	default:
		return args
	}
}

func runHash(cmd *cobra.Command, cfg *config.Config, input string) error {
	out := log.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	out.Println(hash.TailN(input, cfg.TailLength))
	return nil
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []fang.Option{
		fang.WithVersion(version.Short()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	}
	if version.Commit != "unknown" {
		opts = append(opts, fang.WithCommit(version.Commit))
	}

	root := newRootCmd(cfg)
	root.SetArgs(inputArgs(os.Args[1:]))
	return fang.Execute(ctx, root, opts...)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if classifyError(err) == "usage_error" {
		return ExitUsage
	}
	return ExitError
}

// classifyError determines the error type for exit code selection.
func classifyError(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrTooManyArgs):
		return "usage_error"
	case containsAny(err.Error(), "unknown flag", "unknown shorthand flag", "flag needs an argument", "invalid argument"):
		return "usage_error"
	case errors.Is(err, config.ErrInvalidConfig):
		return "config_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
