package commitvalidate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrValidationFailed marks a run whose report was already printed.
// Callers map it to a non-zero exit status without further output.
var ErrValidationFailed = errors.New("commit message validation failed")

const (
	formatText = "text"
	formatJSON = "json"
)

// options are the command-line settings for a single run.
type options struct {
	message string
	ref     string
	strict  bool
	format  string
}

// Run validates one commit message and writes the report to stdout.
//
// The message is acquired from the first available source, in priority
// order: the --message flag, a commit-msg file given as positional
// argument, the commit resolved via --ref, and finally stdin.
func Run(stdin io.Reader, stdout io.Writer, args []string) error {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate-commit [commit-msg-file]",
		Short: "Validate a conventional commit message",
		Long: "validate-commit checks a single commit message against the conventional\n" +
			"commit grammar and enforces issue references on user-facing change types.\n" +
			"It is meant to run as a commit-msg hook or CI gate.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, posArgs []string) error {
			return run(stdin, stdout, opts, posArgs)
		},
	}

	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Commit message to validate")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Validate the message of a single commit (branch, tag, or SHA)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Report format: text or json")

	cmd.SetArgs(args)

	return cmd.Execute()
}

func run(stdin io.Reader, stdout io.Writer, opts *options, args []string) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown report format %q (expected %q or %q)", opts.format, formatText, formatJSON)
	}

	// Load configuration from .validate-commit.yml; defaults apply when
	// the file is absent.
	config, err := LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	message, err := readMessage(stdin, opts, args)
	if err != nil {
		return err
	}

	result := Validate(config, message)

	// Strict mode escalates warnings to a failing exit status without
	// touching the Valid flag.
	failing := !result.Valid || (opts.strict && len(result.Warnings) > 0)

	if opts.format == formatJSON {
		report, renderErr := renderJSONReport(result)
		if renderErr != nil {
			return renderErr
		}

		fmt.Fprintln(stdout, report)
	} else {
		fmt.Fprint(stdout, renderTextReport(result, failing, config.IssueProject))
	}

	if failing {
		return ErrValidationFailed
	}

	return nil
}

// readMessage acquires the commit message text from the highest-priority
// available source. Unreadable sources are fatal: the validator is never
// invoked for them.
func readMessage(stdin io.Reader, opts *options, args []string) (string, error) {
	if opts.message != "" {
		return opts.message, nil
	}

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read commit message file %q: %w", args[0], err)
		}

		return string(data), nil
	}

	if opts.ref != "" {
		return readCommitMessage(".", opts.ref)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read commit message from stdin: %w", err)
	}

	return string(data), nil
}
