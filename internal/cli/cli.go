// Package cli builds the wordshare command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/wordshare/internal/logger"
	"github.com/bastiangx/wordshare/pkg/config"
	"github.com/bastiangx/wordshare/pkg/engine"
	"github.com/bastiangx/wordshare/pkg/report"
	"github.com/bastiangx/wordshare/pkg/shword"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const gh = "https://github.com/bastiangx/wordshare"

// App carries the process level values the command runs with.
type App struct {
	Name    string
	Version string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// usageError is a command line mistake. It is followed by a hint to
// the help.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

type flags struct {
	initial        int
	punctLikeSpace bool
	sameNumbers    bool
	top            int
	uppercasing    bool
	format         string
	configPath     string
	debug          bool
	initConfig     bool
	usage          bool
	version        bool
}

// NewRootCommand returns the wordshare command.
func NewRootCommand(app App) *cobra.Command {
	var f flags
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   app.Name + " [OPTION]... FILES",
		Short: "Prints a list of shared words between text files",
		Long: app.Name + ` prints a list of shared words between text files.

A word is shared when it occurs in at least two of the files. Each line of
the report shows in which files the word occurs ('x' for present, '-' for
absent, in the order of the files), the total number of occurrences and the
word. Words are ranked by number of files, then number of occurrences, then
in lexicographic order.

A file named - stands for the standard input.

` + fmt.Sprintf("Between 2 and %d files are expected.\n", shword.PatternWidth) +
			fmt.Sprintf("If a word occurs more than %d times, %s is shown instead.", ^uint64(0), shword.Many),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, &f, args)
		},
	}
	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	fl := cmd.Flags()
	fl.IntVarP(&f.initial, "initial", "i", defaults.Scan.Initial,
		"The number of significant characters in a word. Longer words are cut")
	fl.BoolVarP(&f.punctLikeSpace, "punctuation-like-space", "p", defaults.Scan.PunctuationLikeSpace,
		"Treats punctuation characters as space characters")
	fl.BoolVarP(&f.sameNumbers, "same-numbers", "s", defaults.Report.SameNumbers,
		"Displays words that share the same numbers as the last word displayed in the limit")
	fl.IntVarP(&f.top, "top", "t", defaults.Report.Top,
		"The number of words to produce on the standard output. 0 means all the words")
	fl.BoolVarP(&f.uppercasing, "uppercasing", "u", defaults.Scan.Uppercasing,
		"Converts all read lowercase characters to their uppercase form")
	fl.StringVarP(&f.format, "format", "f", defaults.Report.Format,
		"Report format: text or msgpack")
	fl.StringVarP(&f.configPath, "config", "c", "",
		"Path to a TOML config file (default: user config dir)")
	fl.BoolVarP(&f.debug, "debug", "d", false, "Toggle debug mode")
	fl.BoolVar(&f.initConfig, "init-config", false, "Writes a default config file and exits")
	fl.BoolVar(&f.usage, "usage", false, "Displays the expected syntax and exits")
	fl.BoolVar(&f.version, "version", false, "Displays version information and exits")
	return cmd
}

// Execute runs the command with args and returns the exit code.
func Execute(app App, args []string) int {
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	l := logger.NewWithConfig(app.Stderr, app.Name, log.ErrorLevel, false, false, log.TextFormatter)
	l.Error(err.Error())

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(app.Stderr, "Try '%s --help' for more information.\n", app.Name)
	}
	return 1
}

func run(cmd *cobra.Command, app App, f *flags, args []string) error {
	switch {
	case f.usage:
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s [OPTION]... FILES\n", app.Name)
		return nil
	case f.version:
		showVersion(cmd.OutOrStdout(), app)
		return nil
	}

	l := logger.Setup(cmd.ErrOrStderr(), app.Name, f.debug)

	if f.initConfig {
		path, err := config.WriteDefaultConfig(f.configPath)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		return nil
	}

	if len(args) < 2 {
		return usagef("At least 2 files are expected.")
	}
	if len(args) > shword.PatternWidth {
		return usagef("Number of files exceeding capacity.")
	}

	cfg, path, err := config.LoadConfigWithPriority(f.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		l.Debugf("Using config file: %s", path)
	}
	applyFlags(cmd.Flags(), f, cfg)
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return &usageError{err: err}
	}
	out, err := report.New(format, cmd.OutOrStdout(), len(args))
	if err != nil {
		return err
	}

	opts := engine.Options{
		Top:         cfg.Report.Top,
		SameNumbers: cfg.Report.SameNumbers,
		MaxWords:    cfg.Dict.MaxWords,
		Reader:      cfg.ReaderConfig(),
		Logger:      l,
	}
	l.Debug("Options:",
		"initial", opts.Reader.MaxTokenLength,
		"top", opts.Top,
		"sameNumbers", opts.SameNumbers,
		"maxWords", opts.MaxWords,
		"format", format)

	summary, err := engine.Run(opts, engine.Sources{Names: args, Stdin: cmd.InOrStdin()}, out)
	l.Debug("Run done",
		"sources", summary.Sources,
		"tokens", summary.Tokens,
		"words", summary.Words,
		"emitted", summary.Emitted,
		"truncated", summary.Truncated)
	return err
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(fs *pflag.FlagSet, f *flags, cfg *config.Config) {
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "initial":
			cfg.Scan.Initial = f.initial
		case "punctuation-like-space":
			cfg.Scan.PunctuationLikeSpace = f.punctLikeSpace
		case "uppercasing":
			cfg.Scan.Uppercasing = f.uppercasing
		case "top":
			cfg.Report.Top = f.top
		case "same-numbers":
			cfg.Report.SameNumbers = f.sameNumbers
		case "format":
			cfg.Report.Format = f.format
		}
	})
}

func showVersion(w io.Writer, app App) {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("[ WordShare ] Prints the words shared between text files")
	l.Print(app.Name, "version", app.Version)
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
