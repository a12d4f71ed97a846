// javauml generates PlantUML class diagrams from Java source files
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NickyBoy89/javauml/parsing"
	"github.com/NickyBoy89/javauml/uml"
)

const defaultOutput = "UMLOutput.txt"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// settings is everything that a single run is configured with, after the
// flags and the config file have been merged
type settings struct {
	output     string
	directory  string
	recursive  bool
	exclude    []string
	jobs       int
	configPath string
	verbose    bool

	parse         parsing.Options
	diagram       uml.Options
	omitModifiers bool
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))
	return cmd.Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var s settings

	cmd := &cobra.Command{
		Use:   "javauml [flags] [file.java...]",
		Short: "Generate a PlantUML class diagram from Java source files",
		Long: `Generate a PlantUML class diagram from Java source files.

Every file lists the first class that it declares, along with the fields,
constructors, and methods declared anywhere in the file. When no files are
given, the files in the directory are used instead.

Settings can also be read from a TOML file, either the one given with
--config or javauml.toml in the current directory. Flags take priority over
the file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(stderr, s.verbose)

			if err := applyConfig(cmd.Flags(), &s); err != nil {
				return &OptionError{Err: err, Usage: cmd.UsageString()}
			}
			if s.omitModifiers {
				s.diagram.OmitStaticMethods = true
			}
			if s.jobs < 0 {
				return &OptionError{Err: fmt.Errorf("invalid number of jobs: %d", s.jobs), Usage: cmd.UsageString()}
			}

			return convert(cmd.Context(), args, s, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &OptionError{Err: err, Usage: c.UsageString()}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&s.output, "output", "o", defaultOutput, "where to save the diagram, - for standard output")
	flags.StringVarP(&s.directory, "directory", "d", ".", "directory to process when no files are given")
	flags.BoolVarP(&s.recursive, "recursive", "r", false, "process the directory recursively")
	flags.StringArrayVar(&s.exclude, "exclude", nil, "gitignore-style pattern for paths to skip in the directory")
	flags.BoolVar(&s.diagram.FullyQualifiedNames, "fully-qualified-name", false, "use fully qualified class names")
	flags.BoolVar(&s.diagram.OmitConstructors, "omit-constructors", false, "omit constructors")
	flags.BoolVar(&s.diagram.OmitMethods, "omit-methods", false, "omit methods that are not static")
	flags.BoolVar(&s.diagram.OmitStaticMethods, "omit-static-methods", false, "omit static methods")
	flags.BoolVar(&s.omitModifiers, "omit-modifiers", false, "omit static methods")
	flags.BoolVar(&s.diagram.PackagePrivate, "package-private", false, "list package-private members")
	flags.BoolVar(&s.diagram.Relations, "relations", false, "show relations between classes")
	flags.BoolVar(&s.diagram.Realization, "realization", false, "draw implemented interfaces with a dashed arrow")
	flags.BoolVar(&s.parse.DirectMembersOnly, "direct-members-only", false, "only list the members declared directly in the class")
	flags.StringVar(&s.configPath, "config", "", "TOML file to read settings from")
	flags.IntVarP(&s.jobs, "jobs", "j", 0, "number of files to parse at once, 0 for one per CPU")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "print debug information")

	_ = flags.MarkDeprecated("omit-modifiers", "use --omit-static-methods instead")

	return cmd
}

func configureLogging(stderr io.Writer, verbose bool) {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

var errorLabel = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, err error) {
	errorLabel.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)

	var optErr *OptionError
	if errors.As(err, &optErr) && optErr.Usage != "" {
		fmt.Fprint(w, "\n"+optErr.Usage)
	}
}

// OptionError is returned when the flags or the config file are invalid
type OptionError struct {
	Err   error
	Usage string
}

func (e *OptionError) Error() string {
	return e.Err.Error()
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
