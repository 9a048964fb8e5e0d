// Package cli implements the godecode command: checking JSON, YAML and TOML
// documents against registered schemas and printing their JSON Schema.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/source"
	"github.com/reoring/godecode/value"
)

// ErrInvalid is returned when a document does not match its schema. The
// report has already been printed.
var ErrInvalid = errors.New("document does not match schema")

// IO bundles the streams commands read and write.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process streams.
func StdIO() IO { return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr} }

type app struct {
	reg     *Registry
	io      IO
	cfgFile string
	verbose bool
	cfg     Config
	log     *slog.Logger
}

// NewRootCommand builds the command tree over reg.
func NewRootCommand(reg *Registry, streams IO) *cobra.Command {
	a := &app{reg: reg, io: streams, cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:           "godecode",
		Short:         "Check documents against decoder schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(a.listCommand(), a.checkCommand(), a.fmtCommand(), a.schemaCommand())
	return root
}

func (a *app) init() error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.io.Err, &slog.HandlerOptions{Level: level}))
	if a.cfgFile != "" {
		cfg, err := LoadConfig(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug("config loaded", "path", a.cfgFile)
	}
	a.cfg.apply()
	return nil
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, e := range a.reg.Entries() {
				fmt.Fprintf(a.io.Out, "%-12s %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	var (
		format string
		issues bool
	)
	cmd := &cobra.Command{
		Use:   "check <schema> [file]",
		Short: "Decode a document and report every error",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := a.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			v, err := a.load(args[1:], format)
			if err != nil {
				return err
			}
			res := e.Decoder.Decode(v)
			if res.IsSuccess() {
				a.log.Debug("document valid", "schema", e.Name)
				fmt.Fprintln(a.io.Out, godecode.Stringify(res))
				return nil
			}
			errs, _ := res.Failure()
			if issues {
				if err := writeJSON(a.io.Out, godecode.Flatten(errs)); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(a.io.Out, godecode.Draw(errs))
			}
			return ErrInvalid
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format (json, yaml, toml)")
	cmd.Flags().BoolVar(&issues, "issues", false, "print a flat JSON issue list instead of the error tree")
	return cmd
}

func (a *app) fmtCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print a document as indented JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.load(args, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.io.Out, value.JSONIndent(v))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format (json, yaml, toml)")
	return cmd
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <schema>",
		Short: "Print the JSON Schema of a registered schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := a.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			return writeJSON(a.io.Out, e.Schema())
		},
	}
}

// load reads the file named in args, or stdin, and parses it. The format is
// the flag, else the config, else inferred from the file name, else JSON.
func (a *app) load(args []string, flagFormat string) (any, error) {
	var (
		data []byte
		err  error
		name = "-"
	)
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(a.io.In)
	}
	if err != nil {
		return nil, err
	}

	format, err := a.format(name, flagFormat)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.options()
	if err != nil {
		return nil, err
	}
	opts.OnIssue = func(is source.Issue) {
		a.log.Warn(is.Message, "path", is.Path, "code", is.Code)
	}
	a.log.Debug("loading document", "file", name, "format", format, "bytes", len(data))
	v, err := source.Load(format, data, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return v, nil
}

func (a *app) format(name, flagFormat string) (source.Format, error) {
	switch {
	case flagFormat != "":
		return parseFormat(flagFormat)
	case a.cfg.Format != "":
		return parseFormat(a.cfg.Format)
	case name != "-":
		return source.FormatFromPath(name)
	default:
		return source.JSON, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
