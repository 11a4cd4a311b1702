package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"img2pdf/internal/config"
	"img2pdf/internal/tui"
)

const version = "1.0.0"

// errReported marks errors that were already shown to the user.
var errReported = errors.New("error reported")

type rootFlags struct {
	input      string
	output     string
	temp       string
	extensions []string
	names      []string
	sort       string
	recursive  bool
	debug      bool
	config     string
	version    bool
	manual     bool
}

func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "img2pdf [flags]",
		Short: "img2pdf - build a PDF with one page per image found in a folder",
		Long: `img2pdf scans a folder (optionally with its subfolders) for image files and
writes them into a single PDF, one image per page. Files can be filtered by
extension and by name, and ordered by name, size, creation or modify time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine.
			_ = godotenv.Load()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case f.version:
				fmt.Fprintln(out, version)
				return nil
			case f.manual:
				fmt.Fprintln(out, renderManual())
				return cmd.Help()
			}

			opts, err := f.options(cmd.Flags())
			if err != nil {
				return setupFailed(cmd, err)
			}
			cfg, err := opts.Validate()
			if err != nil {
				return setupFailed(cmd, err)
			}

			if err := runConvert(cmd, cfg); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(err.Error()))
				return errReported
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(setupFailed)
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", config.DefaultInput, "folder to parse for input files")
	flags.StringVarP(&f.output, "output", "o", config.DefaultOutput, "output file name with full path")
	flags.StringVarP(&f.temp, "temp", "t", config.DefaultTemp, `folder for temporary files (a "temp" folder is created inside it)`)
	flags.StringSliceVarP(&f.extensions, "ext", "x", nil, "comma separated extension filters, case-sensitive")
	flags.StringSliceVarP(&f.names, "name", "n", nil, "comma separated file name filters, case-insensitive substrings")
	flags.StringVarP(&f.sort, "sort", "s", "", "ordering: name|size|creation|modify[,asc|desc]")
	flags.BoolVarP(&f.recursive, "recursive", "r", false, "include subfolders")
	flags.BoolVarP(&f.debug, "debug", "d", false, "verbose logging and file details printed on each page")
	flags.StringVarP(&f.config, "config", "c", "", "YAML config file (default $"+config.EnvConfigPath+")")
	flags.BoolVarP(&f.version, "version", "v", false, "show version")
	flags.BoolVarP(&f.manual, "manual", "m", false, "show manual")

	return cmd
}

// options layers defaults, the config file and explicitly set flags.
func (f *rootFlags) options(flags *pflag.FlagSet) (config.Options, error) {
	path := f.config
	if !flags.Changed("config") {
		path = os.Getenv(config.EnvConfigPath)
	} else if _, err := os.Stat(path); err != nil {
		return config.Options{}, fmt.Errorf("%w: %v", config.ErrConfigFile, err)
	}

	fc, err := config.LoadFile(path)
	if err != nil {
		return config.Options{}, err
	}
	o := fc.Apply(config.DefaultOptions())

	if flags.Changed("input") {
		o.Input = f.input
	}
	if flags.Changed("output") {
		o.Output = f.output
	}
	if flags.Changed("temp") {
		o.Temp = f.temp
		o.TempSet = true
	}
	if flags.Changed("ext") {
		o.Extensions = f.extensions
	}
	if flags.Changed("name") {
		o.Names = f.names
	}
	if flags.Changed("sort") {
		o.Sort = f.sort
		o.SortSet = true
	}
	if flags.Changed("recursive") {
		o.Recursive = f.recursive
	}
	if flags.Changed("debug") {
		o.Debug = f.debug
	}

	return o, nil
}

// setupFailed shows err followed by the help text.
func setupFailed(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(err.Error()))
	_ = cmd.Help()
	return errReported
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, tui.RenderError(err.Error()))
		}
		os.Exit(1)
	}
}
