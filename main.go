package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"genealogy/internal/config"
	"genealogy/internal/genealogy"
	"genealogy/internal/log"
	"genealogy/internal/preview"
	"genealogy/internal/render"
	"genealogy/internal/source"
	"genealogy/internal/tui"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

// flags holds the command-line overrides shared by every command.
type flags struct {
	configPath   string
	eggs         bool
	livingOnly   bool
	duplicates   string
	format       string
	output       string
	preview      string
	previewWidth int
	logFile      string
	debug        bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer log.Close()

	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, source.ErrNoInput) {
			fmt.Fprintln(stderr, "No genealogy file found. Please provide a valid genealogy file.")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(out io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "genealogy [file]",
		Short: "Draw the family tree of a Creatures genealogy export",
		Long: "Reads a .genealogy export, works out which creatures are alive and which are " +
			"their ancestors, and renders the pedigree with graphviz. Without a file argument " +
			"the first .genealogy file in the current directory is used.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), out, cfg, argPath(args))
		},
	}
	rootCmd.Version = buildVersion()
	rootCmd.SetOut(out)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "genealogy.yaml", "Path to a YAML config file")
	pf.BoolVar(&f.eggs, "eggs", true, "Include eggs and unnamed creatures")
	pf.BoolVar(&f.livingOnly, "living-only", false, "Only keep living creatures and their ancestors")
	pf.StringVar(&f.duplicates, "duplicates", "replace", "Duplicate moniker policy: replace, keep-first or reject")
	pf.StringVar(&f.logFile, "log-file", "", "Append logs to this file instead of stderr")
	pf.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	rf := rootCmd.Flags()
	rf.StringVar(&f.format, "format", "svg", "Output format: svg, png or dot")
	rf.StringVarP(&f.output, "output", "o", "", "Output path without extension (default derived from the input)")
	rf.StringVar(&f.preview, "preview", "", "Show a png render in the terminal: auto, kitty, iterm, sixel or sixel-dither")
	rf.IntVar(&f.previewWidth, "preview-width", 1200, "Maximum preview width in pixels")

	rootCmd.AddCommand(summaryCmd(out, f), browseCmd(f))
	return rootCmd
}

func summaryCmd(out io.Writer, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [file]",
		Short: "Print record counts and the living and ancestor lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			_, gen, err := load(cfg, argPath(args))
			if err != nil {
				return err
			}
			writeSummary(out, gen)
			return nil
		},
	}
}

func browseCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore living creatures and their ancestry interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("browse requires a terminal")
			}
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			_, gen, err := load(cfg, argPath(args))
			if err != nil {
				return err
			}
			return tui.NewBrowser(gen).Run()
		},
	}
}

func argPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// loadConfig reads the config file and applies any flags set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(f.configPath, !explicit)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("eggs") {
		cfg.ShowEggs = f.eggs
	}
	if changed("living-only") {
		cfg.ShowLivingOnly = f.livingOnly
	}
	if changed("duplicates") {
		cfg.Duplicates = f.duplicates
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("preview") {
		cfg.Preview = f.preview
	}
	if changed("preview-width") {
		cfg.PreviewWidth = f.previewWidth
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.LogFile != "" {
		if err := log.SetFileOutput(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not configure logging to file: %v\n", err)
		}
	}
	if cfg.Debug {
		log.SetLevel(slog.LevelDebug)
	}
	return cfg, nil
}

// load resolves, reads and classifies the input.
func load(cfg config.Config, arg string) (string, *genealogy.Genealogy, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, err
	}
	path, err := source.Resolve(arg, cwd)
	if err != nil {
		return "", nil, err
	}
	log.Info("reading genealogy", "path", path)

	text, err := source.Read(path)
	if err != nil {
		return "", nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return "", nil, err
	}
	gen, err := genealogy.Build(text, opts)
	if err != nil {
		return "", nil, err
	}
	return path, gen, nil
}

func runRender(ctx context.Context, out io.Writer, cfg config.Config, arg string) error {
	path, gen, err := load(cfg, arg)
	if err != nil {
		return err
	}

	g, err := render.BuildGraph(gen)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	base := cfg.Output
	if base == "" {
		base = render.OutputName(path, gen.Options)
	}

	fmt.Fprintf(out, "Found %d creature records to render.\n", gen.Graph.Len())
	written, err := render.RenderFile(ctx, g, format, base)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Genealogy graph written to %s\n", written)

	popts, err := cfg.PreviewOptions()
	if err != nil || popts.Protocol == preview.ProtocolNone {
		return err
	}
	data, err := os.ReadFile(written)
	if err != nil {
		return err
	}
	if err := preview.ShowTerminal(os.Stdout, data, popts); err != nil {
		log.Warn("preview skipped", "error", err)
	}
	return nil
}

func writeSummary(out io.Writer, gen *genealogy.Genealogy) {
	s := gen.Stats
	fmt.Fprintf(out, "Records:    %d parsed, %d malformed, %d discarded, %d duplicate, %d too short\n",
		s.Parsed, s.Malformed, s.Discarded, s.Duplicates, s.Short)
	fmt.Fprintf(out, "Creatures:  %d\n", gen.Full.Len())

	living := gen.Classification.Living
	fmt.Fprintf(out, "Living:     %d\n", living.Len())
	for _, m := range living.Slice() {
		fmt.Fprintf(out, "  %s\n", describeShort(gen, m))
	}

	var ancestors []string
	for _, m := range gen.Classification.Ancestors.Slice() {
		if !living.Has(m) {
			ancestors = append(ancestors, m)
		}
	}
	fmt.Fprintf(out, "Ancestors:  %d\n", len(ancestors))
	for _, m := range ancestors {
		fmt.Fprintf(out, "  %s\n", describeShort(gen, m))
	}
}

func describeShort(gen *genealogy.Genealogy, moniker string) string {
	c, ok := gen.Full.Get(moniker)
	if !ok {
		return moniker + " (no record)"
	}
	return fmt.Sprintf("%s %s", c.Name, moniker)
}
