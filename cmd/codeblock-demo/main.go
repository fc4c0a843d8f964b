package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeblock"
	"github.com/iw2rmb/codeblock/block"
	"github.com/iw2rmb/codeblock/internal/config"
	"github.com/iw2rmb/codeblock/internal/record"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codeblock-demo [data.json]",
	Short: "Edit code blocks in the terminal",
	Long: `codeblock-demo hosts one or more code blocks in a terminal editor.

Each block has a language selector (ctrl+o) and a text surface where tab
and shift+tab indent and outdent the current line. Records are read from
and written to JSON of the form {"code": "...", "mode": "..."}.

Keys:
  tab          indent, or focus the next block when read-only
  ctrl+s       write records
  ctrl+q       write records and quit

Examples:
  codeblock-demo                         # Two empty blocks, records on stdout
  codeblock-demo snippets.json           # Edit records in place
  codeblock-demo -c modes.yaml -n 3      # Three blocks with configured modes
  codeblock-demo snippets.json --read-only`,
	Version: codeblock.Version(),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options{
			ConfigPath:  flagConfig,
			ReadOnly:    flagReadOnly,
			Placeholder: flagPlaceholder,
			DefaultMode: flagDefaultMode,
			Blocks:      flagBlocks,
			OutputPath:  flagOutput,
			Verbose:     flagVerbose,
		}
		if len(args) > 0 {
			opts.DataPath = args[0]
			if opts.OutputPath == "" {
				opts.OutputPath = opts.DataPath
			}
		}
		return run(opts)
	},
}

var (
	flagConfig      string
	flagReadOnly    bool
	flagPlaceholder string
	flagDefaultMode string
	flagBlocks      int
	flagOutput      string
	flagVerbose     bool
)

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Block configuration file (.yaml, .yml, .json, .jsonc)")
	rootCmd.Flags().BoolVar(&flagReadOnly, "read-only", false, "Render blocks without editing")
	rootCmd.Flags().StringVar(&flagPlaceholder, "placeholder", "", "Placeholder shown in empty blocks")
	rootCmd.Flags().StringVarP(&flagDefaultMode, "default-mode", "m", "", "Mode preselected for blocks without one")
	rootCmd.Flags().IntVarP(&flagBlocks, "blocks", "n", 2, "Number of blocks when no data file is given")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write records to file (default: the data file, or stdout)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages to stderr")
}

type options struct {
	DataPath    string
	ConfigPath  string
	ReadOnly    bool
	Placeholder string
	DefaultMode string
	Blocks      int
	OutputPath  string
	Verbose     bool
}

func run(opts options) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := buildConfig(opts, logger)
	if err != nil {
		return err
	}
	recs, err := loadRecords(opts)
	if err != nil {
		return err
	}

	m := newApp(recs, cfg, opts.ReadOnly, opts.OutputPath, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	a, ok := final.(app)
	if !ok || !a.quitWithSave {
		return nil
	}
	if opts.OutputPath != "" {
		return nil
	}
	out, err := record.Encode(a.records())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func buildConfig(opts options, logger *slog.Logger) (block.Config, error) {
	cfg := block.Config{
		Style:     block.DefaultStyle(),
		Clipboard: block.SystemClipboard{},
		Logger:    logger,
	}
	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			return block.Config{}, err
		}
		cfg = f.Apply(cfg)
		logger.Debug("loaded config", slog.String("path", opts.ConfigPath), slog.Int("modes", len(f.Modes)))
	}
	if opts.Placeholder != "" {
		cfg.Placeholder = opts.Placeholder
	}
	if opts.DefaultMode != "" {
		cfg.DefaultMode = opts.DefaultMode
	}
	return cfg, nil
}

func loadRecords(opts options) ([]block.Data, error) {
	n := max(opts.Blocks, 1)
	if opts.DataPath == "" {
		return make([]block.Data, n), nil
	}
	data, err := os.ReadFile(opts.DataPath)
	if os.IsNotExist(err) {
		return make([]block.Data, n), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	recs, err := record.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if len(recs) == 0 {
		recs = make([]block.Data, n)
	}
	return recs, nil
}

func writeRecords(path string, recs []block.Data) error {
	out, err := record.Encode(recs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
