package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/timoleistner/plotrna/pkg/cache"
	"github.com/timoleistner/plotrna/pkg/layout"
	"github.com/timoleistner/plotrna/pkg/plot"
	"github.com/timoleistner/plotrna/pkg/render"
)

// drawOpts holds the command-line flags shared by the draw and probs
// commands.
type drawOpts struct {
	output    string  // output file path
	sequence  string  // nucleotide letters, same length as the structure
	scheme    string  // layout scheme name
	colormap  string  // color scale name
	colorsStr string  // comma-separated values in [0,1], one per nucleotide
	themePath string  // TOML theme file
	file      string  // batch input file, one structure per line
	outputDir string  // directory for batch outputs
	noCache   bool    // disable the layout cache
}

// newDrawCmd creates the draw command for rendering plain structure
// diagrams.
//
// Default settings:
//   - layout: naview
//   - output: structure.png in the working directory
func newDrawCmd() *cobra.Command {
	var opts drawOpts

	cmd := &cobra.Command{
		Use:   "draw [structure]",
		Short: "Render a dot-bracket structure to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file != "" {
				return runBatch(cmd, &opts)
			}
			if len(args) != 1 {
				return fmt.Errorf("provide a structure argument or --file")
			}
			return runDraw(cmd, args[0], &opts)
		},
	}

	addDrawFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.file, "file", "", "batch input: one 'structure [sequence]' per line")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "directory for batch outputs")

	return cmd
}

func addDrawFlags(cmd *cobra.Command, opts *drawOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&opts.sequence, "sequence", "s", "", "nucleotide sequence drawn inside the glyphs")
	cmd.Flags().StringVarP(&opts.scheme, "layout", "l", "", "layout scheme: naview (default), simple, circular, turtle, puzzler")
	cmd.Flags().StringVar(&opts.colormap, "colormap", "", "color scale for --colors values")
	cmd.Flags().StringVar(&opts.colorsStr, "colors", "", "comma-separated values in [0,1], one per nucleotide")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout coordinate cache")
}

// renderOptions translates flags into plot options. The provider is built
// once per command so batch runs share one cache handle.
func (o *drawOpts) renderOptions(provider layout.Provider, output string) ([]plot.Option, error) {
	opts := []plot.Option{
		plot.WithLayoutProvider(provider),
		plot.WithSavePath(output),
	}
	if o.sequence != "" {
		opts = append(opts, plot.WithSequence(o.sequence))
	}
	if o.scheme != "" {
		opts = append(opts, plot.WithLayout(layout.Scheme(o.scheme)))
	}
	if o.colormap != "" {
		opts = append(opts, plot.WithColormap(o.colormap))
	}
	if o.colorsStr != "" {
		values, err := parseValues(o.colorsStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plot.WithBaseColors(values))
	}
	if o.themePath != "" {
		th, err := render.LoadTheme(o.themePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plot.WithTheme(th))
	}
	return opts, nil
}

func runDraw(cmd *cobra.Command, structure string, opts *drawOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	output := opts.output
	if output == "" {
		output = "structure.png"
	}

	provider, err := newProvider(opts.noCache)
	if err != nil {
		return err
	}
	plotOpts, err := opts.renderOptions(provider, output)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	if _, err := plot.RenderStructure(ctx, structure, plotOpts...); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s", output))
	return nil
}

// runBatch renders every structure in the input file concurrently. Output
// files are numbered by input line: structure_1.png, structure_2.png, ...
func runBatch(cmd *cobra.Command, opts *drawOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	entries, err := readBatchFile(opts.file)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %d structures", len(entries))

	provider, err := newProvider(opts.noCache)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, entry := range entries {
		output := filepath.Join(opts.outputDir, fmt.Sprintf("structure_%d.png", i+1))
		g.Go(func() error {
			line := *opts
			line.sequence = entry.sequence
			plotOpts, err := line.renderOptions(provider, output)
			if err != nil {
				return err
			}
			if _, err := plot.RenderStructure(gctx, entry.structure, plotOpts...); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			logger.Debugf("Rendered %s", output)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d structures", len(entries)))
	return nil
}

type batchEntry struct {
	structure string
	sequence  string
}

// readBatchFile parses one structure per line, with an optional
// whitespace-separated sequence. Blank lines and #-comments are skipped.
func readBatchFile(path string) ([]batchEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []batchEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		entry := batchEntry{structure: fields[0]}
		if len(fields) > 1 {
			entry.sequence = fields[1]
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no structures found in %s", path)
	}
	return entries, nil
}

// parseValues parses a comma-separated list of floats.
func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q in --colors", part)
		}
		values[i] = v
	}
	return values, nil
}

// newProvider builds the layout provider, wrapping it in the file-backed
// coordinate cache unless disabled.
func newProvider(noCache bool) (layout.Provider, error) {
	inner := layout.Default()
	if noCache {
		return inner, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		// An unwritable cache directory must not block rendering.
		return inner, nil
	}
	return layout.NewCached(inner, store), nil
}
