package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timoleistner/plotrna/pkg/plot"
)

// newProbsCmd creates the probs command: a probability-colored diagram
// with a gradient legend. Unlike draw, it requires a sequence and also
// accepts .svg output.
func newProbsCmd() *cobra.Command {
	var opts drawOpts

	cmd := &cobra.Command{
		Use:   "probs [structure] [sequence]",
		Short: "Render base-pairing probabilities with a color legend",
		Long: `Probs folds the sequence with a McCaskill partition function, colors every
nucleotide by the probability that it is paired, and draws a gradient legend
beneath the diagram. Explicit values given with --colors skip the folding
step. Output may be PNG or SVG.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbs(cmd, args[0], args[1], &opts)
		},
	}

	addDrawFlags(cmd, &opts)
	return cmd
}

func runProbs(cmd *cobra.Command, structure, sequence string, opts *drawOpts) error {
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
	opts.sequence = "" // the sequence is a positional argument here
	plotOpts, err := opts.renderOptions(provider, output)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	if _, err := plot.RenderStructureProbabilities(ctx, structure, sequence, plotOpts...); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s", output))
	return nil
}
