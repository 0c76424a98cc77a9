package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grclean/dimacs"
)

func newCleanCommand(a *app) *cobra.Command {
	var output, suffix string

	cmd := &cobra.Command{
		Use:   "clean <input.gr>",
		Short: "Merge parallel edges (MIN weight) and write a symmetric graph",
		Long: "Reads a DIMACS .gr file, keeps the minimum weight for every unordered\n" +
			"node pair and writes both directed arcs of each pair to <input>" + dimacs.DefaultSuffix + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("suffix") {
				suffix = a.cfg.Output.Suffix
			}
			return a.runClean(args[0], output, suffix)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: input with its extension replaced by --suffix)")
	cmd.Flags().StringVar(&suffix, "suffix", dimacs.DefaultSuffix, "extension used to derive the output path")

	return cmd
}

func (a *app) runClean(in, out, suffix string) error {
	if out == "" {
		out = dimacs.OutputPath(in, suffix)
	}

	fmt.Fprintf(a.out, "Input file:       %s\n", in)
	fmt.Fprintf(a.out, "Output file:      %s\n", out)
	fmt.Fprintln(a.out, strings.Repeat("-", 60))

	a.log.Info("cleaning graph", zap.String("input", in), zap.String("output", out))
	m, err := dimacs.CleanFile(in, out)
	if err != nil {
		a.log.Error("clean failed", zap.String("input", in), zap.Error(err))
		return errors.Wrapf(err, "clean %s", in)
	}

	a.log.Info("graph written",
		zap.Int64("nodes", m.Nodes),
		zap.Int("lines", m.Stats.Lines),
		zap.Int("arcs_read", m.Stats.ArcsRead),
		zap.Int("collapsed", m.Stats.Collapsed),
		zap.Int("lowered", m.Stats.Lowered),
		zap.Int("self_loops", m.Stats.SelfLoops),
		zap.Int("skipped", m.Stats.Skipped),
		zap.Int64("arcs_written", m.Arcs()),
	)
	if m.Stats.Headers == 0 {
		a.log.Warn("no problem line found; node count defaults to 0", zap.String("input", in))
	}

	fmt.Fprintf(a.out, "Unique undirected edges: %d\n", m.Len())
	fmt.Fprintln(a.out, "Done.")

	return nil
}
