package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grclean/dimacs"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.gr>",
		Short: "Verify a graph is symmetric, duplicate-free and correctly counted",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCheck(args[0])
		},
	}
}

func (a *app) runCheck(in string) error {
	rep, err := dimacs.VerifyFile(in)
	if err != nil {
		a.log.Error("check failed", zap.String("input", in), zap.Error(err))
		return errors.Wrapf(err, "check %s", in)
	}

	a.log.Debug("check passed", zap.String("input", in), zap.Int64("arcs", rep.Arcs))
	fmt.Fprintf(a.out, "%s: ok (nodes=%d arcs=%d pairs=%d)\n", in, rep.Nodes, rep.Arcs, rep.Pairs)

	return nil
}
