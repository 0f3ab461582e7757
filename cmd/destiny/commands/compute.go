package commands

import (
	"context"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/dimension"
	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
	"github.com/katalvlaran/destinymatrix/observe"
)

// Result is the output of one evaluated date.
type Result struct {
	Date       birthdate.Date     `json:"date" yaml:"date"`
	Variant    matrix.Variant     `json:"variant" yaml:"variant"`
	Base       matrix.Base        `json:"base" yaml:"base"`
	Nodes      matrix.NodeMap     `json:"nodes" yaml:"nodes"`
	Dimensions []dimension.Lookup `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// Results are printed in input order.
type Results []Result

func (rs Results) tables() []titledTable {
	out := make([]titledTable, 0, len(rs))
	for _, r := range rs {
		data := pterm.TableData{{"Node", "Value", "Dimension"}}
		r.Nodes.Each(func(id node.ID, value int) bool {
			key, _ := dimension.KeyFor(id)
			data = append(data, []string{id.String(), strconv.Itoa(value), key})
			return true
		})
		title := r.Date.String() + " (" + r.Variant.String() + ")  D=" + strconv.Itoa(r.Base.D) +
			" M=" + strconv.Itoa(r.Base.M) + " Y=" + strconv.Itoa(r.Base.Y)
		out = append(out, titledTable{title: title, data: data})
	}

	return out
}

func newComputeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute DATE [DATE...]",
		Short: "Compute the node map of one or more birth dates",
		Long: `Compute the node map of each DATE (YYYY-MM-DD or an RFC 3339 timestamp,
converted to its UTC calendar day). Dates are evaluated concurrently and
printed in the order given. The first invalid date aborts the command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.compute(cmd.Context(), args)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, results)
		},
	}
	cmd.Flags().Bool("dimensions", false, "include the dimension lookups of each node map")
	mustBind(a.v, "dimensions", cmd.Flags().Lookup("dimensions"))

	return cmd
}

// evaluator builds the matrix evaluator described by the configuration.
func (a *app) evaluator() *matrix.Evaluator {
	opts := []matrix.Option{matrix.WithObserver(observe.Logger(a.logger))}
	if a.cfg.CacheSize > 0 {
		opts = append(opts, matrix.WithCache(a.cfg.CacheSize))
	}

	return matrix.New(opts...)
}

// compute evaluates every input, at most GOMAXPROCS at a time.
func (a *app) compute(ctx context.Context, inputs []string) (Results, error) {
	variant := a.cfg.VariantValue()
	e := a.evaluator()
	results := make(Results, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := birthdate.Parse(in)
			if err != nil {
				return errors.Wrapf(err, "input #%d", i+1)
			}
			rep, err := e.EvaluateReport(d, variant)
			if err != nil {
				return errors.Wrapf(err, "input #%d", i+1)
			}

			r := Result{Date: d, Variant: variant, Base: rep.Base, Nodes: rep.Nodes}
			if a.cfg.Dimensions {
				if r.Dimensions, err = dimension.Resolve(rep.Nodes); err != nil {
					return errors.Wrapf(err, "input #%d", i+1)
				}
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.Warn("compute failed", zap.Error(err))
		return nil, err
	}
	a.logger.Info("computed", zap.Int("dates", len(results)), zap.Stringer("variant", variant))

	return results, nil
}
