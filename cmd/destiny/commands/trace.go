package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

// TraceList is printed by the trace command.
type TraceList struct {
	Variant   matrix.Variant `json:"variant" yaml:"variant"`
	Node      node.ID        `json:"node" yaml:"node"`
	Direction string         `json:"direction" yaml:"direction"`
	Nodes     []matrix.Trace `json:"nodes" yaml:"nodes"`
}

func (tl TraceList) tables() []titledTable {
	data := pterm.TableData{{"Node", "Depth"}}
	for _, t := range tl.Nodes {
		data = append(data, []string{t.Node.String(), strconv.Itoa(t.Depth)})
	}
	title := tl.Node.String() + " " + tl.Direction + " (" + tl.Variant.String() + ")"

	return []titledTable{{title: title, data: data}}
}

// PathList is printed by trace --path.
type PathList struct {
	Variant matrix.Variant `json:"variant" yaml:"variant"`
	From    node.ID        `json:"from" yaml:"from"`
	To      node.ID        `json:"to" yaml:"to"`
	Path    []node.ID      `json:"path" yaml:"path"`
}

func (pl PathList) tables() []titledTable {
	data := pterm.TableData{{"Step", "Node"}}
	for i, id := range pl.Path {
		data = append(data, []string{strconv.Itoa(i), id.String()})
	}
	title := pl.From.String() + " → " + pl.To.String() + " (" + pl.Variant.String() + ")"

	return []titledTable{{title: title, data: data}}
}

func newTraceCmd(a *app) *cobra.Command {
	var (
		inputs bool
		depth  int
		to     string
	)
	cmd := &cobra.Command{
		Use:   "trace NODE",
		Short: "List the nodes computed from NODE, or with --inputs the nodes it reads",
		Example: `  destiny trace 'X(-4)'
  destiny trace 'XY(0)' --inputs --variant modulo
  destiny trace 'X(-4)' --depth 1
  destiny trace 'N(4)' --path 'N(7)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := node.Parse(args[0])
			if err != nil {
				return err
			}
			if depth < 0 {
				return errors.WithHint(errors.Newf("invalid --depth %d", depth), "use 0 for no limit")
			}
			v := a.cfg.VariantValue()
			opts := []matrix.TraceOption{matrix.WithTraceContext(cmd.Context()), matrix.WithDepth(depth)}

			if to != "" {
				dest, err := node.Parse(to)
				if err != nil {
					return err
				}
				path, err := matrix.Path(v, id, dest, opts...)
				if err != nil {
					return err
				}

				return render(cmd.OutOrStdout(), a.cfg.Format, PathList{Variant: v, From: id, To: dest, Path: path})
			}

			list := TraceList{Variant: v, Node: id, Direction: "dependents"}
			if inputs {
				list.Direction = "dependencies"
				list.Nodes, err = matrix.Dependencies(v, id, opts...)
			} else {
				list.Nodes, err = matrix.Dependents(v, id, opts...)
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, list)
		},
	}
	cmd.Flags().BoolVar(&inputs, "inputs", false, "walk towards the nodes NODE reads")
	cmd.Flags().IntVar(&depth, "depth", 0, "stop N formula steps from NODE (0 = no limit)")
	cmd.Flags().StringVar(&to, "path", "", "print the shortest formula chain from NODE to this node")
	cmd.MarkFlagsMutuallyExclusive("inputs", "path")

	return cmd
}
