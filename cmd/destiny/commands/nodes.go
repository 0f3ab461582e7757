package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/destinymatrix/dimension"
	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

// CatalogEntry describes one node identifier.
type CatalogEntry struct {
	Node      node.ID          `json:"node" yaml:"node"`
	Variants  []matrix.Variant `json:"variants" yaml:"variants"`
	Dimension string           `json:"dimension,omitempty" yaml:"dimension,omitempty"`
}

// Catalog is the full identifier table.
type Catalog []CatalogEntry

func (c Catalog) tables() []titledTable {
	data := pterm.TableData{{"Node", "Variants", "Dimension"}}
	for _, e := range c {
		names := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			names[i] = v.String()
		}
		data = append(data, []string{e.Node.String(), strings.Join(names, ","), e.Dimension})
	}

	return []titledTable{{data: data}}
}

// FormulaList is the compiled table of one variant.
type FormulaList struct {
	Variant  matrix.Variant   `json:"variant" yaml:"variant"`
	Formulas []matrix.Formula `json:"formulas" yaml:"formulas"`
}

func (f FormulaList) tables() []titledTable {
	data := pterm.TableData{{"Node", "Line", "Inputs"}}
	for _, fm := range f.Formulas {
		data = append(data, []string{fm.Node.String(), fm.Line.String(), strings.Join(fm.Inputs, " + ")})
	}

	return []titledTable{{title: f.Variant.String(), data: data}}
}

func newNodesCmd(a *app) *cobra.Command {
	var formulas bool
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List node identifiers, or the formulas of the selected variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if formulas {
				list, err := formulaList(a.cfg.VariantValue())
				if err != nil {
					return err
				}

				return render(cmd.OutOrStdout(), a.cfg.Format, list)
			}
			cat, err := catalog()
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, cat)
		},
	}
	cmd.Flags().BoolVar(&formulas, "formulas", false, "print the formula table of --variant")

	return cmd
}

func formulaList(v matrix.Variant) (FormulaList, error) {
	fs, err := matrix.Formulas(v)
	if err != nil {
		return FormulaList{}, err
	}

	return FormulaList{Variant: v, Formulas: fs}, nil
}

// catalog lists every identifier with the variants that define it.
func catalog() (Catalog, error) {
	defined := make(map[node.ID][]matrix.Variant)
	for _, v := range matrix.Variants() {
		ids, err := matrix.NodeIDs(v)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			defined[id] = append(defined[id], v)
		}
	}

	all := node.All()
	out := make(Catalog, len(all))
	for i, id := range all {
		key, _ := dimension.KeyFor(id)
		out[i] = CatalogEntry{Node: id, Variants: defined[id], Dimension: key}
	}

	return out, nil
}
