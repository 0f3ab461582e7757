package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/destinymatrix/matrix"
)

// VariantInfo summarizes one variant.
type VariantInfo struct {
	Name      string            `json:"name" yaml:"name"`
	Strategy  string            `json:"strategy" yaml:"strategy"`
	Nodes     int               `json:"nodes" yaml:"nodes"`
	Fallbacks []matrix.Fallback `json:"fallbacks" yaml:"fallbacks"`
}

// VariantList is printed by the variants command.
type VariantList []VariantInfo

func (vl VariantList) tables() []titledTable {
	summary := pterm.TableData{{"Variant", "Strategy", "Nodes", "Fallbacks"}}
	for _, v := range vl {
		summary = append(summary, []string{v.Name, v.Strategy, strconv.Itoa(v.Nodes), strconv.Itoa(len(v.Fallbacks))})
	}
	out := []titledTable{{data: summary}}

	for _, v := range vl {
		if len(v.Fallbacks) == 0 {
			continue
		}
		data := pterm.TableData{{"Node", "Primary", "Fallback"}}
		for _, fb := range v.Fallbacks {
			sub := fb.Fallback.String()
			if fb.Drop() {
				sub = "(dropped)"
			}
			data = append(data, []string{fb.Node.String(), fb.Primary.String(), sub})
		}
		out = append(out, titledTable{title: v.Name + " fallbacks", data: data})
	}

	return out
}

func newVariantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List variants and their fallback tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := variantList()
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, list)
		},
	}
}

func variantList() (VariantList, error) {
	var out VariantList
	for _, v := range matrix.Variants() {
		ids, err := matrix.NodeIDs(v)
		if err != nil {
			return nil, err
		}
		fbs, err := matrix.Fallbacks(v)
		if err != nil {
			return nil, err
		}
		if fbs == nil {
			fbs = []matrix.Fallback{}
		}
		out = append(out, VariantInfo{
			Name:      v.String(),
			Strategy:  v.Strategy().String(),
			Nodes:     len(ids),
			Fallbacks: fbs,
		})
	}

	return out, nil
}
