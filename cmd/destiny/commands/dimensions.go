package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/destinymatrix/dimension"
)

// DimensionList is printed by the dimensions command.
type DimensionList struct {
	System     string                `json:"system" yaml:"system"`
	Dimensions []dimension.Dimension `json:"dimensions" yaml:"dimensions"`
}

func (dl DimensionList) tables() []titledTable {
	data := pterm.TableData{{"Node", "Dimension"}}
	for _, d := range dl.Dimensions {
		data = append(data, []string{d.Node.String(), d.Key})
	}

	return []titledTable{{title: "system: " + dl.System, data: data}}
}

func newDimensionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List the node to dimension key table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := DimensionList{System: dimension.SystemKey, Dimensions: dimension.Table()}

			return render(cmd.OutOrStdout(), a.cfg.Format, list)
		},
	}
}
