package commands

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// tabular is implemented by every command result so it can be rendered as
// a pterm table in addition to JSON and YAML.
type tabular interface {
	tables() []titledTable
}

// titledTable is one table with an optional heading line.
type titledTable struct {
	title string
	data  pterm.TableData // first row is the header
}

// render writes value to w in format.
func render(w io.Writer, format string, value tabular) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(value), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return errors.Wrap(err, "encode yaml")
		}

		return errors.Wrap(enc.Close(), "encode yaml")
	case FormatTable:
		for i, t := range value.tables() {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if t.title != "" {
				if _, err := io.WriteString(w, t.title+"\n"); err != nil {
					return err
				}
			}
			err := pterm.DefaultTable.
				WithHasHeader().
				WithData(t.data).
				WithWriter(w).
				Render()
			if err != nil {
				return errors.Wrap(err, "render table")
			}
		}

		return nil
	default:
		return errors.Newf("unknown output format %q", format)
	}
}
