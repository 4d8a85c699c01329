package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"skyline/internal/models"
)

func writeResult(w io.Writer, format string, res models.SkylineResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeTable(w, res)
	}
}

func writeTable(w io.Writer, res models.SkylineResult) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Skyline (%d buildings)", res.Buildings)
	tw.AppendHeader(table.Row{"#", "X", "Height"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for i, p := range res.Skyline {
		tw.AppendRow(table.Row{i + 1, formatNum(p[0]), formatNum(p[1])})
	}

	if s := res.Summary; s != nil {
		tw.AppendFooter(table.Row{"", "peak", formatNum(s.Peak)})
		tw.AppendFooter(table.Row{"", "span", formatNum(s.Start) + " .. " + formatNum(s.End)})
		tw.AppendFooter(table.Row{"", "area", formatNum(s.Area)})
	}

	tw.Render()
	return nil
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
