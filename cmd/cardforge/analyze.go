package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/contrast"
	"github.com/cardforge/cardforge/internal/spatial"
	"github.com/cardforge/cardforge/internal/template"
)

type analyzeOptions struct {
	jsonOutput bool
}

// layerReport is one row of the contrast analysis.
type layerReport struct {
	LayerID      string  `json:"layerId"`
	Type         string  `json:"type"`
	BackgroundID string  `json:"backgroundId"`
	Foreground   string  `json:"foreground,omitempty"`
	Background   string  `json:"background"`
	Ratio        float64 `json:"ratio"`
	Rating       string  `json:"rating"`
}

func newAnalyzeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <template>",
		Short: "Report layer backgrounds and contrast ratios for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runAnalyze(cmd *cobra.Command, arg string, opts *analyzeOptions) error {
	t, err := loadTemplate(arg)
	if err != nil {
		return newCommandError("analyze", fmt.Sprintf("loading template %q", arg), err, "Check the template path or register the template first.")
	}

	reports := analyzeTemplate(t)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %d layers\n\n", t.Name, t.ID, len(t.Layers))

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "LAYER\tTYPE\tON\tCOLORS\tRATIO\tRATING")
	for _, r := range reports {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s on %s\t%.2f\t%s\n",
			r.LayerID, r.Type, r.BackgroundID,
			valueOrFallback(r.Foreground, "(none)"), r.Background,
			r.Ratio, r.Rating)
	}

	return writer.Flush()
}

// analyzeTemplate resolves each layer's effective background and rates the
// contrast of the color the layer paints with against it.
func analyzeTemplate(t *template.CardTemplate) []layerReport {
	ctx := spatial.Resolve(t)

	reports := make([]layerReport, 0, len(t.Layers))
	for i := range t.Layers {
		layer := &t.Layers[i]

		bgID := spatial.MainBackground
		if lc, ok := ctx[layer.ID]; ok {
			bgID = lc.BackgroundLayerID
		}

		bgColor := t.Background.Color1
		if bgID != spatial.MainBackground {
			if surface := t.LayerByID(bgID); surface != nil {
				bgColor = surface.Fill
			}
		}

		report := layerReport{
			LayerID:      layer.ID,
			Type:         string(layer.Type),
			BackgroundID: bgID,
			Background:   bgColor,
		}

		if !layer.HasTransparentFill() {
			report.Foreground = layer.Fill
			report.Ratio = contrast.Ratio(layer.Fill, bgColor)
			report.Rating = rateContrast(layer, report.Ratio)
		} else {
			report.Ratio = 1
			report.Rating = "transparent"
		}

		reports = append(reports, report)
	}

	return reports
}

func rateContrast(layer *template.Layer, ratio float64) string {
	if layer.Type == template.TypeText {
		switch {
		case ratio >= contrast.AANormal:
			return "AA"
		case ratio >= contrast.AALarge:
			return "AA-large"
		case ratio > contrast.Indistinct:
			return "low"
		default:
			return "indistinct"
		}
	}

	if ratio <= contrast.Indistinct {
		return "indistinct"
	}
	return "distinct"
}
