package diag

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ConvergencePlot renders an HTML line chart of the identifier's step size
// (the Euclidean norm of the parameter update) against iteration index,
// adapted from Additionnals/plot_pacs_sweep.go's scatter-plot builder down
// to a single line series. This is run diagnostics, not frequency-domain
// plotting: it never touches gain or phase.
func ConvergencePlot(history []float64, outPath string) error {
	if len(history) == 0 {
		return fmt.Errorf("diag: convergence history is empty")
	}

	xAxis := make([]string, len(history))
	data := make([]opts.LineData, len(history))
	for i, v := range history {
		xAxis[i] = strconv.Itoa(i)
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Identification convergence",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "iteration",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "step size",
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(xAxis).AddSeries("step size", data)

	page := components.NewPage().SetPageTitle("sysid convergence")
	page.AddCharts(line)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("diag: create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("diag: render %s: %w", outPath, err)
	}
	return nil
}
