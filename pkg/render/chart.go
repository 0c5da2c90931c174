// Package render draws a sweep state with go-echarts: the sites, the beach
// line arcs and the sweep line.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

// Bounds is the visible area.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Scene is what gets drawn.
type Scene struct {
	Sites     []voronoi.Site
	Arcs      []voronoi.Arc
	Directrix float64
	Bounds    Bounds
	// Samples is the number of points per arc.
	Samples int
	Title   string
}

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// ArcPoints samples the arc of a site between its breakpoints, clipped to the
// bounds horizontally. It returns nil for arcs outside the bounds.
func ArcPoints(site voronoi.Site, arc voronoi.Arc, directrix float64, b Bounds, samples int) [][2]float64 {
	left := math.Max(arc.Left, b.MinX)
	right := math.Min(arc.Right, b.MaxX)
	if left > right || math.IsNaN(left) || math.IsNaN(right) {
		return nil
	}

	// a site on the sweep line has a degenerate arc: a vertical ray
	if site.Y == directrix {
		return [][2]float64{{site.X, site.Y}, {site.X, b.MaxY}}
	}

	if samples < 2 {
		samples = 2
	}
	points := make([][2]float64, 0, samples)
	step := (right - left) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := left + float64(i)*step
		if i == samples-1 {
			x = right
		}
		points = append(points, [2]float64{x, voronoi.ParabolaY(site, x, directrix)})
	}
	return points
}

// Chart builds the scatter chart of a scene.
func Chart(scene Scene) *charts.Scatter {
	scatter := charts.NewScatter()

	title := scene.Title
	if title == "" {
		title = fmt.Sprintf("Beach line at y = %.2f", scene.Directrix)
	}
	prepareScatter(scatter, title)

	points := make([]opts.ScatterData, 0, len(scene.Sites))
	for _, site := range scene.Sites {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X, site.Y},
		})
	}

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, arc := range scene.Arcs {
		sampled := ArcPoints(scene.Sites[arc.Site], arc, scene.Directrix, scene.Bounds, scene.Samples)
		if len(sampled) == 0 {
			continue
		}

		data := make([]opts.LineData, 0, len(sampled))
		for _, p := range sampled {
			data = append(data, opts.LineData{Value: []float64{p[0], p[1]}})
		}

		line := charts.NewLine()
		line.AddSeries("Beach line", data).
			SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Width: 2,
				}),
			)
		scatter.Overlap(line)
	}

	sweep := charts.NewLine()
	sweep.AddSeries("Sweep line", []opts.LineData{
		{Value: []float64{scene.Bounds.MinX, scene.Directrix}},
		{Value: []float64{scene.Bounds.MaxX, scene.Directrix}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 1,
			Type:  "dashed",
		}),
	)
	scatter.Overlap(sweep)

	return scatter
}

// Render writes the chart of a scene as an HTML fragment.
func Render(w io.Writer, scene Scene) error {
	if err := Chart(scene).Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
