package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	baselineColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	candidateColor = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// barWidth is the width of a single bar; the two bars of a group sit
// flush against each other, offset half a width left and right of the slot.
const barWidth vg.Length = 18

// Render validates metrics and writes the grouped comparison chart to
// cfg.OutputPath. Validation failures surface before any file is touched.
func Render(metrics []Metric, cfg Config) error {
	if err := ValidateMetrics(metrics); err != nil {
		return err
	}

	p, err := buildPlot(metrics, cfg)
	if err != nil {
		return err
	}

	w := vg.Length(cfg.WidthInches) * vg.Inch
	h := vg.Length(cfg.HeightInches) * vg.Inch
	if err := savePlot(p, w, h, cfg.OutputPath); err != nil {
		return err
	}

	log.Info().
		Str("path", cfg.OutputPath).
		Int("metric_count", len(metrics)).
		Msg("Chart written")
	return nil
}

func buildPlot(metrics []Metric, cfg Config) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.Y.Label.Text = "Time (ms)"

	// An empty sequence still yields a valid chart, just without bars.
	if len(metrics) == 0 {
		return p, nil
	}

	baseline := make(plotter.Values, len(metrics))
	candidate := make(plotter.Values, len(metrics))
	operations := make([]string, len(metrics))
	for i, m := range metrics {
		baseline[i] = m.BaselineMs
		candidate[i] = m.CandidateMs
		operations[i] = m.Operation
	}

	baselineBars, err := plotter.NewBarChart(baseline, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build baseline bars: %w", err)
	}
	baselineBars.Color = baselineColor
	baselineBars.LineStyle.Width = 0
	baselineBars.Offset = -barWidth / 2

	candidateBars, err := plotter.NewBarChart(candidate, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate bars: %w", err)
	}
	candidateBars.Color = candidateColor
	candidateBars.LineStyle.Width = 0
	candidateBars.Offset = barWidth / 2

	p.Add(baselineBars, candidateBars)
	p.Legend.Add(cfg.BaselineLabel, baselineBars)
	p.Legend.Add(cfg.CandidateLabel, candidateBars)
	p.Legend.Top = true

	p.NominalX(operations...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	ann := speedupLabels(metrics)
	if len(ann.Labels) > 0 {
		labels, err := plotter.NewLabels(ann)
		if err != nil {
			return nil, fmt.Errorf("failed to build speedup labels: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = draw.XCenter
		}
		p.Add(labels)
	}

	return p, nil
}

// speedupLabels places one "N.Nx" annotation above the taller bar of each
// group. Entries without a defined speedup get no label.
func speedupLabels(metrics []Metric) plotter.XYLabels {
	var ann plotter.XYLabels
	for i, m := range metrics {
		if !m.HasSpeedup() {
			continue
		}
		taller := math.Max(m.BaselineMs, m.CandidateMs)
		ann.XYs = append(ann.XYs, plotter.XY{X: float64(i), Y: taller * 1.05})
		ann.Labels = append(ann.Labels, fmt.Sprintf("%.1fx", m.Speedup()))
	}
	return ann
}

// savePlot renders to a temp file next to path and renames it into place,
// so a failed write never leaves a truncated artifact at path.
func savePlot(p *plot.Plot, w, h vg.Length, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}

	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary chart file: %w", err)
	}

	if _, err := wt.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close chart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move chart into place: %w", err)
	}
	return nil
}
