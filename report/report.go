package report

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config defines the report parameters passed from CLI
type Config struct {
	InputFile      string  // optional JSON metrics file, "-" for stdin, empty for the built-in fixture
	OutputPath     string  // where the chart image is written
	Title          string  // chart title
	BaselineLabel  string  // legend label for the baseline series
	CandidateLabel string  // legend label for the candidate series
	WidthInches    float64 // figure width in inches
	HeightInches   float64 // figure height in inches
	LogFormat      string  // "json" or "console", default is "console"
}

// Run orchestrates the full report lifecycle: load metrics, validate,
// render, save.
func Run(cfg Config) error {
	setupLog(cfg)
	initialLog(cfg)

	var metrics []Metric
	if cfg.InputFile != "" {
		loaded, err := LoadMetrics(cfg.InputFile)
		if err != nil {
			return err
		}
		metrics = loaded
	} else {
		log.Info().Msg("No input file given, using built-in placeholder metrics")
		metrics = DefaultMetrics()
	}

	if err := Render(metrics, cfg); err != nil {
		return err
	}

	log.Info().Str("output", cfg.OutputPath).Msg("Report complete")
	return nil
}

func initialLog(cfg Config) {
	input := cfg.InputFile
	if input == "" {
		input = "(built-in fixture)"
	}

	log.Info().
		Str("input", input).
		Str("output", cfg.OutputPath).
		Str("baseline_label", cfg.BaselineLabel).
		Str("candidate_label", cfg.CandidateLabel).
		Float64("width_in", cfg.WidthInches).
		Float64("height_in", cfg.HeightInches).
		Msg("Starting report")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}
