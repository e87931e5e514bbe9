package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadMetrics reads a JSON array of metrics from path, or from standard
// input when path is "-". The slice order is the chart order.
func LoadMetrics(path string) ([]Metric, error) {
	if path == "-" {
		log.Info().Msg("Loading metrics from standard input")
		metrics, err := readMetrics(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metrics from stdin: %w", err)
		}
		return metrics, nil
	}

	log.Info().Str("path", path).Msg("Loading metrics from file")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer file.Close()

	metrics, err := readMetrics(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics file %s: %w", path, err)
	}
	return metrics, nil
}

func readMetrics(r io.Reader) ([]Metric, error) {
	var metrics []Metric
	if err := json.NewDecoder(r).Decode(&metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics JSON: %w", err)
	}
	return metrics, nil
}
