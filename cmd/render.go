package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tclemos/benchplot/report"
)

var (
	inputFile      string
	outputPath     string
	title          string
	baselineLabel  string
	candidateLabel string
	widthInches    float64
	heightInches   float64
	logFormat      string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the comparison chart and write it to the output path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender()
	},
}

func runRender() error {
	cfg := report.Config{
		InputFile:      inputFile,
		OutputPath:     outputPath,
		Title:          title,
		BaselineLabel:  baselineLabel,
		CandidateLabel: candidateLabel,
		WidthInches:    widthInches,
		HeightInches:   heightInches,
		LogFormat:      logFormat,
	}
	return report.Run(cfg)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&inputFile, "input", "", "JSON metrics file to plot ('-' for stdin, empty for the built-in placeholder set)")
	pf.StringVar(&outputPath, "output", "../diagrams/ts-go-performance.png", "Path to write the chart image")
	pf.StringVar(&title, "title", "TypeScript vs Go Implementation Performance", "Chart title")
	pf.StringVar(&baselineLabel, "baseline-label", "TypeScript", "Legend label for the baseline series")
	pf.StringVar(&candidateLabel, "candidate-label", "Go Port", "Legend label for the candidate series")
	pf.Float64Var(&widthInches, "width", 10, "Figure width in inches")
	pf.Float64Var(&heightInches, "height", 6, "Figure height in inches")
	pf.StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
}
