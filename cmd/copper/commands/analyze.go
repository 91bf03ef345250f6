package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/coppermetrics/internal/analysis"
	"github.com/wonny/coppermetrics/internal/ingest"
	"github.com/wonny/coppermetrics/internal/series"
	"github.com/wonny/coppermetrics/internal/store"
	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [start end]",
	Short: "Run the settlement analysis",
	Long: `Runs the full settlement-price analysis and saves the report.

Without arguments the whole loaded history is analyzed. With two
YYYY-MM-DD arguments only that period (inclusive) is analyzed.

Example:
  go run ./cmd/copper analyze
  go run ./cmd/copper analyze 2023-01-01 2024-12-31`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runAnalyze,
}

var analyzeNoSave bool

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "print the summary without saving the report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected both start and end dates, got only %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	log := logger.New(cfg)

	var period *series.Period
	if len(args) == 2 {
		start, err := series.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", args[0])
		}
		end, err := series.ParseDate(args[1])
		if err != nil {
			return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", args[1])
		}
		if end.Before(start) {
			return fmt.Errorf("end date %s precedes start date %s", args[1], args[0])
		}
		p := series.NewPeriod(start, end)
		period = &p
	}

	loader := ingest.NewLoader(cfg.CSVPath(), log)
	history, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load settlement history: %w", err)
	}

	runAt := time.Now()
	analyzer := analysis.NewAnalyzer(log)
	report, err := analyzer.Analyze(history, period)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	report.Metadata = analysis.NewRunMetadata(cfg.CSVPath(), history, runAt)

	printSummary(report)

	if analyzeNoSave {
		return nil
	}

	files := store.NewFileStore(cfg, log)
	path, err := files.Save(report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	backupPath, err := files.SaveBackup(report, runAt)
	if err != nil {
		return fmt.Errorf("save report backup: %w", err)
	}

	fmt.Printf("\nReport saved to %s\n", path)
	fmt.Printf("Backup saved to %s\n", backupPath)
	return nil
}

func printSummary(report *analysis.Report) {
	fmt.Println("=== Copper Settlement Analysis ===")
	fmt.Printf("\nPeriod: %s ~ %s (%d observations)\n",
		report.Period.Start, report.Period.End, report.Period.TotalDays)
	fmt.Printf("Average settlement: %.2f (range %.2f ~ %.2f)\n",
		report.OverallStats.Mean, report.OverallStats.Min, report.OverallStats.Max)

	if len(report.PricingStrategy) > 0 {
		top := report.PricingStrategy[0]
		fmt.Printf("\nTop strategy: %s\n", top.Name)
		fmt.Printf("  %s\n", top.Description)
		fmt.Printf("  Performance vs monthly avg: %+.3f%%  (success rate %.1f%%, risk %s)\n",
			top.AvgPerformanceVsMonthly, top.SuccessRate, top.RiskLevel)
	}

	if len(report.WeekdayAnalysis) > 0 {
		best := report.WeekdayAnalysis[0]
		fmt.Printf("\nBest weekday: %s (beats monthly avg %.1f%% of the time)\n",
			best.Weekday, best.BeatsMonthlyAvgPct)
	}

	if len(report.WeeklyPatterns) > 0 {
		best := report.WeeklyPatterns[0]
		fmt.Printf("Best week: %s (%+.3f%% vs monthly avg)\n",
			best.Week, best.AvgPerformanceVsMonth)
	}

	fmt.Printf("\nTrend: %s\n", report.Trends.CurrentTrend)
	fmt.Printf("Volatility (daily return std): %.3f%%\n", report.Volatility.OverallVolatility)
}
