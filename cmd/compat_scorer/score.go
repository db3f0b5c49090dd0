package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/compat-scorer/internal/config"
	"github.com/jonathan/compat-scorer/internal/engine"
	"github.com/jonathan/compat-scorer/internal/logger"
	"github.com/jonathan/compat-scorer/internal/observability"
	"github.com/jonathan/compat-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or more comparison reports",
	Long:  "Score parses each comparison report file and composes the final compatibility result from the report, the supplied component sub-scores, and the critical/preferred requirement tallies.",
	RunE:  runScore,
}

var (
	scoreReportFiles []string
	scoreConfigFile  string
	scoreVerbose     bool
	scoreJSONLogs    bool
	scoreDebug       bool

	scoreCoreCompetency      float64
	scoreExperienceSeniority float64
	scorePotentialAbility    float64
	scoreCompanyFit          float64

	scoreCriticalMatched  int
	scoreCriticalTotal    int
	scorePreferredMatched int
	scorePreferredTotal   int
)

func init() {
	scoreCmd.Flags().StringArrayVarP(&scoreReportFiles, "report", "r", nil, "Path to a comparison report text file (repeatable)")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to engine config JSON (weights, thresholds, bonus policy)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print parsed report and score breakdown")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit logs as JSON")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug logging")

	scoreCmd.Flags().Float64Var(&scoreCoreCompetency, "core-competency", 0, "Core competency sub-score (0-100)")
	scoreCmd.Flags().Float64Var(&scoreExperienceSeniority, "experience-seniority", 0, "Experience & seniority sub-score (0-100)")
	scoreCmd.Flags().Float64Var(&scorePotentialAbility, "potential-ability", 0, "Potential & ability sub-score (0-100)")
	scoreCmd.Flags().Float64Var(&scoreCompanyFit, "company-fit", 0, "Company fit sub-score (0-100)")

	scoreCmd.Flags().IntVar(&scoreCriticalMatched, "critical-matched", 0, "Matched critical requirements")
	scoreCmd.Flags().IntVar(&scoreCriticalTotal, "critical-total", 0, "Total critical requirements")
	scoreCmd.Flags().IntVar(&scorePreferredMatched, "preferred-matched", 0, "Matched preferred requirements")
	scoreCmd.Flags().IntVar(&scorePreferredTotal, "preferred-total", 0, "Total preferred requirements")

	_ = scoreCmd.MarkFlagRequired("report")

	rootCmd.AddCommand(scoreCmd)
}

// scoredReport pairs an input file with its composed result for JSON output.
type scoredReport struct {
	Report string                     `json:"report"`
	RunID  string                     `json:"run_id"`
	Result *types.CompatibilityResult `json:"result"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(scoreJSONLogs, scoreDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := &config.Config{}
	if scoreConfigFile != "" {
		cfg, err = config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
	}

	eng, err := engine.New(
		cfg.EngineWeights(),
		cfg.EngineThresholds(),
		engine.WithLogger(log),
		engine.WithBonusPolicy(cfg.BonusPolicy()),
	)
	if err != nil {
		return err
	}

	components := types.ComponentScores{
		CoreCompetency:      scoreCoreCompetency,
		ExperienceSeniority: scoreExperienceSeniority,
		PotentialAbility:    scorePotentialAbility,
		CompanyFit:          scoreCompanyFit,
	}
	critical := types.RequirementTally{Matched: scoreCriticalMatched, Total: scoreCriticalTotal}
	preferred := types.RequirementTally{Matched: scorePreferredMatched, Total: scorePreferredTotal}

	// The engine is a pure function over immutable inputs, so reports can
	// be scored concurrently without locks.
	scored := make([]scoredReport, len(scoreReportFiles))
	raws := make([]string, len(scoreReportFiles))
	var group errgroup.Group
	for i, path := range scoreReportFiles {
		i, path := i, path
		group.Go(func() error {
			runID := uuid.New().String()

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read report file %s: %w", path, err)
			}
			raws[i] = string(raw)

			result := eng.Score(string(raw), components, critical, preferred)
			log.Info("scored comparison report",
				zap.String("run_id", runID),
				zap.String("report", path),
				zap.Float64("final_score", result.FinalScore),
				zap.String("status", string(result.CategoryStatus)),
			)

			scored[i] = scoredReport{Report: path, RunID: runID, Result: &result}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if scoreVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for i := range scored {
			printer.PrintComparisonReport(eng.Parse(raws[i]))
			printer.PrintResult(scored[i].Result)
		}
	}

	out, err := json.MarshalIndent(scored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
