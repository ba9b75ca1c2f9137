package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/gap-advisor/internal/config"
	"github.com/jonathan/gap-advisor/internal/gap"
	"github.com/jonathan/gap-advisor/internal/ingestion"
	"github.com/jonathan/gap-advisor/internal/observability"
	"github.com/jonathan/gap-advisor/internal/questions"
	"github.com/jonathan/gap-advisor/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job posting",
	Long:  "Run the full gap analysis for a resume and a job posting, then generate prioritized follow-up questions about the discovered gaps.",
	RunE:  runAnalyze,
}

var (
	analyzeCVFile       string
	analyzeJobFile      string
	analyzeJobURL       string
	analyzeConfigFile   string
	analyzeAPIKey       string
	analyzeUseAI        bool
	analyzeLanguage     string
	analyzeMaxQuestions int
	analyzeOutFile      string
	analyzeVerbose      bool
)

// analysisReport is the JSON document the analyze command emits.
type analysisReport struct {
	Result          *types.GapAnalysisResult `json:"result"`
	Summary         types.GapSummary         `json:"summary"`
	Recommendations types.Recommendations    `json:"recommendations"`
	QuestionGroups  []*types.QuestionGroup   `json:"question_groups"`
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVFile, "cv", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "use-ai", true, "Use AI strategies (fall back to heuristics on failure)")
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "en", "Question language: es, en, pt, fr")
	analyzeCmd.Flags().IntVarP(&analyzeMaxQuestions, "max-questions", "n", 10, "Maximum follow-up questions")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print analysis summaries")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		CV:     analyzeCVFile,
		Job:    analyzeJobFile,
		JobURL: analyzeJobURL,
		APIKey: analyzeAPIKey,
	}
	// Language and max-questions carry flag defaults that would mask
	// config file values, so they only count when the user set them.
	if cmd.Flags().Changed("language") {
		cfg.Language = analyzeLanguage
	}
	if cmd.Flags().Changed("max-questions") {
		cfg.MaxQuestions = analyzeMaxQuestions
	}

	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Language == "" {
		cfg.Language = analyzeLanguage
	}
	if cfg.MaxQuestions == 0 {
		cfg.MaxQuestions = analyzeMaxQuestions
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.CV == "" {
		return fmt.Errorf("must provide --cv")
	}

	cvBytes, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	cvText := ingestion.CleanText(string(cvBytes))

	jobText, err := loadJobText(cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := newClient(ctx, cfg.APIKey, analyzeUseAI)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}
	useAI := analyzeUseAI && client != nil

	resolver := gap.NewResolver(client)
	result, err := resolver.Resolve(ctx, cvText, jobText, useAI)
	if err != nil {
		return err
	}

	engine := questions.NewEngine(client, types.Language(cfg.Language))
	generated := engine.Generate(ctx, result, cfg.MaxQuestions, true, useAI)
	groups := engine.Group(generated)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirements(result.JobRequirements)
		printer.PrintGapAnalysis(result)
		printer.PrintQuestionGroups(groups)
	}

	report := analysisReport{
		Result:          result,
		Summary:         result.GetGapSummary(),
		Recommendations: resolver.Recommendations(result),
		QuestionGroups:  groups,
	}
	return writeJSON(analyzeOutFile, report)
}
