package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/gap-advisor/internal/extraction"
	"github.com/jonathan/gap-advisor/internal/ingestion"
	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured requirements from a job posting",
	Long:  "Extract a structured, prioritized requirement set from a job posting file or URL.",
	RunE:  runExtract,
}

var (
	extractJobFile string
	extractJobURL  string
	extractAPIKey  string
	extractUseAI   bool
	extractOutFile string
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file")
	extractCmd.Flags().StringVar(&extractJobURL, "job-url", "", "URL to fetch the job posting from")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractUseAI, "use-ai", true, "Use AI extraction (falls back to heuristics on failure)")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted requirements")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	jobText, err := loadJobText(extractJobFile, extractJobURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := newClient(ctx, extractAPIKey, extractUseAI)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	extractor := extraction.NewExtractor(client)
	requirements, err := extractor.Extract(ctx, jobText, extractUseAI && client != nil)
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirements(requirements)
	}

	return writeJSON(extractOutFile, requirements)
}

// loadJobText loads posting text from a file or URL; exactly one source
// must be provided.
func loadJobText(jobFile, jobURL string) (string, error) {
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	switch {
	case jobFile != "":
		text, _, err := ingestion.FromFile(jobFile)
		return text, err
	case jobURL != "":
		text, _, err := ingestion.FromURL(context.Background(), jobURL)
		return text, err
	default:
		return "", fmt.Errorf("must provide --job or --job-url")
	}
}

// newClient builds an LLM client when AI use is requested and a key is
// available. A missing key is not an error; the heuristics take over.
func newClient(ctx context.Context, apiKey string, useAI bool) (llm.Client, error) {
	if !useAI {
		return nil, nil
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: no API key configured, using heuristic analysis only")
		return nil, nil
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

func writeJSON(outFile string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if outFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
