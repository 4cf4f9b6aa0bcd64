package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/cv-match/internal/extract"
	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/logger"
	"github.com/minhle/cv-match/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into structured JSON",
	Long:  "Parse a resume PDF or text file into a structured resume record printed as JSON.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseAPIKey     string
	parseTimeout    time.Duration
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume PDF or text file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().DurationVar(&parseTimeout, "timeout", 2*time.Minute, "Model call timeout")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	apiKey := resolveAPIKey(parseAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	text, err := readResumeText(parseInputFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	record, err := pipeline.New(client, logger.NewNop(), pipeline.DefaultOptions()).Parse(ctx, text)
	if err != nil {
		return err
	}

	return writeJSON(parseOutputFile, record)
}

// readResumeText loads the input file, extracting text when it is a PDF.
func readResumeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		text, err := extract.Text(data)
		if err != nil {
			return "", err
		}
		return text, nil
	}
	return string(data), nil
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
