package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/logger"
	"github.com/minhle/cv-match/internal/pipeline"
	"github.com/minhle/cv-match/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against job descriptions",
	Long:  "Run the full pipeline on a resume file and score it against the jobs listed in a JSON file.",
	RunE:  runScore,
}

var (
	scoreResumeFile  string
	scoreJobsFile    string
	scoreHistoryFile string
	scoreOutputFile  string
	scoreAPIKey      string
	scoreTimeout     time.Duration
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume PDF or text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobsFile, "jobs", "j", "", "Path to JSON file with an array of job descriptions (required)")
	scoreCmd.Flags().StringVar(&scoreHistoryFile, "history", "", "Path to JSON file with interaction history")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().DurationVar(&scoreTimeout, "timeout", 5*time.Minute, "Pipeline timeout")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	apiKey := resolveAPIKey(scoreAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	text, err := readResumeText(scoreResumeFile)
	if err != nil {
		return err
	}

	jobsData, err := os.ReadFile(scoreJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.JobDescription
	if err := json.Unmarshal(jobsData, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs file: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file must contain at least one job description")
	}

	var history *types.InteractionHistory
	if scoreHistoryFile != "" {
		historyData, err := os.ReadFile(scoreHistoryFile)
		if err != nil {
			return fmt.Errorf("failed to read history file: %w", err)
		}
		history = &types.InteractionHistory{}
		if err := json.Unmarshal(historyData, history); err != nil {
			return fmt.Errorf("failed to parse history file: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	response, err := pipeline.New(client, logger.NewNop(), pipeline.DefaultOptions()).Score(ctx, pipeline.ScoreRequest{
		ResumeText: text,
		Jobs:       jobs,
		History:    history,
	})
	if err != nil {
		return err
	}

	return writeJSON(scoreOutputFile, response)
}
