package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/llm/openai"
	"github.com/Salam-35/PhdTrack-sub000/internal/pipeline"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// extract runs the transcript pipeline once without touching the database:
// useful for checking what the model pulls out of a transcript before
// registering it against an applicant.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	var (
		filePath    = flag.String("file", "", "transcript file (txt, md, or image)")
		institution = flag.String("institution", "", "institution name for prompt context")
		level       = flag.String("level", "", "degree level for prompt context")
	)
	flag.Parse()

	var text string
	if *filePath == "" {
		// read pasted transcript from stdin
		b, err := io.ReadAll(os.Stdin)
		if err != nil || len(b) == 0 {
			logger.Error("usage: extract -file transcript.txt, or pipe transcript text on stdin")
			os.Exit(2)
		}
		text = string(b)
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		VisionModel:     cfg.LLM.VisionModel,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)
	runner := pipeline.NewRunner(logger, pipeline.Config{
		ChunkBudget: cfg.Extract.ChunkBudget,
		GradeMap:    transcript.DefaultGradeMap(),
	}, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := runner.Run(ctx, pipeline.Input{
		Text:        text,
		FilePath:    *filePath,
		Institution: *institution,
		Level:       *level,
	})
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction complete",
		"courses", len(res.Courses), "gpa", res.GPA,
		"chunks", res.Chunks, "warnings", len(res.Warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	for _, c := range res.Courses {
		mark := " "
		if !c.Included {
			mark = "x"
		}
		fmt.Printf("[%s] %-10s %-40s %-3s %.1f\n", mark, c.Code, c.Name, c.Grade, c.CreditHours)
	}
	for _, w := range res.Warnings {
		fmt.Printf("warning (chunk %d): %s\n", w.Chunk, w.Msg)
	}
	fmt.Printf("GPA: %.3f\n", res.GPA)
}
