package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/logging"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/pipeline"
)

func main() {
	input := flag.String("input", "-", "path to a JSON array of reviews, or - for stdin")
	industry := flag.String("industry", string(aspects.IndustryGeneral), "aspect vocabulary to use")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reviews, err := readReviews(*input)
	if err != nil {
		slog.Error("[Main] Failed to read reviews", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report, err := pipeline.New(cfg).RunFullAnalysis(reviews, aspects.Industry(*industry))
	if err != nil {
		slog.Error("[Main] Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		slog.Error("[Main] Failed to encode report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func readReviews(path string) ([]models.Review, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var reviews []models.Review
	if err := json.NewDecoder(reader).Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
