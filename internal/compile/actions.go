package compile

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/tweet-corpus/models"
	"github.com/dtnitsch/tweet-corpus/pkg/compiler"
	"github.com/dtnitsch/tweet-corpus/pkg/corpus"
	"github.com/dtnitsch/tweet-corpus/pkg/db"
	"github.com/dtnitsch/tweet-corpus/pkg/langid"
	"github.com/dtnitsch/tweet-corpus/pkg/writer"
	"github.com/urfave/cli/v2"
)

// CompileAction runs a full corpus build: discover, compile, write outputs.
func CompileAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := buildConfig(c)
	if err != nil {
		return err
	}

	comp, err := compiler.FromDirectory(config.InputDir, config, logger)
	if err != nil {
		return err
	}
	if config.DetectLanguage {
		logger.Info("building language detector")
		comp.SetDetector(langid.NewDetector())
	}

	logger.Info("starting compile",
		"input_dir", config.InputDir,
		"files", comp.FileCount(),
		"workers", config.WorkerCount,
		"prune_threshold", config.PruneThreshold)

	languages := comp.Compile()

	if err := writer.WriteCorpus(config.OutputDir, languages); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}

	if config.DBPath != "" {
		if err := persistRun(config, comp.FileCount(), languages, logger); err != nil {
			return err
		}
	}

	logger.Info("compile finished",
		"languages", len(languages),
		"output_dir", config.OutputDir,
		"elapsed", time.Since(startTime).String())
	return nil
}

// buildConfig layers CLI flags over the optional YAML config file.
func buildConfig(c *cli.Context) (*models.CompileConfig, error) {
	config := models.DefaultCompileConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadCompileConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("input") {
		config.InputDir = c.String("input")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("threshold") {
		config.PruneThreshold = c.Uint64("threshold")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}

	if config.InputDir == "" {
		return nil, fmt.Errorf("no input directory provided via --input flag or config file")
	}
	return config, nil
}

// persistRun stores the finished table in the SQLite sink.
func persistRun(config *models.CompileConfig, fileCount int, languages corpus.LanguageMap, logger *slog.Logger) error {
	database, err := db.Open(config.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.InsertRun(config.InputDir, fileCount, config.PruneThreshold)
	if err != nil {
		return err
	}
	if err := database.InsertLanguageMap(runID, languages); err != nil {
		return err
	}

	logger.Info("run persisted", "db", config.DBPath, "run_id", runID)
	return nil
}
