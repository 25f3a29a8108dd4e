package cli

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talkgen/internal/loader"
	"talkgen/internal/site"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the talks output tree from the CSV source",
		Long:  "Reads the talks CSV, normalizes and de-duplicates records, and writes per-talk pages plus index pages. User notes blocks in existing files are preserved.",
		Run:   runGenerate,
	}

	cmd.Flags().String("csv", "", "Override the CSV path from the config")
	cmd.Flags().String("out", "", "Override the output dir from the config")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	if v, _ := cmd.Flags().GetString("csv"); v != "" {
		cfg.CSVPath = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutDir = v
	}

	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	runID := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	log := logger.With(zap.String("run_id", runID))

	log.Info("generation started", zap.String("csv", cfg.CSVPath), zap.String("out", cfg.OutDir))

	talks, err := loader.Load(cfg.CSVPath)
	if err != nil {
		exitErr("load talks", err)
	}
	log.Debug("talks loaded", zap.Int("records", len(talks)))

	written, err := site.Build(cfg.OutDir, talks, site.Options{Title: cfg.SiteTitle, RecentLimit: cfg.RecentLimit})
	if err != nil {
		exitErr("build site", err)
	}

	log.Info("generation finished", zap.Int("records", len(talks)), zap.Int("files_written", written))
}
