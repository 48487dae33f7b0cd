package main

import (
	"context"
	"os"

	"ai-counseling-be/internal/config"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/implementation"
	"ai-counseling-be/pkg/retrieval"

	"github.com/fatih/color"
)

// Loads the corpus file, prints category/severity stats, and runs a few
// sample retrievals so a dataset change can be eyeballed before deploying.
func main() {
	cfg := config.Load()
	sysLogger := logger.NewZapLogger("logs/verify_corpus.log", false)

	color.Cyan("🔍 Corpus Verification: %s\n", cfg.Corpus.FilePath)

	repo := implementation.NewScenarioFileRepository(cfg.Corpus.FilePath)
	scenarios, err := repo.LoadAll(context.Background())
	if err != nil {
		color.Red("Failed to load corpus: %v", err)
		os.Exit(1)
	}

	color.Green("Loaded %d scenarios", len(scenarios))

	byCategory := map[string]int{}
	bySeverity := map[string]int{}
	for _, s := range scenarios {
		byCategory[s.Category]++
		bySeverity[s.Severity]++
		if s.Id == "" || s.Situation == "" || s.CounselorResponse == "" || len(s.Keywords) == 0 {
			color.Red("  ⚠ incomplete scenario: %q", s.Id)
		}
	}

	color.Yellow("\nBy category:")
	for cat, n := range byCategory {
		color.White("  %-20s %d", cat, n)
	}
	color.Yellow("\nBy severity:")
	for sev, n := range bySeverity {
		color.White("  %-20s %d", sev, n)
	}

	engine := retrieval.NewEngine(repo, sysLogger)
	samples := []string{
		"I feel unheard and ignored when we talk",
		"we keep fighting about money and spending",
		"my partner shuts down every argument",
	}

	color.Yellow("\nSample retrievals:")
	for _, msg := range samples {
		matches := engine.FindRelevantScenarios(context.Background(), msg, 3)
		color.Cyan("\n  %q", msg)
		if len(matches) == 0 {
			color.Red("    no matches")
			continue
		}
		for i, m := range matches {
			color.Green("    %d. [%s] %s", i+1, m.Id, m.Situation)
		}
	}

	color.Cyan("\n✅ Corpus verification complete")
}
