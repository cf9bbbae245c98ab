package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/codelane/coderoom/internal/app"
	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/store"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Open the lesson map and start learning",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

// runLearn opens the store, builds dependencies, and launches the TUI.
func runLearn(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profilePath, err := profile.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve profile path: %w", err)
	}
	prof, err := profile.Load(profilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	opts := app.Options{
		Units:       st.UnitRepo(),
		Submissions: st.SubmissionRepo(),
		Profile:     prof,
		ProfilePath: profilePath,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI checking will be unavailable; guided steps still run without it.")
		opts.Gateway = grader.New(nil)
	} else {
		opts.Gateway = grader.New(provider)
	}

	return app.Run(opts)
}
