package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		profilePath, err := profile.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve profile path: %w", err)
		}
		prof, err := profile.Load(profilePath)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if prof == nil {
			fmt.Println("No student profile yet. Run `coderoom learn` first.")
			return nil
		}

		ctx := context.Background()
		counts, err := s.SubmissionRepo().CountByStatus(ctx, prof.ID)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		units, err := s.UnitRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("query curriculum: %w", err)
		}
		totalLessons := 0
		for _, u := range units {
			totalLessons += len(u.Lessons)
		}

		fmt.Printf("Progress for %s\n", prof.Name)
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-14s  %d\n", "In progress", counts[curriculum.StatusDraft])
		fmt.Printf("%-14s  %d\n", "Handed in", counts[curriculum.StatusSubmitted])
		fmt.Printf("%-14s  %d\n", "Graded", counts[curriculum.StatusGraded])
		fmt.Println(strings.Repeat("─", 40))

		done := counts[curriculum.StatusSubmitted] + counts[curriculum.StatusGraded]
		if totalLessons > 0 {
			fmt.Printf("%-14s  %d / %d lessons\n", "Completed", done, totalLessons)
		}
		return nil
	},
}
