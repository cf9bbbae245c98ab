package cmd

import (
	"context"
	"fmt"

	"github.com/codelane/coderoom/internal/authoring"
	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/store"
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author <topic>",
	Short: "Generate a guided lesson with the LLM",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		for _, a := range args[1:] {
			topic += " " + a
		}
		editor, _ := cmd.Flags().GetString("editor")
		audience, _ := cmd.Flags().GetString("audience")
		unitID, _ := cmd.Flags().GetInt("unit")

		if editor != string(curriculum.EditorBlocks) && editor != string(curriculum.EditorText) {
			return fmt.Errorf("invalid editor %q: must be %q or %q", editor, curriculum.EditorBlocks, curriculum.EditorText)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := authoring.NewService(provider, authoring.DefaultConfig())
		fmt.Printf("Generating a lesson about %q...\n", topic)
		lesson, err := svc.Generate(ctx, authoring.Input{
			Topic:    topic,
			Editor:   curriculum.EditorType(editor),
			Audience: audience,
		})
		if err != nil {
			return err
		}

		lesson.UnitID = unitID
		id, err := s.UnitRepo().SaveLesson(ctx, *lesson)
		if err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}

		fmt.Printf("Saved %q (%d steps) as %s\n", lesson.Title, len(lesson.Steps), id)
		return nil
	},
}

func init() {
	authorCmd.Flags().StringP("editor", "e", string(curriculum.EditorText), "Target editor: blocks or text")
	authorCmd.Flags().StringP("audience", "a", "", "Who the lesson is for, e.g. \"grade 5, first year of coding\"")
	authorCmd.Flags().IntP("unit", "u", 0, "Unit ID to attach the lesson to (0 = unassigned)")
}
