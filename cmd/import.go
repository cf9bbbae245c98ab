package cmd

import (
	"context"
	"fmt"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <curriculum.json>",
	Short: "Import a curriculum file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := curriculum.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
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

		if err := s.UnitRepo().Import(context.Background(), units); err != nil {
			return fmt.Errorf("import curriculum: %w", err)
		}

		lessons := 0
		for _, u := range units {
			lessons += len(u.Lessons)
		}
		fmt.Printf("Imported %d units with %d lessons.\n", len(units), lessons)
		return nil
	},
}
