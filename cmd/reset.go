package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all of the student's submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		profilePath, err := profile.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve profile path: %w", err)
		}
		prof, err := profile.Load(profilePath)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if prof == nil {
			fmt.Println("No student profile yet; nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes ALL progress for %s. Type 'yes' to continue: ", prof.Name)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
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

		n, err := s.SubmissionRepo().DeleteByStudent(context.Background(), prof.ID)
		if err != nil {
			return fmt.Errorf("delete submissions: %w", err)
		}
		fmt.Printf("Deleted %d submissions.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
