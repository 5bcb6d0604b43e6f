package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}

			projects, err := d.store.List()
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects yet. Run 'maai idea \"<name>\"' to create one.")
				return nil
			}

			fmt.Printf("Projects (%d):\n\n", len(projects))
			for i, p := range projects {
				fmt.Printf("%d. %s\n", i+1, p.Slug)
				fmt.Println(dimStyle.Render(fmt.Sprintf("   Docs: %d  Sources: %d", p.Docs, p.Sources)))
				if !p.Modified.IsZero() {
					fmt.Println(dimStyle.Render("   Modified: " + p.Modified.Format("2006-01-02 15:04")))
				}
			}
			return nil
		},
	}
}
