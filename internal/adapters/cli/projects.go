package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// defaultProjectLimit is how many projects a listing shows without --limit.
const defaultProjectLimit = 100

type projectJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	WorkspaceID string `json:"workspace_id,omitempty"`
	Scope       string `json:"scope"`
	IsInbox     bool   `json:"is_inbox"`
	IsFavorite  bool   `json:"is_favorite"`
	URL         string `json:"url,omitempty"`
}

func (r *runner) projectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List projects",
	}
	cmd.AddCommand(r.projectsListCommand())
	return cmd
}

func (r *runner) projectsListCommand() *cobra.Command {
	var limit limitFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := r.env.Tasks.ListProjects(cmd.Context(), limit.value(), limit.cursor)
			if err != nil {
				return err
			}

			data := make([]projectJSON, len(list.Projects))
			for i, pr := range list.Projects {
				data[i] = projectJSON{
					ID:          pr.ID,
					Name:        pr.Name,
					Color:       pr.Color,
					ParentID:    pr.ParentID,
					WorkspaceID: pr.WorkspaceID,
					Scope:       pr.Scope().String(),
					IsInbox:     pr.IsInbox,
					IsFavorite:  pr.IsFavorite,
					URL:         pr.URL,
				}
			}
			p := r.printer()
			p.Success(data, &Meta{Count: len(data), NextCursor: list.NextCursor}, func() {
				if len(list.Projects) == 0 {
					fmt.Fprintln(p.out, p.styles.muted.Render("no projects"))
					return
				}
				p.projectRows(list.Projects)
				p.Continue(list.NextCursor)
			})
			return nil
		},
	}
	limit.register(cmd, defaultProjectLimit)
	return cmd
}
