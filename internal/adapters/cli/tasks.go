package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// defaultTaskLimit is how many tasks a listing shows without --limit.
const defaultTaskLimit = 50

// taskJSON is the --json shape of a task row.
type taskJSON struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"project_id"`
	Project     string   `json:"project,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Priority    int      `json:"priority"`
	Due         string   `json:"due,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	Checked     bool     `json:"checked"`
	URL         string   `json:"url,omitempty"`
}

func toTaskJSON(t domain.Task, projectName, assignee string) taskJSON {
	return taskJSON{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		Project:     projectName,
		SectionID:   t.SectionID,
		ParentID:    t.ParentID,
		Labels:      t.Labels,
		Priority:    t.Priority,
		Due:         dueLabel(t.Due),
		AssigneeID:  t.AssigneeID,
		Assignee:    assignee,
		Checked:     t.Checked,
		URL:         t.URL,
	}
}

func (r *runner) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task", "t"},
		Short:   "List, view, add and complete tasks",
	}
	cmd.AddCommand(
		r.tasksListCommand(),
		r.tasksViewCommand(),
		r.tasksAddCommand(),
		r.tasksDoneCommand(),
	)
	return cmd
}

func (r *runner) tasksListCommand() *cobra.Command {
	var (
		in    ports.ListTasksInput
		limit limitFlags
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active tasks",
		Example: `  todo tasks list --project Work --section Backlog
  todo tasks list --filter "Today"
  todo tasks list --query "p1 & overdue" --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = limit.value()
			in.Cursor = limit.cursor

			list, err := r.env.Tasks.ListTasks(cmd.Context(), in)
			if err != nil {
				return err
			}

			data := make([]taskJSON, len(list.Rows))
			for i, row := range list.Rows {
				data[i] = toTaskJSON(row.Task, row.ProjectName, row.Assignee)
			}
			p := r.printer()
			p.Success(data, &Meta{Count: len(data), NextCursor: list.NextCursor}, func() {
				if len(list.Rows) == 0 {
					fmt.Fprintln(p.out, p.styles.muted.Render("no tasks"))
					return
				}
				p.taskRows(list.Rows)
				p.Continue(list.NextCursor)
			})
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in.ProjectRef, "project", "p", "", "project name or id:<id>")
	f.StringVarP(&in.SectionRef, "section", "s", "", "section name or id:<id> (requires --project)")
	f.StringVarP(&in.LabelRef, "label", "l", "", "label name or id:<id>")
	f.StringVarP(&in.FilterRef, "filter", "f", "", "saved filter name or id:<id>")
	f.StringVarP(&in.Query, "query", "q", "", "raw filter query")
	limit.register(cmd, defaultTaskLimit)
	cmd.MarkFlagsMutuallyExclusive("filter", "query")
	return cmd
}

func (r *runner) tasksViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <task>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := r.env.Tasks.ViewTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := r.printer()
			p.Success(toTaskJSON(row.Task, row.ProjectName, row.Assignee), nil, func() {
				p.taskDetail(row)
			})
			return nil
		},
	}
}

func (r *runner) tasksAddCommand() *cobra.Command {
	var in ports.AddTaskInput

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a task",
		Example: `  todo tasks add "Write report" --project Work --due tomorrow
  todo tasks add "Review PR" --project id:6Jf8VQXxpwv56VQ7 --assignee grace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Content = args[0]

			task, err := r.env.Tasks.AddTask(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := r.printer()
			p.Success(toTaskJSON(*task, "", ""), nil, func() {
				fmt.Fprintf(p.out, "created %s %s\n", p.styles.muted.Render("id:"+task.ID), task.Content)
			})
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in.ProjectRef, "project", "p", "", "project name or id:<id> (default: inbox)")
	f.StringVarP(&in.SectionRef, "section", "s", "", "section name or id:<id> (requires --project)")
	f.StringVar(&in.ParentRef, "parent", "", "parent task name or id:<id>")
	f.StringVarP(&in.AssigneeRef, "assignee", "a", "", `assignee name, id:<id> or "me"`)
	f.StringSliceVarP(&in.Labels, "label", "l", nil, "label name or id:<id> (repeatable)")
	f.IntVarP(&in.Priority, "priority", "P", 0, "priority 1 (normal) to 4 (urgent)")
	f.StringVarP(&in.DueString, "due", "d", "", `due date in natural language ("tomorrow 9am")`)
	f.StringVar(&in.Description, "description", "", "task description")
	return cmd
}

func (r *runner) tasksDoneCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "done <task>",
		Aliases: []string{"complete", "close"},
		Short:   "Complete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.env.Tasks.CompleteTask(cmd.Context(), args[0], strict)
			if err != nil {
				return err
			}
			p := r.printer()
			p.Success(toTaskJSON(*task, "", ""), nil, func() {
				fmt.Fprintf(p.out, "completed %s %s\n", p.styles.muted.Render("id:"+task.ID), task.Content)
			})
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "only accept an id:<id> reference")
	return cmd
}
