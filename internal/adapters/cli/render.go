package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Palette shared by all text output.
var (
	accentColor = lipgloss.Color("#A78BFA")
	mutedColor  = lipgloss.Color("#6C7086")
	errorColor  = lipgloss.Color("#F38BA8")
)

type styles struct {
	accent  lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
	errCode lipgloss.Style
}

// newStyles returns the palette for a terminal, or unstyled text otherwise.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{accent: plain, muted: plain, bold: plain, errCode: plain}
	}
	return styles{
		accent:  lipgloss.NewStyle().Foreground(accentColor),
		muted:   lipgloss.NewStyle().Foreground(mutedColor),
		bold:    lipgloss.NewStyle().Bold(true),
		errCode: lipgloss.NewStyle().Foreground(errorColor).Bold(true),
	}
}

// renderTable lays rows out in borderless, left-aligned columns. Column
// styles apply by index; missing entries render plain.
func renderTable(w io.Writer, rows [][]string, colStyles []lipgloss.Style) {
	if len(rows) == 0 {
		return
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if col < len(colStyles) {
				style = colStyles[col]
			}
			if col < len(rows[0])-1 {
				style = style.PaddingRight(2)
			}
			return style
		}).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// priorityLabel renders the API priority (4 most urgent) as p1..p4. The
// default priority renders empty.
func priorityLabel(priority int) string {
	if priority <= domain.PriorityLowest || priority > domain.PriorityHighest {
		return ""
	}
	return fmt.Sprintf("p%d", domain.PriorityHighest+1-priority)
}

func dueLabel(due *domain.Due) string {
	if due == nil {
		return ""
	}
	if due.String != "" {
		return due.String
	}
	return due.Date
}

func (p *printer) taskRows(rows []ports.TaskRow) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			"id:" + r.Task.ID,
			r.Task.Content,
			priorityLabel(r.Task.Priority),
			dueLabel(r.Task.Due),
			r.ProjectName,
			r.Assignee,
		})
	}
	renderTable(p.out, cells, []lipgloss.Style{
		p.styles.muted, lipgloss.NewStyle(), p.styles.bold, lipgloss.NewStyle(), p.styles.accent, p.styles.muted,
	})
}

func (p *printer) taskDetail(row *ports.TaskRow) {
	t := row.Task
	fmt.Fprintln(p.out, p.styles.bold.Render(t.Content))

	field := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(p.out, "%s %s\n", p.styles.muted.Render(fmt.Sprintf("%-10s", name)), value)
	}
	field("id", "id:"+t.ID)
	field("project", row.ProjectName)
	if t.SectionID != "" {
		field("section", "id:"+t.SectionID)
	}
	if t.ParentID != "" {
		field("parent", "id:"+t.ParentID)
	}
	field("priority", priorityLabel(t.Priority))
	field("due", dueLabel(t.Due))
	field("assignee", row.Assignee)
	field("labels", strings.Join(t.Labels, ", "))
	field("url", t.URL)
	if t.Description != "" {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, t.Description)
	}
}

func (p *printer) projectRows(projects []domain.Project) {
	rows := make([][]string, 0, len(projects))
	for _, pr := range projects {
		rows = append(rows, []string{"id:" + pr.ID, pr.Name, pr.Scope().String()})
	}
	renderTable(p.out, rows, []lipgloss.Style{p.styles.muted, p.styles.accent, p.styles.muted})
}
