package project

import (
	"testing"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

func ptr(s string) *string { return &s }

func TestToDomainProject_Scope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  ProjectDTO
		want domain.Scope
	}{
		{
			name: "workspace project",
			dto:  ProjectDTO{ID: "p1", Name: "Roadmap", WorkspaceID: ptr("w1")},
			want: domain.ScopeWorkspace,
		},
		{
			name: "shared personal project",
			dto:  ProjectDTO{ID: "p2", Name: "Family", IsShared: true},
			want: domain.ScopeSharedPersonal,
		},
		{
			name: "private project",
			dto:  ProjectDTO{ID: "p3", Name: "Personal"},
			want: domain.ScopePrivate,
		},
		{
			name: "workspace wins over shared flag",
			dto:  ProjectDTO{ID: "p4", Name: "Ops", WorkspaceID: ptr("w1"), IsShared: true},
			want: domain.ScopeWorkspace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToDomainProject(&tt.dto)
			if s := got.Scope(); s != tt.want {
				t.Errorf("Scope() = %v, want %v", s, tt.want)
			}
		})
	}
}

func TestToDomainProject_FieldMapping(t *testing.T) {
	t.Parallel()

	got := ToDomainProject(&ProjectDTO{
		ID:           "p1",
		Name:         "Inbox",
		Color:        "grey",
		ParentID:     ptr("p0"),
		InboxProject: true,
		IsFavorite:   true,
		ViewStyle:    "list",
	})

	if got.ID != "p1" || got.Name != "Inbox" || got.Color != "grey" {
		t.Errorf("project = %+v", got)
	}
	if got.ParentID != "p0" {
		t.Errorf("ParentID = %q, want p0", got.ParentID)
	}
	if !got.IsInbox || !got.IsFavorite {
		t.Errorf("IsInbox/IsFavorite = %v/%v, want true/true", got.IsInbox, got.IsFavorite)
	}
	if got.WorkspaceID != "" {
		t.Errorf("WorkspaceID = %q, want empty for null", got.WorkspaceID)
	}
	if got.URL != WebURL+"p1" {
		t.Errorf("URL = %q", got.URL)
	}
}

func TestToDomainSections(t *testing.T) {
	t.Parallel()

	got := ToDomainSections([]SectionDTO{
		{ID: "s1", ProjectID: "p1", Name: "Backlog", SectionOrder: 1},
		{ID: "s2", ProjectID: "p1", Name: "Done", SectionOrder: 2, IsArchived: true},
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Backlog" || got[0].ProjectID != "p1" || got[0].SectionOrder != 1 {
		t.Errorf("sections[0] = %+v", got[0])
	}
	if !got[1].IsArchived {
		t.Error("sections[1].IsArchived = false, want true")
	}
}
