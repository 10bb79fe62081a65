package domain

import "strings"

// Kind names an entity type for error codes and messages.
type Kind string

const (
	KindTask      Kind = "task"
	KindProject   Kind = "project"
	KindSection   Kind = "section"
	KindFilter    Kind = "filter"
	KindWorkspace Kind = "workspace"
	KindLabel     Kind = "label"
	KindAssignee  Kind = "assignee"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

func (k Kind) code() string {
	return strings.ToUpper(string(k))
}

func (k Kind) title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
