package domain

import (
	"errors"
	"testing"
)

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		task      Task
		wantField string
	}{
		{name: "valid task", task: Task{Content: "Buy milk", Priority: 4}},
		{name: "empty content", task: Task{Content: "  "}, wantField: "content"},
		{name: "priority out of range", task: Task{Content: "x", Priority: 5}, wantField: "priority"},
		{name: "section without project", task: Task{Content: "x", SectionID: "s1"}, wantField: "project_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.task.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}
