package utils

import "testing"

func TestParseSort(t *testing.T) {
	tests := []struct {
		sortBy    string
		wantField string
		wantDesc  bool
	}{
		{"-createdAt", "createdAt", true},
		{"createdAt", "createdAt", false},
		{"title", "title", false},
		{"-dueDate", "dueDate", true},
		{"priority", "priority", false},
		{"", "createdAt", true},
		{"unknown", "createdAt", true},
		{"-user_id; DROP TABLE tasks", "createdAt", true},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			field, desc := ParseSort(tt.sortBy)
			if field != tt.wantField || desc != tt.wantDesc {
				t.Errorf("ParseSort(%q) = (%q, %v), want (%q, %v)",
					tt.sortBy, field, desc, tt.wantField, tt.wantDesc)
			}
		})
	}
}
