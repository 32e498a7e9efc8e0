package selftrack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		expr string
		want any
	}{
		{"$.profile.name", "Ahmad Rizky"},
		{"$.achievements[*].title", []any{"Juara 1 Hackathon Nasional", "Google Developer Student Clubs Lead"}},
		{"$.academics[-1:].gpa", []any{3.75}},
		{`$.experiences[?(@.type == "Work")].organization`, []any{"TechCorp Indonesia"}},
	}
	for _, tt := range tests {
		got, err := Query(Seed(), tt.expr)
		if err != nil {
			t.Errorf("Query(%q) error = %v", tt.expr, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Query(%q) mismatch (-want +got):\n%s", tt.expr, diff)
		}
	}
}

func TestQuery_Invalid(t *testing.T) {
	if _, err := Query(Seed(), "$.["); err == nil {
		t.Error("Query() with a syntax error succeeded")
	}
}
