package ollama_test

import (
	"testing"

	"cuealign/internal/services/ollama"
)

func TestDecodeStringArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "bare array",
			content: `["a", "b", "c"]`,
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "array wrapped in prose",
			content: "Sure, here are the segments:\n[\"first\", \"second\"]\nLet me know if you need more.",
			want:    []string{"first", "second"},
		},
		{
			name:    "array in markdown fence",
			content: "```json\n[\"one\", \"two\"]\n```",
			want:    []string{"one", "two"},
		},
		{
			name:    "truncated mid element",
			content: `["complete one", "complete two", "cut off mid`,
			want:    []string{"complete one", "complete two"},
		},
		{
			name:    "truncated after comma",
			content: `["alpha", "beta",`,
			want:    []string{"alpha", "beta"},
		},
		{
			name:    "no array at all",
			content: "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "empty content",
			content: "   ",
			wantErr: true,
		},
		{
			name:    "unrecoverable garbage",
			content: "[not json at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ollama.DecodeStringArray(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d elements, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
