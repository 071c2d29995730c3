package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelSections(t *testing.T) {
	text := "Jane Doe\njane@example.com\n\nSUMMARY\nBackend engineer.\n\n  Skills  \nGo\nPostgres\nExperience\nAcme Inc, 2020-2024\n"

	got := LabelSections(text)

	assert.Equal(t, []Section{
		{Name: "General", Content: "Jane Doe\njane@example.com"},
		{Name: "Summary", Content: "Backend engineer."},
		{Name: "Skills", Content: "Go\nPostgres"},
		{Name: "Experience", Content: "Acme Inc, 2020-2024"},
	}, got)
}

func TestLabelSectionsEdgeCases(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Section
	}{
		{
			name:  "empty",
			input: "",
			want:  []Section{{Name: "General", Content: ""}},
		},
		{
			name:  "header inside a sentence is content",
			input: "My skills include Go",
			want:  []Section{{Name: "General", Content: "My skills include Go"}},
		},
		{
			name:  "repeated header keeps the last block",
			input: "Projects\nOld\nProjects\nNew",
			want: []Section{
				{Name: "General", Content: ""},
				{Name: "Projects", Content: "New"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LabelSections(tc.input))
		})
	}
}
