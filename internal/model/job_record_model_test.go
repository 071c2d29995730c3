package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJobRecord(t *testing.T) {
	testCases := []struct {
		name  string
		input [4]string
		want  JobRecord
	}{
		{
			name:  "all fields present",
			input: [4]string{"Engineer", "Acme", "Remote", "Build things"},
			want:  JobRecord{Title: "Engineer", Company: "Acme", Location: "Remote", Description: "Build things"},
		},
		{
			name:  "blank fields get placeholders",
			input: [4]string{"", "  ", "\n", ""},
			want: JobRecord{
				Title:       PlaceholderTitle,
				Company:     PlaceholderCompany,
				Location:    PlaceholderLocation,
				Description: PlaceholderDescription,
			},
		},
		{
			name:  "values are trimmed",
			input: [4]string{" Engineer ", "Acme\n", "\tRemote", " x "},
			want:  JobRecord{Title: "Engineer", Company: "Acme", Location: "Remote", Description: "x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewJobRecord(tc.input[0], tc.input[1], tc.input[2], tc.input[3])
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJobRecordHasRealTitle(t *testing.T) {
	assert.False(t, NewJobRecord("", "Acme", "", "").HasRealTitle())
	assert.False(t, NewJobRecord(PlaceholderTitle, "Acme", "", "").HasRealTitle())
	assert.True(t, NewJobRecord("Engineer", "", "", "").HasRealTitle())
}
