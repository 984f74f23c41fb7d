package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Title:       "Traffic Stop Escalation",
		Category:    "bodycam",
		URL:         "https://example.com/watch/123",
		Platform:    "YouTube",
		Description: "Full release of the body camera footage from the stop.",
		Agree:       true,
	}
}

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		want   []string
	}{
		{
			name:   "acceptable",
			mutate: func(sub *Submission) {},
			want:   nil,
		},
		{
			name:   "missing title",
			mutate: func(sub *Submission) { sub.Title = "  " },
			want:   []string{"Title is required."},
		},
		{
			name:   "title too long",
			mutate: func(sub *Submission) { sub.Title = strings.Repeat("x", 201) },
			want:   []string{"Title must be 200 characters or less."},
		},
		{
			name:   "missing category",
			mutate: func(sub *Submission) { sub.Category = "" },
			want:   []string{"Category is required."},
		},
		{
			name:   "missing url",
			mutate: func(sub *Submission) { sub.URL = "" },
			want:   []string{"Footage URL is required."},
		},
		{
			name:   "url without scheme",
			mutate: func(sub *Submission) { sub.URL = "example.com/watch/123" },
			want:   []string{"Footage URL does not appear to be a valid URL. Include http:// or https://."},
		},
		{
			name:   "url with wrong scheme",
			mutate: func(sub *Submission) { sub.URL = "ftp://example.com/v" },
			want:   []string{"Footage URL does not appear to be a valid URL. Include http:// or https://."},
		},
		{
			name:   "missing platform",
			mutate: func(sub *Submission) { sub.Platform = "" },
			want:   []string{"Video Platform is required."},
		},
		{
			name:   "description too short",
			mutate: func(sub *Submission) { sub.Description = "too short" },
			want:   []string{"Description is required and must be at least 20 characters."},
		},
		{
			name:   "description too long",
			mutate: func(sub *Submission) { sub.Description = strings.Repeat("x", 2001) },
			want:   []string{"Description must be 2000 characters or less."},
		},
		{
			name:   "terms not confirmed",
			mutate: func(sub *Submission) { sub.Agree = false },
			want:   []string{"You must confirm the submission terms."},
		},
		{
			name: "all violations reported together",
			mutate: func(sub *Submission) {
				*sub = Submission{}
			},
			want: []string{
				"Title is required.",
				"Category is required.",
				"Footage URL is required.",
				"Video Platform is required.",
				"Description is required and must be at least 20 characters.",
				"You must confirm the submission terms.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			assert.Equal(t, tt.want, sub.Validate())
		})
	}
}

func TestSubmitStoresEntry(t *testing.T) {
	s, _ := newTestStore(t)

	sub := validSubmission()
	sub.Title = "  Traffic Stop Escalation  "
	sub.Location = "Broward County, Florida"
	sub.ContentWarnings = []string{"arrest"}

	entry, err := s.Submit(sub)
	require.NoError(t, err)

	assert.Equal(t, "PAFA-000001", entry.ID)
	assert.Equal(t, "Traffic Stop Escalation", entry.Title)
	require.NotNil(t, entry.Location)
	assert.Equal(t, "Broward County, Florida", *entry.Location)
	// Unset optional fields stay absent rather than empty.
	assert.Nil(t, entry.Agency)
	assert.Equal(t, []string{"arrest"}, entry.ContentWarnings)
	assert.NotEmpty(t, entry.Submitted)

	assert.Len(t, s.Load(), 1)
}

func TestSubmitDefaultsContentWarnings(t *testing.T) {
	s, _ := newTestStore(t)

	entry, err := s.Submit(validSubmission())
	require.NoError(t, err)
	assert.Equal(t, []string{}, entry.ContentWarnings)
}

func TestSubmitRejectsWithoutPersisting(t *testing.T) {
	s, _ := newTestStore(t)

	sub := validSubmission()
	sub.Agree = false

	_, err := s.Submit(sub)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"You must confirm the submission terms."}, verr.Messages)

	assert.Empty(t, s.Load())
}
