package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/javalint/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "no edits returns content unchanged",
			content: "hello world",
			edits:   nil,
			want:    "hello world",
		},
		{
			name:    "single replacement",
			content: "hello world",
			edits:   []fix.TextEdit{fix.Replacement(6, 11, "there")},
			want:    "hello there",
		},
		{
			name:    "insertion at start",
			content: "world",
			edits:   []fix.TextEdit{fix.Insertion(0, "hello ")},
			want:    "hello world",
		},
		{
			name:    "insertion at end",
			content: "hello",
			edits:   []fix.TextEdit{fix.Insertion(5, "!")},
			want:    "hello!",
		},
		{
			name:    "deletion",
			content: "hello cruel world",
			edits:   []fix.TextEdit{fix.Deletion(5, 11)},
			want:    "hello world",
		},
		{
			name:    "multiple sorted edits in one pass",
			content: "a b c d",
			edits: []fix.TextEdit{
				fix.Replacement(0, 1, "A"),
				fix.Replacement(4, 5, "C"),
				fix.Insertion(7, "!"),
			},
			want: "A b C d!",
		},
		{
			name:    "adjacent edits",
			content: "abcdef",
			edits: []fix.TextEdit{
				fix.Deletion(0, 3),
				fix.Replacement(3, 6, "xyz"),
			},
			want: "xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fix.ApplyEdits([]byte(tt.content), tt.edits)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		length  int
		wantErr bool
	}{
		{name: "valid", edits: []fix.TextEdit{fix.Replacement(0, 5, "x")}, length: 10},
		{name: "empty range at end", edits: []fix.TextEdit{fix.Insertion(10, "x")}, length: 10},
		{name: "negative start", edits: []fix.TextEdit{fix.Replacement(-1, 5, "x")}, length: 10, wantErr: true},
		{name: "end before start", edits: []fix.TextEdit{{StartOffset: 5, EndOffset: 3}}, length: 10, wantErr: true},
		{name: "end past content", edits: []fix.TextEdit{fix.Deletion(0, 11)}, length: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := fix.ValidateEdits(tt.edits, tt.length)
			if tt.wantErr {
				var verr *fix.ValidationError
				require.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	sorted := []fix.TextEdit{
		fix.Deletion(0, 5),
		fix.Replacement(3, 8, "x"),
	}
	var cerr *fix.ConflictError
	require.ErrorAs(t, fix.DetectConflicts(sorted), &cerr)

	disjoint := []fix.TextEdit{
		fix.Deletion(0, 5),
		fix.Replacement(5, 8, "x"),
	}
	assert.NoError(t, fix.DetectConflicts(disjoint))
}

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	diff, err := fix.GenerateDiff("Foo.java", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/Foo.java")
	assert.Contains(t, diff, "+++ b/Foo.java")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+B")

	same, err := fix.GenerateDiff("Foo.java", []byte("a\n"), []byte("a\n"))
	require.NoError(t, err)
	assert.Empty(t, same)
}
