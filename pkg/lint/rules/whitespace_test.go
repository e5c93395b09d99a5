package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/lint"
)

func TestWhitespaceAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		props    config.Properties
		source   string
		messages []string
	}{
		{
			name:     "comma without space",
			source:   "class A { void m(int a,int b) { } }\n",
			messages: []string{"',' is not followed by whitespace."},
		},
		{
			name:   "comma with space is clean",
			source: "class A { void m(int a, int b) { } }\n",
		},
		{
			name:     "semicolon without space",
			source:   "class A { void m() { int x = 1;int y = 2; } }\n",
			messages: []string{"';' is not followed by whitespace."},
		},
		{
			name:   "semicolon at end of line is clean",
			source: "class A { void m() {\nint x = 1;\n} }\n",
		},
		{
			name:   "empty for clauses are not flagged",
			source: "class A { void m() { for (;;) { } } }\n",
		},
		{
			name:     "cast without space",
			source:   "class A { void m(Object o) { int x = (int)o; } }\n",
			messages: []string{"'typecast' is not followed by whitespace."},
		},
		{
			name:   "cast with space is clean",
			source: "class A { void m(Object o) { int x = (int) o; } }\n",
		},
		{
			name:     "tokens property restricts checks",
			props:    config.Properties{"tokens": "COMMA"},
			source:   "class A { void m(int a,int b) { int x = 1;int y = 2; } }\n",
			messages: []string{"',' is not followed by whitespace."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "WhitespaceAfter", tt.props, tt.source)
			require.Len(t, diags, len(tt.messages))
			for i, d := range diags {
				assert.Equal(t, "WhitespaceAfter", d.Code)
				assert.Equal(t, tt.messages[i], d.Message)
				assert.True(t, d.HasFix())
				assert.Equal(t, lint.FixAlways, d.Availability)
			}
		})
	}
}

func TestWhitespaceAfterRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rules = []config.Module{{
		Name:       "WhitespaceAfter",
		Properties: config.Properties{"tokens": "BOGUS"},
	}}

	_, err := lint.DefaultRegistry.Build(cfg)
	require.Error(t, err)

	var cfgErr *lint.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "WhitespaceAfter", cfgErr.Module)
}

func TestNoWhitespaceBefore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   config.Properties
		source  string
		count   int
		fixable int
	}{
		{
			name:    "space before semicolon",
			source:  "class A { void m() { int x = 1 ; } }\n",
			count:   1,
			fixable: 1,
		},
		{
			name:    "space before comma",
			source:  "class A { void m(int a , int b) { } }\n",
			count:   1,
			fixable: 1,
		},
		{
			name:   "clean source",
			source: "class A { void m() { int x = 1; } }\n",
		},
		{
			name:    "wrapped semicolon gets no fix",
			source:  "class A { void m() { int x = 1\n    ; } }\n",
			count:   1,
			fixable: 0,
		},
		{
			name:   "wrapped semicolon allowed with allowLineBreaks",
			props:  config.Properties{"allowLineBreaks": "true"},
			source: "class A { void m() { int x = 1\n    ; } }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "NoWhitespaceBefore", tt.props, tt.source)
			require.Len(t, diags, tt.count)

			fixable := 0
			for _, d := range diags {
				assert.Equal(t, "NoWhitespaceBefore", d.Code)
				if d.HasFix() {
					fixable++
				}
			}
			assert.Equal(t, tt.fixable, fixable)
		})
	}
}

func TestParenPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		props  config.Properties
		source string
		count  int
	}{
		{
			name:   "nospace flags padded parens",
			source: "class A { void m( int a ) { } }\n",
			count:  2,
		},
		{
			name:   "nospace accepts tight parens",
			source: "class A { void m(int a) { } }\n",
		},
		{
			name:   "nospace ignores multiline parens",
			source: "class A { void m(\n    int a\n) { } }\n",
		},
		{
			name:   "space flags tight parens",
			props:  config.Properties{"option": "space"},
			source: "class A { void m(int a) { } }\n",
			count:  2,
		},
		{
			name:   "space accepts padded parens",
			props:  config.Properties{"option": "space"},
			source: "class A { void m( int a ) { } }\n",
		},
		{
			name:   "space accepts empty parens",
			props:  config.Properties{"option": "space"},
			source: "class A { void m() { } }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "ParenPad", tt.props, tt.source)
			assert.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "ParenPad", d.Code)
				assert.True(t, d.HasFix())
			}
		})
	}
}

func TestFileTabCharacter(t *testing.T) {
	t.Parallel()

	source := "class A {\n\tvoid m() {\n\t\tint x = 1;\n\t}\n}\n"

	t.Run("first instance only by default", func(t *testing.T) {
		t.Parallel()

		diags := lintSource(t, "FileTabCharacter", nil, source)
		require.Len(t, diags, 1)
		assert.Equal(t, "FileTabCharacter", diags[0].Code)
		assert.Equal(t, "File contains tab characters (this is the first instance).", diags[0].Message)
		assert.Equal(t, 2, diags[0].StartLine)
		assert.False(t, diags[0].HasFix())
	})

	t.Run("each line", func(t *testing.T) {
		t.Parallel()

		diags := lintSource(t, "FileTabCharacter", config.Properties{"eachLine": "true"}, source)
		require.Len(t, diags, 3)
		for _, d := range diags {
			assert.Equal(t, "Line contains a tab character.", d.Message)
		}
	})

	t.Run("clean file", func(t *testing.T) {
		t.Parallel()

		diags := lintSource(t, "FileTabCharacter", nil, "class A {\n    int x;\n}\n")
		assert.Empty(t, diags)
	})
}
