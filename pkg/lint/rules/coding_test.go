package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/javalint/pkg/javacst"
)

func TestEmptyStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		count   int
		fixable int
	}{
		{
			name:    "stray semicolon in block",
			source:  "class A { void m() { ; } }\n",
			count:   1,
			fixable: 1,
		},
		{
			name:    "double semicolon after statement",
			source:  "class A { void m() { run();; } }\n",
			count:   1,
			fixable: 1,
		},
		{
			name:   "semicolon as if body is flagged without a fix",
			source: "class A { void m(boolean b) { if (b) ; } }\n",
			count:  1,
		},
		{
			name:   "semicolon as while body is flagged without a fix",
			source: "class A { void m(boolean b) { while (b) ; } }\n",
			count:  1,
		},
		{
			name:   "statement terminators are clean",
			source: "class A { void m() { int x = 1; run(); } }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "EmptyStatement", nil, tt.source)
			require.Len(t, diags, tt.count)

			fixable := 0
			for _, d := range diags {
				assert.Equal(t, "EmptyStatement", d.Code)
				assert.Equal(t, "Empty statement.", d.Message)
				if d.HasFix() {
					require.False(t, d.Fix.IsSafe())
					fixable++
				}
			}
			assert.Equal(t, tt.fixable, fixable)
		})
	}
}

func TestPackageDeclaration(t *testing.T) {
	t.Parallel()

	t.Run("missing package", func(t *testing.T) {
		t.Parallel()

		source := "class Foo {}\n"
		diags := lintSource(t, "PackageDeclaration", nil, source)
		require.Len(t, diags, 1)
		assert.Equal(t, "PackageDeclaration", diags[0].Code)
		assert.Equal(t, "Missing package declaration.", diags[0].Message)
		assert.Equal(t, 1, diags[0].StartLine)
		// The diagnostic spans the whole compilation unit.
		assert.Equal(t, javacst.Range{StartOffset: 0, EndOffset: len(source)}, diags[0].Range)
		assert.False(t, diags[0].HasFix())
	})

	t.Run("declared package", func(t *testing.T) {
		t.Parallel()

		diags := lintSource(t, "PackageDeclaration", nil, "package com.foo;\nclass A { }\n")
		assert.Empty(t, diags)
	})
}
