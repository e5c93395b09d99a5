package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedundantImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		messages []string
	}{
		{
			name: "duplicate import",
			source: "package com.foo;\n" +
				"import java.util.List;\n" +
				"import java.util.List;\n" +
				"class A { List<String> xs; }\n",
			messages: []string{"Duplicate import to line 2."},
		},
		{
			name: "same package import",
			source: "package com.foo;\n" +
				"import com.foo.Bar;\n" +
				"class A { Bar b; }\n",
			messages: []string{"Redundant import from the same package - com.foo.Bar."},
		},
		{
			name: "java.lang import",
			source: "package com.foo;\n" +
				"import java.lang.String;\n" +
				"class A { String s; }\n",
			messages: []string{"Redundant import from the java.lang package - java.lang.String."},
		},
		{
			name: "useful import is clean",
			source: "package com.foo;\n" +
				"import java.util.List;\n" +
				"class A { List<String> xs; }\n",
		},
		{
			name: "subpackage of java.lang is clean",
			source: "package com.foo;\n" +
				"import java.lang.reflect.Method;\n" +
				"class A { Method m; }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "RedundantImport", nil, tt.source)
			require.Len(t, diags, len(tt.messages))
			for i, d := range diags {
				assert.Equal(t, "RedundantImport", d.Code)
				assert.Equal(t, tt.messages[i], d.Message)
				assert.True(t, d.HasFix())
			}
		})
	}
}

func TestRedundantImportFixDeletesLine(t *testing.T) {
	t.Parallel()

	source := "package com.foo;\n" +
		"import java.lang.String;\n" +
		"class A { }\n"

	diags := lintSource(t, "RedundantImport", nil, source)
	require.Len(t, diags, 1)
	require.True(t, diags[0].HasFix())

	edits := diags[0].Fix.Edits
	require.Len(t, edits, 1)
	assert.True(t, edits[0].IsDeletion())
	assert.Equal(t, len("package com.foo;\n"), edits[0].StartOffset)
	assert.Equal(t, len("package com.foo;\nimport java.lang.String;\n"), edits[0].EndOffset)
}

func TestUnusedImports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		messages []string
	}{
		{
			name: "import never referenced",
			source: "package com.foo;\n" +
				"import java.util.Map;\n" +
				"class A { }\n",
			messages: []string{"Unused import - java.util.Map."},
		},
		{
			name: "import used as type",
			source: "package com.foo;\n" +
				"import java.util.Map;\n" +
				"class A { Map<String, String> m; }\n",
		},
		{
			name: "import used in expression",
			source: "package com.foo;\n" +
				"import java.util.Collections;\n" +
				"class A { Object o = Collections.emptyList(); }\n",
		},
		{
			name: "wildcard import is not resolved",
			source: "package com.foo;\n" +
				"import java.util.*;\n" +
				"class A { }\n",
		},
		{
			name: "static import is not resolved",
			source: "package com.foo;\n" +
				"import static java.util.Collections.emptyList;\n" +
				"class A { }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "UnusedImports", nil, tt.source)
			require.Len(t, diags, len(tt.messages))
			for i, d := range diags {
				assert.Equal(t, "UnusedImports", d.Code)
				assert.Equal(t, tt.messages[i], d.Message)
				assert.True(t, d.HasFix())
			}
		})
	}
}
