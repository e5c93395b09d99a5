package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/javalint/pkg/fix"
)

func TestModifierOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		count   int
		message string
	}{
		{
			name:   "correct order is clean",
			source: "class Foo { public static final void test() {} }\n",
		},
		{
			name:    "final before static",
			source:  "class Foo { final static void test() {} }\n",
			count:   1,
			message: "'static' modifier out of order with the JLS suggestions",
		},
		{
			name:   "annotation before keywords is clean",
			source: "class Foo { @Override public void test() {} }\n",
		},
		{
			name:    "annotation after keyword",
			source:  "class Foo { public @Override void test() {} }\n",
			count:   1,
			message: "'@Override' annotation modifier does not precede non-annotation modifiers",
		},
		{
			name:   "type annotation on catch parameter is clean",
			source: "class Foo { void test() { try { } catch (final @DoNotSub Exception e) { } } }\n",
		},
		{
			name:   "annotations only are clean",
			source: "class Foo { @Deprecated @Override void test() {} }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "ModifierOrder", nil, tt.source)
			require.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "ModifierOrder", d.Code)
				assert.Equal(t, tt.message, d.Message)
				assert.True(t, d.HasFix())
			}
		})
	}
}

func TestModifierOrderFixReorders(t *testing.T) {
	t.Parallel()

	source := "class Foo { final static void test() {} }\n"
	diags := lintSource(t, "ModifierOrder", nil, source)
	require.Len(t, diags, 1)
	require.True(t, diags[0].HasFix())
	require.True(t, diags[0].Fix.IsSafe())

	plan, err := fix.BuildPlan([]*fix.Fix{diags[0].Fix}, len(source))
	require.NoError(t, err)
	fixed := fix.ApplyEdits([]byte(source), plan.Edits)
	assert.Equal(t, "class Foo { static final void test() {} }\n", string(fixed))
}

func TestModifierOrderFixMovesAnnotationFirst(t *testing.T) {
	t.Parallel()

	source := "class Foo { public @Override void test() {} }\n"
	diags := lintSource(t, "ModifierOrder", nil, source)
	require.Len(t, diags, 1)
	require.True(t, diags[0].HasFix())

	plan, err := fix.BuildPlan([]*fix.Fix{diags[0].Fix}, len(source))
	require.NoError(t, err)
	fixed := fix.ApplyEdits([]byte(source), plan.Edits)
	assert.Equal(t, "class Foo { @Override public void test() {} }\n", string(fixed))
}
