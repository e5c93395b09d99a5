package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/lint"
)

func TestEmptyBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		props  config.Properties
		source string
		count  int
	}{
		{
			name:   "empty if block",
			source: "class A { void m(boolean b) { if (b) { } } }\n",
			count:  1,
		},
		{
			name:   "empty finally block",
			source: "class A { void m() { try { run(); } finally { } } }\n",
			count:  1,
		},
		{
			name:   "empty method body is not checked",
			source: "class A { void m() { } }\n",
		},
		{
			name:   "block with statement is clean",
			source: "class A { void m(boolean b) { if (b) { run(); } } }\n",
		},
		{
			name:   "comment does not satisfy statement policy",
			source: "class A { void m(boolean b) { if (b) { /* nothing */ } } }\n",
			count:  1,
		},
		{
			name:   "comment satisfies text policy",
			props:  config.Properties{"option": "text"},
			source: "class A { void m(boolean b) { if (b) { /* nothing */ } } }\n",
		},
		{
			name:   "text policy still flags truly empty block",
			props:  config.Properties{"option": "text"},
			source: "class A { void m(boolean b) { while (b) { } } }\n",
			count:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "EmptyBlock", tt.props, tt.source)
			require.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "EmptyBlock", d.Code)
				assert.False(t, d.HasFix())
			}
		})
	}
}

func TestEmptyBlockMessage(t *testing.T) {
	t.Parallel()

	diags := lintSource(t, "EmptyBlock", nil, "class A { void m(boolean b) { if (b) { } } }\n")
	require.Len(t, diags, 1)
	assert.Equal(t, "Must have at least one statement in if block.", diags[0].Message)
}

func TestEmptyBlockRejectsUnknownOption(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rules = []config.Module{{
		Name:       "EmptyBlock",
		Properties: config.Properties{"option": "bogus"},
	}}

	_, err := lint.DefaultRegistry.Build(cfg)
	require.Error(t, err)
}

func TestEmptyCatchBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		props  config.Properties
		source string
		count  int
	}{
		{
			name:   "empty catch",
			source: "class A { void m() { try { run(); } catch (Exception e) { } } }\n",
			count:  1,
		},
		{
			name:   "catch with statement is clean",
			source: "class A { void m() { try { run(); } catch (Exception e) { log(e); } } }\n",
		},
		{
			name:   "any comment exempts by default",
			source: "class A { void m() { try { run(); } catch (Exception e) { // expected\n } } }\n",
		},
		{
			name:   "comment must match commentFormat",
			props:  config.Properties{"commentFormat": "expected .*"},
			source: "class A { void m() { try { run(); } catch (Exception e) { // nope\n } } }\n",
			count:  1,
		},
		{
			name:   "exception variable name exempts",
			props:  config.Properties{"exceptionVariableName": "expected|ignore"},
			source: "class A { void m() { try { run(); } catch (Exception ignore) { } } }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "EmptyCatchBlock", tt.props, tt.source)
			require.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "EmptyCatchBlock", d.Code)
				assert.Equal(t, "Empty catch block.", d.Message)
			}
		})
	}
}

func TestAvoidNestedBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		props  config.Properties
		source string
		count  int
	}{
		{
			name:   "freestanding block inside method",
			source: "class A { void m() { { int x = 1; } } }\n",
			count:  1,
		},
		{
			name:   "control flow blocks are fine",
			source: "class A { void m(boolean b) { if (b) { run(); } } }\n",
		},
		{
			name:   "block in switch case flagged by default",
			source: "class A { void m(int x) { switch (x) { case 1: { run(); } } } }\n",
			count:  1,
		},
		{
			name:   "block in switch case allowed when configured",
			props:  config.Properties{"allowInSwitchCase": "true"},
			source: "class A { void m(int x) { switch (x) { case 1: { run(); } } } }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintSource(t, "AvoidNestedBlocks", tt.props, tt.source)
			require.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "AvoidNestedBlocks", d.Code)
				assert.Equal(t, "Avoid nested blocks.", d.Message)
			}
		})
	}
}
