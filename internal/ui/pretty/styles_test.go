package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyles_NoColor(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	require.NotNil(t, styles)

	// Plain styles must not emit escape sequences.
	assert.Equal(t, "hello", styles.Error.Render("hello"))
	assert.Equal(t, "hello", styles.Success.Render("hello"))
	assert.Equal(t, "hello", styles.Bold.Render("hello"))
}

func TestNewStyles_Color(t *testing.T) {
	t.Parallel()

	styles := NewStyles(true)
	require.NotNil(t, styles)
}

func TestIsColorEnabled_Always(t *testing.T) {
	t.Parallel()

	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
}

func TestIsColorEnabled_Never(t *testing.T) {
	t.Parallel()

	assert.False(t, IsColorEnabled("never", &bytes.Buffer{}))
}

func TestIsColorEnabled_AutoNonTTY(t *testing.T) {
	t.Parallel()

	// A bytes.Buffer is never a TTY.
	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
	assert.False(t, IsColorEnabled("", &bytes.Buffer{}))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
	// Explicit "always" wins over NO_COLOR.
	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
}
