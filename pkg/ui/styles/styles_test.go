package styles_test

import (
	"testing"

	"github.com/arthur-debert/st7735-setup/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range styles.Names {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, styles.Render(name, "x"), "x")
		})
	}

	assert.True(t, styles.Get("Header").GetBold())
	assert.True(t, styles.Get("Path").GetUnderline())
	assert.Equal(t, 14, styles.Get("Label").GetWidth())
	assert.IsType(t, lipgloss.AdaptiveColor{}, styles.Get("Success").GetForeground())
}

func TestUnknownStyleIsPlain(t *testing.T) {
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// restore the embedded definitions for other tests
		require.NoError(t, styles.LoadStylesFromData(styles.Embedded()))
	})

	t.Run("unknown color", func(t *testing.T) {
		err := styles.LoadStylesFromData([]byte("styles:\n  Header:\n    foreground: nope\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown color")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
	})

	t.Run("missing names fall back to plain", func(t *testing.T) {
		require.NoError(t, styles.LoadStylesFromData([]byte("colors: {}\nstyles:\n  Header:\n    italic: true\n")))
		assert.True(t, styles.Get("Header").GetItalic())
		assert.False(t, styles.Get("Success").GetBold())
	})
}
