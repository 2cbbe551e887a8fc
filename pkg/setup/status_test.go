// pkg/setup/status_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem (t.TempDir)
// PURPOSE: Verify read-only inspection of the checkout and run history

package setup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/datastore"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectMissingCheckout(t *testing.T) {
	f := newFixture(t)

	st, err := Inspect(f.cfg, nil, nil)
	require.NoError(t, err)

	assert.False(t, st.Exists)
	assert.False(t, st.ManifestPresent)
	assert.Nil(t, st.Package)
	assert.Nil(t, st.LastRun)
	assert.Equal(t, f.checkout(), st.Checkout)
}

func TestInspectCheckout(t *testing.T) {
	f := newFixture(t)
	for rel, body := range map[string]string{
		"requirements.txt":      "numpy\n# comment\nspidev\n",
		"pyproject.toml":        "[project]\nname = \"st7735\"\nversion = \"1.0.0\"\n",
		"examples/shapes.py":    "",
		"examples/scrolling.py": "",
		"examples/README.md":    "",
	} {
		path := filepath.Join(f.checkout(), rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	fsys := filesystem.NewOS()
	store := datastore.New(fsys, filepath.Join(t.TempDir(), "runs.yaml"))
	require.NoError(t, store.RecordRun(datastore.RunRecord{
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		State:     "succeeded",
		Checkout:  f.checkout(),
	}))

	st, err := Inspect(f.cfg, fsys, store)
	require.NoError(t, err)

	assert.True(t, st.Exists)
	assert.True(t, st.ManifestPresent)
	assert.Len(t, st.Requirements, 2)
	require.NotNil(t, st.Package)
	assert.Equal(t, "st7735 1.0.0", st.Package.Label())
	assert.Equal(t, []string{"scrolling.py", "shapes.py"}, st.Examples)
	require.NotNil(t, st.LastRun)
	assert.Equal(t, "succeeded", st.LastRun.State)
}
