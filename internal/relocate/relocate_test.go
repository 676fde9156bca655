package relocate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

func populate(t *testing.T, m *output.Manager, modules []*model.Module, skip string) {
	t.Helper()
	for _, a := range Manifest(m, modules) {
		if a.Name == skip {
			continue
		}
		require.NoError(t, m.WriteFile(a.Name, []byte("content of "+a.Name)))
	}
}

func TestManifest(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	modules := []*model.Module{{Name: "orders"}, {Name: "billing"}}

	var names []string
	for _, a := range Manifest(m, modules) {
		names = append(names, a.Name)
		assert.Equal(t, m.Path(a.Name), a.Source)
	}
	assert.Equal(t, []string{
		"configuration.adoc", "components.puml", "application.adoc", "openapi.json",
		"module-orders.adoc", "module-billing.adoc",
	}, names)
}

func TestMove_CopiesNPlusFour(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	modules := []*model.Module{{Name: "orders"}, {Name: "billing"}, {Name: "shipping"}}
	populate(t, m, modules, "")

	dest := filepath.Join(t.TempDir(), "publish", "docs")
	copied, err := New(m, modules).Move(dest)
	require.NoError(t, err)
	assert.Len(t, copied, len(modules)+4)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Len(t, entries, len(modules)+4)

	for _, a := range Manifest(m, modules) {
		src, err := os.ReadFile(a.Source)
		require.NoError(t, err)
		dst, err := os.ReadFile(filepath.Join(dest, a.Name))
		require.NoError(t, err)
		assert.Equal(t, src, dst, "%s must be byte-identical", a.Name)
	}
}

func TestMove_MissingSourceAbortsWithoutRollback(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	modules := []*model.Module{{Name: "orders"}}
	populate(t, m, modules, "openapi.json")

	dest := t.TempDir()
	copied, err := New(m, modules).Move(dest)
	require.Error(t, err)
	assert.True(t, ferrors.IsIOFailure(err))

	assert.Len(t, copied, 3, "artifacts before the missing one stay copied")
	assert.FileExists(t, filepath.Join(dest, "application.adoc"))
	assert.NoFileExists(t, filepath.Join(dest, "module-orders.adoc"))
}
