package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

func TestProbeBuildRoot(t *testing.T) {
	gradle := t.TempDir()
	assert.Equal(t, ConventionGradle, ProbeConvention(gradle))
	assert.Equal(t, filepath.Join(gradle, "build"), ProbeBuildRoot(gradle))

	maven := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(maven, MavenMarker), []byte("<project/>"), 0o600))
	assert.Equal(t, ConventionMaven, ProbeConvention(maven))
	assert.Equal(t, filepath.Join(maven, "target"), ProbeBuildRoot(maven))

	// A directory named like the marker does not count.
	odd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(odd, MavenMarker), 0o750))
	assert.Equal(t, ConventionGradle, ProbeConvention(odd))
}

func TestNewManager_FixesBuildRootOnce(t *testing.T) {
	work := t.TempDir()
	m := NewManager("", work, "")
	assert.Equal(t, filepath.Join(work, "build", DefaultSubdir), m.OutputDirectory())

	// Adding the marker later does not change the decision for this Manager.
	require.NoError(t, os.WriteFile(filepath.Join(work, MavenMarker), nil, 0o600))
	assert.Equal(t, filepath.Join(work, "build", DefaultSubdir), m.OutputDirectory())
	assert.Equal(t, filepath.Join(work, "build", DefaultSubdir, "x.adoc"), m.Path("x.adoc"))

	explicit := NewManager(filepath.Join(work, "out"), work, "docs")
	assert.Equal(t, filepath.Join(work, "out"), explicit.BuildRoot())
	assert.Equal(t, filepath.Join(work, "out", "docs"), explicit.OutputDirectory())
}

func TestRecreateFile(t *testing.T) {
	m := NewManager(t.TempDir(), "", "")

	require.NoError(t, m.WriteFile("application.adoc", []byte("old content")))
	data, err := os.ReadFile(m.Path("application.adoc"))
	require.NoError(t, err)
	assert.Equal(t, "old content", string(data))

	f, err := m.RecreateFile("application.adoc")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err = os.ReadFile(m.Path("application.adoc"))
	require.NoError(t, err)
	assert.Empty(t, data, "recreated file starts empty")
}

func TestAppendFile(t *testing.T) {
	m := NewManager(t.TempDir(), "", "")

	require.NoError(t, m.AppendFile("module-orders.adoc", "first"))
	require.NoError(t, m.AppendFile("module-orders.adoc", "second"))

	data, err := os.ReadFile(m.Path("module-orders.adoc"))
	require.NoError(t, err)
	assert.Equal(t, "firstsecond", string(data))

	require.NoError(t, m.RemoveFile("module-orders.adoc"))
	assert.False(t, m.Exists("module-orders.adoc"))
	require.NoError(t, m.RemoveFile("module-orders.adoc"), "removing a missing file is fine")
}

func TestIOFailures(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "root")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o600))

	// The build root is a regular file, so the output directory cannot be created.
	m := NewManager(blocker, "", "")

	_, err := m.RecreateFile("application.adoc")
	require.Error(t, err)
	assert.True(t, ferrors.IsIOFailure(err))

	err = m.AppendFile("module-a.adoc", "x")
	require.Error(t, err)
	assert.True(t, ferrors.IsIOFailure(err))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "components.puml")
	dst := filepath.Join(dir, "copy.puml")
	payload := []byte("@startuml\n@enduml\n")
	require.NoError(t, os.WriteFile(src, payload, 0o640))

	require.NoError(t, CopyFile(src, dst))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	err = CopyFile(filepath.Join(dir, "missing"), dst)
	require.Error(t, err)
	assert.True(t, ferrors.IsIOFailure(err))
}
