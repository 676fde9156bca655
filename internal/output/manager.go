package output

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
)

// DefaultSubdir is the directory under the build root that receives all artifacts.
const DefaultSubdir = "spring-modulith-docs"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Manager performs every file operation of a run against one output directory.
type Manager struct {
	buildRoot string
	outputDir string
}

// NewManager fixes the build root for the lifetime of the Manager. An empty
// buildRoot probes workDir for the build convention; an empty subdir uses
// DefaultSubdir.
func NewManager(buildRoot, workDir, subdir string) *Manager {
	if buildRoot == "" {
		if workDir == "" {
			workDir = "."
		}
		buildRoot = ProbeBuildRoot(workDir)
	}
	if subdir == "" {
		subdir = DefaultSubdir
	}
	buildRoot = filepath.Clean(buildRoot)
	return &Manager{
		buildRoot: buildRoot,
		outputDir: filepath.Join(buildRoot, subdir),
	}
}

// BuildRoot returns the resolved build root.
func (m *Manager) BuildRoot() string { return m.buildRoot }

// OutputDirectory returns <buildRoot>/<subdir>.
func (m *Manager) OutputDirectory() string { return m.outputDir }

// Path returns the location of a named artifact in the output directory.
func (m *Manager) Path(name string) string { return filepath.Join(m.outputDir, name) }

// EnsureDirectory creates the output directory tree if needed.
func (m *Manager) EnsureDirectory() error {
	if err := os.MkdirAll(m.outputDir, dirPerm); err != nil {
		return ferrors.IOFailure("mkdir", m.outputDir, err)
	}
	return nil
}

// RecreateFile ensures the output directory exists, deletes any file of the
// same name and returns a new empty file open for writing. The caller closes it.
func (m *Manager) RecreateFile(name string) (*os.File, error) {
	if err := m.EnsureDirectory(); err != nil {
		return nil, err
	}
	if err := m.RemoveFile(name); err != nil {
		return nil, err
	}
	path := m.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return nil, ferrors.IOFailure("create", path, err)
	}
	slog.Debug("Recreated artifact", logfields.Artifact(name), logfields.Path(path))
	return f, nil
}

// WriteFile recreates name and writes data to it.
func (m *Manager) WriteFile(name string, data []byte) (err error) {
	f, err := m.RecreateFile(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ferrors.IOFailure("close", f.Name(), cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return ferrors.IOFailure("write", f.Name(), err)
	}
	return nil
}

// AppendFile opens or creates name in append mode and writes text. The handle
// is released on every path.
func (m *Manager) AppendFile(name, text string) (err error) {
	if err := m.EnsureDirectory(); err != nil {
		return err
	}
	path := m.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return ferrors.IOFailure("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ferrors.IOFailure("close", path, cerr)
		}
	}()
	if _, err := io.WriteString(f, text); err != nil {
		return ferrors.IOFailure("write", path, err)
	}
	return nil
}

// RemoveFile deletes name from the output directory; a missing file is not an error.
func (m *Manager) RemoveFile(name string) error {
	path := m.Path(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return ferrors.IOFailure("remove", path, err)
	}
	return nil
}

// Exists reports whether name is present in the output directory.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	return err == nil
}

// CopyFile copies src to dst byte for byte, preserving src's permissions.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return ferrors.IOFailure("open", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return ferrors.IOFailure("stat", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return ferrors.IOFailure("create", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ferrors.IOFailure("close", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return ferrors.IOFailure("copy", dst, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return ferrors.IOFailure("chmod", dst, err)
	}
	return nil
}
