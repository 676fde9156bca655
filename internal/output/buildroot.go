package output

import (
	"os"
	"path/filepath"
)

// BuildConvention names the build-tool layout whose output root is used.
type BuildConvention string

const (
	// ConventionMaven is selected when the marker file exists; output goes under target/.
	ConventionMaven BuildConvention = "maven"
	// ConventionGradle is the fallback; output goes under build/.
	ConventionGradle BuildConvention = "gradle"
)

// MavenMarker is the file whose presence in the working directory selects ConventionMaven.
const MavenMarker = "pom.xml"

// Root returns the build root directory name for the convention.
func (c BuildConvention) Root() string {
	if c == ConventionMaven {
		return "target"
	}
	return "build"
}

// ProbeConvention inspects workDir for the Maven marker.
func ProbeConvention(workDir string) BuildConvention {
	if fi, err := os.Stat(filepath.Join(workDir, MavenMarker)); err == nil && !fi.IsDir() {
		return ConventionMaven
	}
	return ConventionGradle
}

// ProbeBuildRoot returns <workDir>/target or <workDir>/build.
func ProbeBuildRoot(workDir string) string {
	return filepath.Join(workDir, ProbeConvention(workDir).Root())
}
