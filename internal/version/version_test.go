package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	v, c, b := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = v, c, b })

	Version, GitCommit, BuildTime = "v0.2.0", "unknown", "unknown"
	assert.Equal(t, "v0.2.0", String())

	GitCommit, BuildTime = "abc123", "2026-03-01"
	assert.Equal(t, "v0.2.0 (commit abc123, built 2026-03-01)", String())
}
