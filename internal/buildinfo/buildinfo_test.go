package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	want := "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintBuildData_Injected(t *testing.T) {
	origVersion, origDate, origCommit := buildVersion, buildDate, buildCommit
	t.Cleanup(func() {
		buildVersion, buildDate, buildCommit = origVersion, origDate, origCommit
	})

	buildVersion = "v1.2.3"
	buildDate = "2025-11-02"
	buildCommit = "abc1234"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	want := "Build version: v1.2.3\nBuild date: 2025-11-02\nBuild commit: abc1234\n"
	assert.Equal(t, want, buf.String())
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "x", orNA("x"))
}
