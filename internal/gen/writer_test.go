package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")

	files := []GeneratedFile{
		{Filename: "env_vars.go", Content: []byte("package config\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	content, err := os.ReadFile(filepath.Join(dir, "env_vars.go"))
	require.NoError(t, err)
	assert.Equal(t, "package config\n", string(content))
}
