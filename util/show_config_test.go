package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdShowConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "pmd-po-helper.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("unique: [who]\nstorage_mode: folder\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, CmdShowConfig(&buf, cfgFile))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Configuration from "+cfgFile+"\n"))
	assert.Contains(t, out, "storage_mode: folder\n")
	assert.Contains(t, out, "encoding: UTF-8\n")
	assert.Contains(t, out, "- who\n")
	assert.Contains(t, out, "- name_sort.bin\n")
}

func TestCmdShowConfigBadFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "pmd-po-helper.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("storage_mode: zip\n"), 0644))

	var buf bytes.Buffer
	assert.Error(t, CmdShowConfig(&buf, cfgFile))
}
