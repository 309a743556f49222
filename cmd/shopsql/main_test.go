package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "config.toml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(content+`
database = "`+filepath.ToSlash(filepath.Join(dir, "shop.sqlite"))+`"
`), 0600))
	return filename
}

func TestRun(t *testing.T) {
	filename := writeConfig(t, `driver = "sqlite3"
auth_mode = ""`)
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-config", filename, "-order", "2"}, &buf))
	assert.Contains(t, buf.String(), "Sample data inserted successfully!\n")
	assert.Contains(t, buf.String(), "(OrderID = 2):\n('Smartphone', 600.00, 1)\n")
}

func TestRunFailures(t *testing.T) {
	ok := writeConfig(t, `driver = "sqlite3"
auth_mode = ""`)
	require.NoError(t, run([]string{"-config", ok}, new(bytes.Buffer)))

	for name, args := range map[string][]string{
		"flag":         {"-order", "x"},
		"config":       {"-config", writeConfig(t, `driver = "oracle"`)},
		"database":     {"-config", ok},
		"config parse": {"-config", writeConfig(t, `driver = [`)},
	} {
		assert.Error(t, run(args, new(bytes.Buffer)), name)
	}
}
