package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, INFO, ParseLevel("info"))
	assert.Equal(t, WARNING, ParseLevel("WARN"))
	assert.Equal(t, WARNING, ParseLevel("warning"))
	assert.Equal(t, DEBUG, ParseLevel(""))
}

func TestWriterLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, INFO)
	l.Output(DEBUG, 1, "hidden")
	l.Output(INFO, 1, "shown")
	l.Close()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO][logger_test.go:")
	assert.Contains(t, buf.String(), "shown")
}

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	settings := &Settings{
		Path:       dir,
		Name:       "flist",
		Ext:        "log",
		TimeFormat: "2006-01-02",
	}
	l, err := NewFileLogger(settings)
	require.NoError(t, err)
	l.Output(WARNING, 1, "to file")
	l.Close()

	content, err := os.ReadFile(filepath.Join(dir, logFileName(settings)))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN]")
	assert.Contains(t, string(content), "to file")
}

func TestSetDefault(t *testing.T) {
	old := DefaultLogger
	var before, after bytes.Buffer
	DefaultLogger = NewWriterLogger(&before, DEBUG)
	defer func() {
		SetDefault(old)
	}()

	Info("first")
	SetDefault(NewWriterLogger(&after, DEBUG))
	Warnf("second %d", 2)
	DefaultLogger.Close()

	assert.Contains(t, before.String(), "first")
	assert.Contains(t, after.String(), "[WARN][logger_test.go:")
	assert.Contains(t, after.String(), "second 2")
}

func TestFileLoggerKeepsStdoutClean(t *testing.T) {
	dir := t.TempDir()
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdout, stderr
	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	l, err := NewFileLogger(&Settings{
		Path:       filepath.Join(dir, "logs"),
		Name:       "flist",
		Ext:        "log",
		TimeFormat: "2006-01-02",
	})
	require.NoError(t, err)
	l.Output(INFO, 1, "console line")
	l.Close()

	out, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	assert.Empty(t, out)
	errOut, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Contains(t, string(errOut), "console line")
}
