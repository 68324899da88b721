package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter(t *testing.T) {
	f := &PlainFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LevelDesc:       []string{"PANC", "FATL", "ERRO", "WARN", "INFO", "DEBG", "TRAC"},
	}

	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "skipping part of feature 3",
	}

	b, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "WARN 2024-03-01 12:30:00 skipping part of feature 3\n", string(b))
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{}
	logger := cfg.CreateLogger(&buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO ")

	buf.Reset()
	cfg.Debug = true
	logger = cfg.CreateLogger(&buf)
	logger.Debug("verbose")
	assert.Contains(t, buf.String(), "DEBG ")
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{MaxSizeMB: 100}
	assert.NoError(t, cfg.Validate())

	cfg.MaxBackups = -1
	assert.Error(t, cfg.Validate())
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer

	progress := NewProgress(&buf, "features processed:")
	progress.Done()
	assert.Empty(t, buf.String())

	progress.Update(1)
	progress.Update(2)
	progress.Done()
	progress.Done()
	assert.Equal(t, "\rfeatures processed: 1\rfeatures processed: 2\n", buf.String())
}

func TestProgressEndsLineBeforeLogging(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{}
	logger := cfg.CreateLogger(&buf)
	progress := NewProgress(&buf, "features processed:")
	logger.AddHook(progress)

	progress.Update(1)
	logger.Warn("skipping part of feature 1")
	progress.Update(2)
	logger.Debug("below level")
	progress.Done()

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "\rfeatures processed: 1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "WARN "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "skipping part of feature 1"), lines[1])
	// debug is filtered before hooks run, so the line stays open until Done
	assert.Equal(t, "\rfeatures processed: 2", lines[2])
	assert.Empty(t, lines[3])
}
