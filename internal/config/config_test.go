package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"cv": "resume.txt",
		"language": "en",
		"max_questions": 7,
		"use_ai": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", cfg.CV)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 7, cfg.MaxQuestions)
	assert.True(t, cfg.UseAI)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "bad.json", "{not json")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate_JobAndURLMutuallyExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_Language(t *testing.T) {
	for _, lang := range []string{"", "es", "en", "pt", "fr"} {
		cfg := &Config{Language: lang}
		assert.NoError(t, cfg.Validate(), "language %q", lang)
	}

	cfg := &Config{Language: "de"}
	require.Error(t, cfg.Validate())
}

func TestValidate_NegativeMaxQuestions(t *testing.T) {
	cfg := &Config{MaxQuestions: -1}
	require.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{CV: filepath.Join(t.TempDir(), "missing-cv.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cv file not found")

	cfg = &Config{Job: filepath.Join(t.TempDir(), "missing-job.txt")}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	cv := writeTempFile(t, "cv.txt", "resume")
	cfg := &Config{CV: cv, Language: "en", MaxQuestions: 10}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CV: "explicit.txt", MaxQuestions: 3}
	defaults := Config{
		CV:           "default.txt",
		Job:          "job.txt",
		Language:     "pt",
		MaxQuestions: 10,
		APIKey:       "key-123",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win, empty ones fill from defaults.
	assert.Equal(t, "explicit.txt", merged.CV)
	assert.Equal(t, 3, merged.MaxQuestions)
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, "pt", merged.Language)
	assert.Equal(t, "key-123", merged.APIKey)
}
