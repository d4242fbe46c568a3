package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zhuyin.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSchemeForLocale(t *testing.T) {
	tests := []struct {
		locale string
		scheme zhuyin.Scheme
	}{
		{"zh-TW", zhuyin.Standard},
		{"zh-Hant", zhuyin.Standard},
		{"zh-HK", zhuyin.Standard},
		{"zh-CN", zhuyin.HanyuPinyin},
		{"zh-Hans-SG", zhuyin.HanyuPinyin},
		{"en-US", zhuyin.HanyuPinyin},
		{"not a locale", zhuyin.HanyuPinyin},
	}
	for _, test := range tests {
		assert.Equal(t, test.scheme, SchemeForLocale(test.locale), "locale %q", test.locale)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ZHUYIN_SCHEME", "ETen26")
	t.Setenv("ZHUYIN_LOCALE", "en-US")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, zhuyin.ETen26, cfg.KeyboardScheme())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, zhuyin.UseTone, cfg.ParseOptions())
	assert.Equal(t, tracing.LevelError, cfg.Level())
}

func TestSetOption(t *testing.T) {
	t.Setenv("ZHUYIN_LOCALE", "en-US")
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.SetOption("USE_TONE", false)
	assert.Equal(t, zhuyin.Options(0), cfg.ParseOptions())
	cfg.SetOption("correct_hsu", true)
	cfg.SetOption("use_tone", true)
	cfg.SetOption("use_tone", true)
	assert.Equal(t, []string{"correct_hsu", "use_tone"}, cfg.Options)
	assert.Equal(t, zhuyin.UseTone|zhuyin.CorrectHsu, cfg.ParseOptions())
}

func TestLoadSchemeFromLocale(t *testing.T) {
	t.Setenv("ZHUYIN_LOCALE", "zh-TW")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, zhuyin.Standard, cfg.KeyboardScheme())
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
scheme = "hsu-dvorak"
options = ["use_tone", "force_tone"]
workers = 2
trace_level = "debug"
locale = "zh-TW"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, zhuyin.HsuDvorak, cfg.KeyboardScheme())
	assert.Equal(t, zhuyin.UseTone|zhuyin.ForceTone, cfg.ParseOptions())
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, tracing.LevelDebug, cfg.Level())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "scheme = \"hsu\"\nworkers = 2\nlocale = \"en-US\"\n")
	t.Setenv("ZHUYIN_WORKERS", "7")
	t.Setenv("ZHUYIN_OPTIONS", "use_tone,correct_shuffle")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, zhuyin.Hsu, cfg.KeyboardScheme())
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, zhuyin.UseTone|zhuyin.CorrectShuffle, cfg.ParseOptions())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	tests := []struct {
		content string
		message string
	}{
		{"scheme = \"qwerty\"\nlocale = \"en-US\"\n", "unknown keyboard scheme"},
		{"scheme = \"hsu\"\noptions = [\"use_tones\"]\n", "unknown parse option"},
		{"scheme = \"hsu\"\nworkers = -1\n", "workers must be at least 1"},
		{"scheme = \"hsu\"\ntrace_level = \"verbose\"\n", "unknown trace level"},
	}
	for _, test := range tests {
		_, err := Load(writeFile(t, test.content))
		require.Error(t, err, test.content)
		assert.Contains(t, err.Error(), test.message)
	}
}

func TestDumpIsReadBack(t *testing.T) {
	cfg := &Config{
		Scheme:     "dachen_cp26",
		Options:    []string{"use_tone", "zhuyin_incomplete"},
		Workers:    3,
		TraceLevel: "info",
		Locale:     "zh-TW",
	}
	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))
	assert.Contains(t, buf.String(), `scheme = "dachen_cp26"`)
	read, err := Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, read)
}
