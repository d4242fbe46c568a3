/*
Package config holds the configuration of the zhuyinparse command.

Configuration is read from an optional TOML file, then overridden by
environment variables:

   ZHUYIN_SCHEME    keyboard scheme, e.g. "hsu" or "hanyu_pinyin"
   ZHUYIN_OPTIONS   comma separated parse options, e.g. "use_tone,force_tone"
   ZHUYIN_WORKERS   number of concurrent parsers
   ZHUYIN_TRACE     trace level: "debug", "info" or "error"
   ZHUYIN_LOCALE    user locale, overriding the one detected

If no scheme is configured, it is derived from the user's locale:
Traditional Chinese locales default to the standard Zhuyin keyboard,
everything else to Hanyu Pinyin.
*/
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
	"golang.org/x/text/language"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Config is the effective configuration of a run.
type Config struct {
	Scheme     string   `toml:"scheme"      env:"ZHUYIN_SCHEME"`
	Options    []string `toml:"options"     env:"ZHUYIN_OPTIONS"  env-separator:","  env-default:"use_tone"`
	Workers    int      `toml:"workers"     env:"ZHUYIN_WORKERS"  env-default:"4"`
	TraceLevel string   `toml:"trace_level" env:"ZHUYIN_TRACE"    env-default:"error"`
	Locale     string   `toml:"locale"      env:"ZHUYIN_LOCALE"`
}

// Load reads the configuration file at path, if path is non-empty, and
// applies environment overrides and defaults. A missing scheme is derived
// from the locale. The result is validated.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.Locale == "" {
		cfg.Locale = DetectLocale()
	}
	if cfg.Scheme == "" {
		cfg.Scheme = SchemeForLocale(cfg.Locale).String()
		tracer().P("locale", cfg.Locale).Infof("default keyboard scheme is %s", cfg.Scheme)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every setting names something known.
func (c *Config) Validate() error {
	if _, ok := zhuyin.SchemeFromName(c.Scheme); !ok {
		return fmt.Errorf("unknown keyboard scheme %q", c.Scheme)
	}
	if _, err := parseOptions(c.Options); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, is %d", c.Workers)
	}
	if _, err := parseTraceLevel(c.TraceLevel); err != nil {
		return err
	}
	return nil
}

// KeyboardScheme returns the configured scheme. Config has to be valid.
func (c *Config) KeyboardScheme() zhuyin.Scheme {
	s, _ := zhuyin.SchemeFromName(c.Scheme)
	return s
}

// ParseOptions returns the configured options as flags. Config has to be valid.
func (c *Config) ParseOptions() zhuyin.Options {
	opts, _ := parseOptions(c.Options)
	return opts
}

// SetOption switches the named parse option on or off, replacing any
// earlier mention of it.
func (c *Config) SetOption(name string, on bool) {
	o, known := zhuyin.OptionFromName(name)
	opts := make([]string, 0, len(c.Options)+1)
	for _, n := range c.Options {
		if p, ok := zhuyin.OptionFromName(n); known && ok && p == o {
			continue
		}
		opts = append(opts, n)
	}
	if on {
		opts = append(opts, strings.TrimSpace(name))
	}
	c.Options = opts
}

// Level returns the configured trace level. Config has to be valid.
func (c *Config) Level() tracing.TraceLevel {
	l, _ := parseTraceLevel(c.TraceLevel)
	return l
}

// Dump writes the configuration as TOML, in a form Load will read back.
func (c *Config) Dump(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: dump: %w", err)
	}
	return nil
}

func parseOptions(names []string) (zhuyin.Options, error) {
	var opts zhuyin.Options
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		o, ok := zhuyin.OptionFromName(name)
		if !ok {
			return 0, fmt.Errorf("unknown parse option %q", name)
		}
		opts |= o
	}
	return opts, nil
}

func parseTraceLevel(level string) (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", level)
}

// --- Locale -----------------------------------------------------------

// DetectLocale returns the user's locale as an IETF tag, e.g. "zh-TW".
// If it cannot be detected, "en-US" is assumed.
func DetectLocale() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		return "en-US"
	}
	return userLocale
}

// The first tag is the fallback.
var localeMatch = language.NewMatcher([]language.Tag{
	language.English,
	language.TraditionalChinese,
	language.SimplifiedChinese,
})

var localeSchemes = []zhuyin.Scheme{
	zhuyin.HanyuPinyin,
	zhuyin.Standard,
	zhuyin.HanyuPinyin,
}

// SchemeForLocale returns the default keyboard scheme for a locale.
func SchemeForLocale(locale string) zhuyin.Scheme {
	tag, err := language.Parse(locale)
	if err != nil {
		return zhuyin.HanyuPinyin
	}
	_, inx, confidence := localeMatch.Match(tag)
	if confidence == language.No {
		return zhuyin.HanyuPinyin
	}
	return localeSchemes[inx]
}
