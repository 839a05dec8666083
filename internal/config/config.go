package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	legalsite "github.com/alnah/go-legalsite"
	"github.com/alnah/go-legalsite/internal/fileutil"
	"github.com/alnah/go-legalsite/internal/logmigrate"
	"github.com/alnah/go-legalsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 100
	MaxCodeLength     = 16 // "en", "pt-BR", "zh-Hant"
	MaxFlagLength     = 32 // flag emoji are several code points
	MaxEmailLength    = 254
	MaxDateLength     = 50
	MaxTagLength      = 100
	MaxLanguageCount  = 100
	MaxEncodingsCount = 16
)

// Defaults match the layout of the mobile app repository.
const (
	DefaultInputDir          = legalsite.DefaultSourceDir
	DefaultOutputDir         = legalsite.DefaultOutputDir
	DefaultSiteName          = legalsite.DefaultSiteName
	DefaultHome              = legalsite.DefaultHome
	DefaultCopyright         = legalsite.DefaultCopyright
	DefaultEngine            = "lines"
	DefaultReferenceLanguage = "en"
	DefaultContactEmail      = "founder@theplacewelive.org"
	DefaultLoggerTag         = logmigrate.DefaultTag
	DefaultTemplate          = legalsite.DefaultTemplate
	DefaultStyle             = legalsite.DefaultStyle
)

// DefaultEncodings are tried in order when decoding a source document.
var DefaultEncodings = legalsite.DefaultEncodings

// configDirName is the directory under the user config dir searched by name.
const configDirName = "legalsite"

// Config holds all configuration for the legalsite tools.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Site        SiteConfig        `yaml:"site"`
	Markdown    MarkdownConfig    `yaml:"markdown"`
	Encodings   []string          `yaml:"encodings"`
	Languages   []LanguageConfig  `yaml:"languages"`
	Assets      AssetsConfig      `yaml:"assets"`
	Translation TranslationConfig `yaml:"translation"`
	Migrate     MigrateConfig     `yaml:"migrate"`
}

// InputConfig defines where markdown sources live.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// SiteConfig holds values shared by every rendered page.
type SiteConfig struct {
	Name      string `yaml:"name"`
	Home      string `yaml:"home"`      // Link target of the "Back to Home" buttons
	Copyright string `yaml:"copyright"` // Year, or "auto" / "auto:FORMAT"
}

// MarkdownConfig selects the fragment engine.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "lines" (default) or "goldmark"
}

// LanguageConfig is one entry of the language table.
type LanguageConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	Flag string `yaml:"flag"`
	RTL  bool   `yaml:"rtl"`
}

// AssetsConfig defines template and stylesheet loading.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
	Template string `yaml:"template"`
	Style    string `yaml:"style"`
}

// TranslationConfig feeds the translation checklist.
type TranslationConfig struct {
	ContactEmail      string            `yaml:"contactEmail"`
	ReferenceLanguage string            `yaml:"referenceLanguage"`
	EffectiveDates    map[string]string `yaml:"effectiveDates"`
}

// MigrateConfig feeds the logger migration tool.
type MigrateConfig struct {
	Tag string `yaml:"tag"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultLanguages is the language table of the app, in processing order.
func DefaultLanguages() []LanguageConfig {
	all := legalsite.DefaultLanguages().All()
	out := make([]LanguageConfig, len(all))
	for i, l := range all {
		out[i] = LanguageConfig{Code: l.Code, Name: l.Name, Flag: l.Flag, RTL: l.RTL}
	}
	return out
}

// DefaultEffectiveDates are the localized effective dates of the current
// legal documents.
func DefaultEffectiveDates() map[string]string {
	return map[string]string{
		"en": "October 2, 2025",
		"de": "2. Oktober 2025",
		"es": "2 de octubre de 2025",
		"fr": "2 octobre 2025",
		"pt": "2 de outubro de 2025",
		"zh": "2025年10月2日",
		"ar": "2 أكتوبر 2025",
		"he": "2 באוקטובר 2025",
	}
}

// applyDefaults fills every unset field.
func (c *Config) applyDefaults() {
	setDefault(&c.Input.Dir, DefaultInputDir)
	setDefault(&c.Output.Dir, DefaultOutputDir)
	setDefault(&c.Site.Name, DefaultSiteName)
	setDefault(&c.Site.Home, DefaultHome)
	setDefault(&c.Site.Copyright, DefaultCopyright)
	setDefault(&c.Markdown.Engine, DefaultEngine)
	setDefault(&c.Assets.Template, DefaultTemplate)
	setDefault(&c.Assets.Style, DefaultStyle)
	setDefault(&c.Translation.ContactEmail, DefaultContactEmail)
	setDefault(&c.Translation.ReferenceLanguage, DefaultReferenceLanguage)
	setDefault(&c.Migrate.Tag, DefaultLoggerTag)

	if len(c.Encodings) == 0 {
		c.Encodings = append([]string(nil), DefaultEncodings...)
	}
	if len(c.Languages) == 0 {
		c.Languages = DefaultLanguages()
	}
	if c.Translation.EffectiveDates == nil {
		c.Translation.EffectiveDates = DefaultEffectiveDates()
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks field lengths, engine names and the language table.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.home", c.Site.Home, MaxPathLength},
		{"site.copyright", c.Site.Copyright, MaxDateLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.template", c.Assets.Template, MaxNameLength},
		{"assets.style", c.Assets.Style, MaxNameLength},
		{"translation.contactEmail", c.Translation.ContactEmail, MaxEmailLength},
		{"translation.referenceLanguage", c.Translation.ReferenceLanguage, MaxCodeLength},
		{"migrate.tag", c.Migrate.Tag, MaxTagLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Markdown.Engine) {
	case "", "lines", "goldmark":
	default:
		return fmt.Errorf("%w: markdown.engine: %q (must be lines or goldmark)", ErrInvalidConfig, c.Markdown.Engine)
	}

	if len(c.Encodings) > MaxEncodingsCount {
		return fmt.Errorf("%w: encodings: %d entries (max %d)", ErrInvalidConfig, len(c.Encodings), MaxEncodingsCount)
	}

	if err := validateLanguages(c.Languages); err != nil {
		return err
	}

	for code, date := range c.Translation.EffectiveDates {
		if err := validateFieldLength(fmt.Sprintf("translation.effectiveDates[%s]", code), date, MaxDateLength); err != nil {
			return err
		}
	}

	return nil
}

func validateLanguages(langs []LanguageConfig) error {
	if len(langs) > MaxLanguageCount {
		return fmt.Errorf("%w: languages: %d entries (max %d)", ErrInvalidConfig, len(langs), MaxLanguageCount)
	}

	seen := make(map[string]bool, len(langs))
	for i, l := range langs {
		if l.Code == "" {
			return fmt.Errorf("%w: languages[%d].code: required", ErrInvalidConfig, i)
		}
		if strings.ContainsAny(l.Code, "/\\. ") {
			return fmt.Errorf("%w: languages[%d].code: %q is not a valid code", ErrInvalidConfig, i, l.Code)
		}
		if seen[l.Code] {
			return fmt.Errorf("%w: languages[%d].code: duplicate %q", ErrInvalidConfig, i, l.Code)
		}
		seen[l.Code] = true

		if err := validateFieldLength(fmt.Sprintf("languages[%d].code", i), l.Code, MaxCodeLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("languages[%d].name", i), l.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("languages[%d].flag", i), l.Flag, MaxFlagLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as name.yaml / name.yml in the current directory,
// then in the user config directory under legalsite/.
// Unset fields take their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
