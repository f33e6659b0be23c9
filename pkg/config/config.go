/*
Package config manages TOML config for wordshare.

Every option of the command line has a config counterpart. A config file
only changes defaults: flags given on the command line always win.

	[scan]
	initial = 63
	punctuation_like_space = false
	uppercasing = false

	[report]
	top = 10
	same_numbers = false
	format = "text"

	[dict]
	max_words = 0
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordshare/internal/utils"
	"github.com/bastiangx/wordshare/pkg/reader"
	"github.com/bastiangx/wordshare/pkg/report"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "wordshare"

// ErrInvalid is matched by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the entire config structure
type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Report ReportConfig `toml:"report"`
	Dict   DictConfig   `toml:"dict"`
}

// ScanConfig has the word reading options.
type ScanConfig struct {
	Initial              int  `toml:"initial"`
	PunctuationLikeSpace bool `toml:"punctuation_like_space"`
	Uppercasing          bool `toml:"uppercasing"`
}

// ReportConfig has the display options.
type ReportConfig struct {
	Top         int    `toml:"top"`
	SameNumbers bool   `toml:"same_numbers"`
	Format      string `toml:"format"`
}

// DictConfig bounds the word store. MaxWords of 0 means no bound.
type DictConfig struct {
	MaxWords int `toml:"max_words"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Initial:              reader.DefaultMaxTokenLength,
			PunctuationLikeSpace: false,
			Uppercasing:          false,
		},
		Report: ReportConfig{
			Top:         10,
			SameNumbers: false,
			Format:      string(report.FormatText),
		},
		Dict: DictConfig{
			MaxWords: 0,
		},
	}
}

// ReaderConfig returns the reading options as expected by the reader.
func (c *Config) ReaderConfig() reader.Config {
	return reader.Config{
		MaxTokenLength:     c.Scan.Initial,
		PunctuationAsSpace: c.Scan.PunctuationLikeSpace,
		UppercaseFold:      c.Scan.Uppercasing,
	}
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.Scan.Initial < 1 {
		return fmt.Errorf("%w: initial must be at least 1, got %d", ErrInvalid, c.Scan.Initial)
	}
	if c.Report.Top < 0 {
		return fmt.Errorf("%w: top must not be negative, got %d", ErrInvalid, c.Report.Top)
	}
	if c.Dict.MaxWords < 0 {
		return fmt.Errorf("%w: max_words must not be negative, got %d", ErrInvalid, c.Dict.MaxWords)
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() string {
	return filepath.Join(utils.ConfigDir(AppName), "config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordshare/config.toml, if present
// 3. Builtin defaults
//
// A custom path that cannot be read is an error: the user asked for it.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, err := os.Stat(customConfigPath); err != nil {
			return nil, "", fmt.Errorf("config file: %w", err)
		}
		config, err := LoadConfig(customConfigPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded config from custom path: %s", customConfigPath)
		return config, customConfigPath, nil
	}

	defaultPath := GetDefaultConfigPath()
	if !utils.FileExists(defaultPath) {
		log.Debugf("No config file at %s, using built-in defaults", defaultPath)
		return DefaultConfig(), "", nil
	}
	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// LoadConfig loads from a TOML file, falling back to key by key
// recovery when the file does not decode as a whole.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed key of a file that failed to
// decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	if scanSection, ok := utils.ExtractSection(tempConfig, "scan"); ok {
		extractScanConfig(scanSection, &config.Scan)
	}
	if reportSection, ok := utils.ExtractSection(tempConfig, "report"); ok {
		extractReportConfig(reportSection, &config.Report)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	return config, nil
}

func extractScanConfig(data map[string]any, scan *ScanConfig) {
	if val, ok := utils.ExtractInt64(data, "initial"); ok {
		scan.Initial = val
	}
	if val, ok := utils.ExtractBool(data, "punctuation_like_space"); ok {
		scan.PunctuationLikeSpace = val
	}
	if val, ok := utils.ExtractBool(data, "uppercasing"); ok {
		scan.Uppercasing = val
	}
}

func extractReportConfig(data map[string]any, rep *ReportConfig) {
	if val, ok := utils.ExtractInt64(data, "top"); ok {
		rep.Top = val
	}
	if val, ok := utils.ExtractBool(data, "same_numbers"); ok {
		rep.SameNumbers = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		rep.Format = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

// WriteDefaultConfig writes the built-in defaults to configPath, or to
// the default path when configPath is empty, and returns the path used.
func WriteDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return "", err
	}
	if err := SaveConfig(DefaultConfig(), configPath); err != nil {
		return "", err
	}
	return utils.GetAbsolutePath(configPath), nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
