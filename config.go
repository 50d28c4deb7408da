package mdmend

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/riverfjs/mdmend-go/internal/diff"
	"github.com/riverfjs/mdmend-go/internal/types"
)

// 导出类型别名
type Edit = types.Edit
type EditKind = types.EditKind
type ProtectedRegion = types.ProtectedRegion
type Config = types.Config
type DiffHunk = diff.Line

// Edit reason 标签，与 Edit.Reason 一一对应
const (
	ReasonUnclosedFence       = types.ReasonUnclosedFence
	ReasonFenceLengthConflict = types.ReasonFenceLengthConflict
	ReasonLanguageTagAdded    = types.ReasonLanguageTagAdded
	ReasonLanguageTagNorm     = types.ReasonLanguageTagNorm
	ReasonFenceCharNorm       = types.ReasonFenceCharNorm
	ReasonUnclosedMath        = types.ReasonUnclosedMath
	ReasonNewlineBoundary     = types.ReasonNewlineBoundary
	ReasonAlignNormalized     = types.ReasonAlignNormalized
)

// Edit kind 标签
const (
	EditInsert  = types.EditInsert
	EditReplace = types.EditReplace
	EditDelete  = types.EditDelete
)

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}

// LoadConfig 从配置文件读取配置，path 为空时仅取默认值与环境变量。
// 支持 viper 认识的所有格式（yaml/toml/json 等），环境变量以
// MDMEND_ 前缀覆盖同名配置项。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	defaults := types.DefaultConfig()
	v.SetDefault("default_lang", defaults.DefaultLang)
	v.SetDefault("close_on_newline", defaults.CloseOnNewline)
	v.SetDefault("keep_fence_char", defaults.KeepFenceChar)
	v.SetDefault("extract_threshold", defaults.ExtractThreshold)
	v.SetDefault("max_message_length", defaults.MaxMessageLength)
	v.SetEnvPrefix("MDMEND")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
