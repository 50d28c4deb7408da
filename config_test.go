package mdmend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig 测试默认配置的取值与单例性
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultLang != "" || cfg.CloseOnNewline || !cfg.KeepFenceChar {
		t.Errorf("mend defaults = %+v, want empty lang, no newline close, keep fence char", cfg)
	}
	if cfg.ExtractThreshold != 50 || cfg.MaxMessageLength != 4096 {
		t.Errorf("pipeline defaults = %d, %d; want 50, 4096", cfg.ExtractThreshold, cfg.MaxMessageLength)
	}
	if again := DefaultConfig(); again != cfg {
		t.Error("DefaultConfig() returned a different pointer, want the singleton")
	}
}

// TestLoadConfig_Empty 测试无配置文件时取默认值
func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := *DefaultConfig()
	if *cfg != want {
		t.Errorf("LoadConfig(\"\") = %+v, want %+v", *cfg, want)
	}
}

// TestLoadConfig_File 测试从 yaml 文件读取全部字段
func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_lang: go\n" +
		"close_on_newline: true\n" +
		"keep_fence_char: false\n" +
		"extract_threshold: 10\n" +
		"max_message_length: 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{
		DefaultLang:      "go",
		CloseOnNewline:   true,
		KeepFenceChar:    false,
		ExtractThreshold: 10,
		MaxMessageLength: 100,
	}
	if *cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
	}
}

// TestLoadConfig_MissingFile 测试配置文件不存在时的错误
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want read failure")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("error = %v, want it wrapped as read config", err)
	}
}
