package util

import "testing"

// TestExtFor 测试语言标签到扩展名的映射
func TestExtFor(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{"python", "python", "py"},
		{"yaml", "yaml", "yaml"},
		{"rust", "rust", "rs"},
		{"case insensitive", "Go", "go"},
		{"unknown language", "klingon", "txt"},
		{"empty language", "", "txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtFor(tt.language); got != tt.want {
				t.Errorf("ExtFor(%q) = %q, want %q", tt.language, got, tt.want)
			}
		})
	}
}

// TestExtractFilename 测试从注释行提取文件名
func TestExtractFilename(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"hash comment", "# app.py", "app.py"},
		{"slash comment", "// main.js", "main.js"},
		{"bare filename", "config.yaml", "config.yaml"},
		{"no filename", "no names here", ""},
		{"first match wins", "see a.py and b.js", "a.py"},
		{"empty line", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFilename(tt.line); got != tt.want {
				t.Errorf("ExtractFilename(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// TestFileName 测试提取代码块的命名策略
func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		want     string
	}{
		{
			name:     "filename in first line comment",
			code:     "# app.py\n\nimport os",
			language: "python",
			want:     "app.py",
		},
		{
			name:     "no filename falls back to snippet",
			code:     "import os\nx = 1",
			language: "python",
			want:     "snippet.py",
		},
		{
			name:     "javascript comment",
			code:     "// main.js\n\nconsole.log(1)",
			language: "javascript",
			want:     "main.js",
		},
		{
			name:     "extension mismatch appends language ext",
			code:     "# notes.txt\n\nprint('x')",
			language: "python",
			want:     "notes.txt.py",
		},
		{
			name:     "unknown language",
			code:     "whatever",
			language: "klingon",
			want:     "snippet.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.code, tt.language); got != tt.want {
				t.Errorf("FileName(%q, %q) = %q, want %q", tt.code, tt.language, got, tt.want)
			}
		})
	}
}
