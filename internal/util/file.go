package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// LanguageExt maps language tags to file extensions for extracted code.
var LanguageExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"json":       "json",
	"yaml":       "yaml",
	"sql":        "sql",
	"bash":       "sh",
	"html":       "html",
	"css":        "css",
	"c":          "c",
	"cpp":        "cpp",
	"java":       "java",
	"rust":       "rs",
	"go":         "go",
	"ruby":       "rb",
	"php":        "php",
	"kotlin":     "kt",
	"swift":      "swift",
	"markdown":   "md",
	"toml":       "toml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
}

var filenameRe = regexp.MustCompile(`([a-zA-Z0-9_\-.]+\.[a-zA-Z0-9]+)`)

// ExtFor returns the file extension for a language tag, "txt" when unknown.
func ExtFor(language string) string {
	if ext, ok := LanguageExt[strings.ToLower(language)]; ok {
		return ext
	}
	return "txt"
}

// ExtractFilename pulls the first filename-with-extension out of a line,
// typically a comment such as "# app.py" at the top of a snippet.
func ExtractFilename(line string) string {
	for _, match := range filenameRe.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// FileName picks a name for an extracted code block. It prefers a filename
// mentioned in the first two lines of the code and falls back to
// "snippet.<ext>" derived from the language tag.
func FileName(code string, language string) string {
	lines := strings.Split(strings.TrimSpace(code), "\n")
	sample := ""
	if len(lines) > 0 {
		sample = lines[0]
		if len(lines) > 1 {
			sample += lines[1]
		}
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := ExtFor(language)
	if name := ExtractFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
			return name
		}
		return name + "." + ext
	}
	return "snippet." + ext
}
