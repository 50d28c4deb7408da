// Package guess implements a heuristic language classifier for untagged
// code snippets. Rules are evaluated in a fixed priority order and the
// first match wins, so results are deterministic for a given input.
package guess

import (
	"regexp"
	"strings"
)

var (
	sqlLeadRe  = regexp.MustCompile(`(?i)^\s*(select|insert|create\s+table)\b`)
	jsFuncRe   = regexp.MustCompile(`function\s+\w+\s*\(`)
	jsImportRe = regexp.MustCompile(`\bimport\s+.+\s+from\s+`)
	pyDefRe    = regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)
	yamlKVRe   = regexp.MustCompile(`^\s*[\w-]+\s*:\s*\S`)
	shellCmdRe = regexp.MustCompile(`(?m)^\s*\$?\s*(cd|ls|echo|export|pip|apt|yum|curl|wget|git)\b`)
	htmlTagRe  = regexp.MustCompile(`(?mi)^\s*<html\b`)
	cMainRe    = regexp.MustCompile(`\bint\s+main\s*\(`)
)

// Guess classifies code and returns a lowercase language tag, or fallback
// when no rule matches. It never fails; unknown content is simply the
// fallback.
func Guess(code string, fallback string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return fallback
	}

	if strings.HasPrefix(trimmed, "#!") {
		return "bash"
	}
	if looksLikeJSON(trimmed) {
		return "json"
	}
	if sqlLeadRe.MatchString(firstNonEmptyLine(code)) {
		return "sql"
	}
	if strings.Contains(code, "console.log(") || jsFuncRe.MatchString(code) ||
		strings.Contains(code, "=> ") || jsImportRe.MatchString(code) {
		return "javascript"
	}
	if pyDefRe.MatchString(code) || strings.Contains(code, "import ") ||
		strings.Contains(code, "print(") {
		return "python"
	}
	if looksLikeYAML(code) {
		return "yaml"
	}

	if shellCmdRe.MatchString(code) {
		return "bash"
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "<!doctype html") || htmlTagRe.MatchString(code) ||
		strings.HasPrefix(lower, "<?xml") {
		return "html"
	}
	if strings.Contains(code, "#include") || cMainRe.MatchString(code) {
		return "c"
	}
	if strings.Contains(code, "public class ") || strings.Contains(code, "System.out.println(") {
		return "java"
	}
	if strings.Contains(code, "fn main()") || strings.Contains(code, "let mut ") {
		return "rust"
	}
	return fallback
}

func firstNonEmptyLine(code string) string {
	for _, l := range strings.Split(code, "\n") {
		if strings.TrimSpace(l) != "" {
			return l
		}
	}
	return ""
}

// looksLikeJSON reports whether trimmed starts with an object or array
// opener and all braces/brackets outside string literals balance out.
// Object snippets must also carry at least one ':' key separator.
func looksLikeJSON(trimmed string) bool {
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 || inString {
		return false
	}
	if trimmed[0] == '{' && !strings.Contains(trimmed, ":") {
		return false
	}
	return true
}

// looksLikeYAML reports whether key:value lines dominate the snippet and
// no brace or statement separator suggests another language.
func looksLikeYAML(code string) bool {
	if strings.ContainsAny(code, "{;") {
		return false
	}
	nonEmpty := 0
	kv := 0
	for _, l := range strings.Split(code, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		nonEmpty++
		if yamlKVRe.MatchString(l) {
			kv++
		}
	}
	return kv > 0 && 2*kv > nonEmpty
}
