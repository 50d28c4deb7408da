package fence

import "strings"

// Marker 表示一条围栏线（开栏或闭栏）
type Marker struct {
	Char      byte   // '`' 或 '~'
	RunLength int    // 围栏字符数，≥3
	LineIndex int    // 0-based 行号
	Column    int    // 围栏起始处的字节列（缩进宽度）
	Lang      string // 语言标签，仅反引号围栏可携带
}

// line 是原文中的一行，带起始字节偏移，不含行尾换行符
type line struct {
	text  string
	start int
}

// splitLines 切分文本并记录每行起始字节偏移。
// 末尾换行符不会产生额外的空行记录。
func splitLines(text string) []line {
	lines := make([]line, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, line{text: text[start:i], start: start})
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, line{text: text[start:], start: start})
	}
	return lines
}

func isFenceChar(c byte) bool {
	return c == '`' || c == '~'
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '+' || c == '#' || c == '_' || c == '-'
}

// parseFenceLine 判断一行是否为围栏线并解析出 Marker。
// bare 为 true 表示该行是裸围栏（可作为闭栏）。
// 波浪线围栏携带语言标签时不视为围栏线。
func parseFenceLine(l line, idx int) (m Marker, bare bool, ok bool) {
	s := l.text
	col := 0
	for col < len(s) && (s[col] == ' ' || s[col] == '\t') {
		col++
	}
	if col >= len(s) || !isFenceChar(s[col]) {
		return Marker{}, false, false
	}
	ch := s[col]
	runEnd := col
	for runEnd < len(s) && s[runEnd] == ch {
		runEnd++
	}
	if runEnd-col < 3 {
		return Marker{}, false, false
	}
	// Optional language tag, then trailing whitespace only.
	p := runEnd
	for p < len(s) && (s[p] == ' ' || s[p] == '\t') {
		p++
	}
	tagStart := p
	for p < len(s) && isTagByte(s[p]) {
		p++
	}
	tag := s[tagStart:p]
	for p < len(s) && (s[p] == ' ' || s[p] == '\t') {
		p++
	}
	if p != len(s) {
		return Marker{}, false, false
	}
	if tag != "" && ch == '~' {
		// Tilde fences may not carry a tag.
		return Marker{}, false, false
	}
	return Marker{
		Char:      ch,
		RunLength: runEnd - col,
		LineIndex: idx,
		Column:    col,
		Lang:      tag,
	}, tag == "", true
}

// sectionMarkers 是强制闭合围栏的显式小节标题前缀
var sectionMarkers = []string{"### Improvements", "### Revised Answer", "### Comments"}

// isATXHeading 检查一行是否为 3~6 级 ATX 标题（至多 3 个空白缩进，# 后须有空白）
func isATXHeading(s string) bool {
	i := 0
	for i < len(s) && i < 3 && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	hashes := 0
	for i < len(s) && s[i] == '#' {
		hashes++
		i++
	}
	if hashes < 3 || hashes > 6 {
		return false
	}
	return i < len(s) && (s[i] == ' ' || s[i] == '\t')
}

// looksLikeSectionBoundary 判断某行是否为文档小节边界。
// 显式小节标题直接成立；普通 ATX 标题要求其前一行为空行。
func looksLikeSectionBoundary(lines []line, idx int) bool {
	stripped := strings.TrimLeft(lines[idx].text, " \t")
	for _, m := range sectionMarkers {
		if strings.HasPrefix(stripped, m) {
			return true
		}
	}
	if isATXHeading(lines[idx].text) && idx > 0 && strings.TrimSpace(lines[idx-1].text) == "" {
		return true
	}
	return false
}

// maxRunIn 返回 s 中 ch 连续出现的最大长度
func maxRunIn(s string, ch byte) int {
	maxRun := 0
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	return maxRun
}
