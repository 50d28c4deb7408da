// Package diff 生成原文与修复结果之间的行级差异，供诊断报告与
// 命令行工具展示修复位置。
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType 标识差异行的类别
type LineType string

const (
	LineContext LineType = "context"
	LineAdded   LineType = "added"
	LineRemoved LineType = "removed"
)

// Line 一行差异；OldLine/NewLine 为 1 起始的行号，不适用时为 0
type Line struct {
	Type    LineType `json:"type"`
	Text    string   `json:"text"`
	OldLine int      `json:"old_line,omitempty"`
	NewLine int      `json:"new_line,omitempty"`
}

// MaxLines 单次差异的行数上限，超出即截断
const MaxLines = 2000

// Lines 计算按行对齐的差异序列，两文本相同时返回 nil。
func Lines(before, after string) []Line {
	return LinesWithLimit(before, after, MaxLines)
}

// LinesWithLimit 同 Lines，但在产出 limit 行后停止；limit <= 0 表示不限。
func LinesWithLimit(before, after string, limit int) []Line {
	if before == after {
		return nil
	}
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	oldLine, newLine := 1, 1
	var out []Line
	for _, d := range diffs {
		for _, text := range chunkLines(d.Text) {
			if limit > 0 && len(out) >= limit {
				return out
			}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				out = append(out, Line{Type: LineContext, Text: text, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				out = append(out, Line{Type: LineRemoved, Text: text, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				out = append(out, Line{Type: LineAdded, Text: text, NewLine: newLine})
				newLine++
			}
		}
	}
	return out
}

// chunkLines 把差异块拆成单行，块以换行结尾时丢弃末尾空片段
func chunkLines(text string) []string {
	parts := strings.Split(text, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Format 渲染成 +/- 前缀的文本形式，行间以换行分隔。
func Format(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch l.Type {
		case LineAdded:
			b.WriteByte('+')
		case LineRemoved:
			b.WriteByte('-')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(l.Text)
	}
	return b.String()
}
