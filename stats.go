package mdmend

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/riverfjs/mdmend-go/internal/diff"
)

// Report 一次修复的诊断信息。Edits 仅用于诊断与日志，不做持久化。
type Report struct {
	ID     string         `json:"id"`
	Issues []string       `json:"issues,omitempty"`
	Edits  []Edit         `json:"edits,omitempty"`
	Stats  map[string]int `json:"stats"`
}

// CountEdits 按 reason 统计编辑数量
func CountEdits(edits []Edit) map[string]int {
	counts := make(map[string]int, len(edits))
	for _, e := range edits {
		counts[e.Reason]++
	}
	return counts
}

// CountText 计算文本的有效长度（rune 数）
//
// 拆分与消息长度限制都以 rune 为口径，与字节数无关；需要 UTF-16
// 口径的调用方使用 OffsetTable 换算。
func CountText(text string) int {
	return utf8.RuneCountInString(text)
}

// Diff 渲染修复前后的行级差异，供日志与命令行展示
func Diff(before, after string) []DiffHunk {
	return diff.Lines(before, after)
}

// FormatDiff 把差异行渲染为 +/- 前缀的文本
func FormatDiff(hunks []DiffHunk) string {
	return diff.Format(hunks)
}

func newReport(input, output string, issues []string, edits []Edit) *Report {
	stats := CountEdits(edits)
	stats["input_bytes"] = len(input)
	stats["output_bytes"] = len(output)
	stats["input_runes"] = CountText(input)
	stats["output_runes"] = CountText(output)
	return &Report{
		ID:     uuid.NewString(),
		Issues: issues,
		Edits:  edits,
		Stats:  stats,
	}
}
