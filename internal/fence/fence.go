package fence

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mdmend-go/internal/guess"
	"github.com/riverfjs/mdmend-go/internal/types"
)

// Block 表示一次扫描得到的围栏代码块及其在原文中的位置信息
type Block struct {
	Open     Marker
	Close    *Marker
	Content  string // 块内容，按 "\n" 连接，不含围栏线

	StartPos int // 开栏行起始字节偏移
	EndPos   int // 块结束偏移（闭栏行之后，或合成闭栏的插入点）
	RunStart int // 开栏字符串的字节区间 [RunStart, RunEnd)
	RunEnd   int
	TagStart int // 已有语言标签的起始偏移（Lang 为空时无意义）

	CloseRunStart int // 闭栏字符串的字节区间（仅 Close 非 nil 时有效）
	CloseRunEnd   int

	AtEOF bool // 未闭合且合成闭栏落在文本末尾
}

// Unclosed reports whether the block has no real closing fence.
func (b *Block) Unclosed() bool {
	return b.Close == nil
}

// Validate 校验代码围栏的结构正确性，返回 (是否有效, 问题列表)。
//
// 校验器不做任何修改：围栏内遇到小节边界只记录症状，不强制闭栏；
// 扫描结束仍处于块内时报告未闭合围栏。
func Validate(text string) (bool, []string) {
	var issues []string
	lines := splitLines(text)
	inside := false
	var fenceChar byte
	fenceLen := 0
	openLine := 0
	for idx, l := range lines {
		if !inside {
			if m, _, ok := parseFenceLine(l, idx); ok {
				inside = true
				fenceChar = m.Char
				fenceLen = m.RunLength
				openLine = idx + 1
			}
			continue
		}
		if m, bare, ok := parseFenceLine(l, idx); ok && bare && m.Char == fenceChar && m.RunLength >= fenceLen {
			inside = false
			continue
		}
		if looksLikeSectionBoundary(lines, idx) {
			issues = append(issues, fmt.Sprintf("Heading inside open code fence on line %d", idx+1))
		}
	}
	if inside {
		issues = append(issues, fmt.Sprintf("Unclosed code fence started on line %d", openLine))
	}
	return len(issues) == 0, issues
}

// ScanBlocks 以修复语义扫描文本：围栏内遇到小节边界视为块在该行前
// 结束（闭栏待合成），边界行本身按普通文本继续处理。
func ScanBlocks(text string) []Block {
	lines := splitLines(text)
	var blocks []Block
	var cur *Block
	var contentLines []string
	for idx := 0; idx < len(lines); idx++ {
		l := lines[idx]
		if cur == nil {
			m, _, ok := parseFenceLine(l, idx)
			if !ok {
				continue
			}
			b := Block{
				Open:     m,
				StartPos: l.start,
				RunStart: l.start + m.Column,
				RunEnd:   l.start + m.Column + m.RunLength,
			}
			if m.Lang != "" {
				p := m.Column + m.RunLength
				for p < len(l.text) && (l.text[p] == ' ' || l.text[p] == '\t') {
					p++
				}
				b.TagStart = l.start + p
			}
			cur = &b
			contentLines = contentLines[:0]
			continue
		}
		if m, bare, ok := parseFenceLine(l, idx); ok && bare && m.Char == cur.Open.Char && m.RunLength >= cur.Open.RunLength {
			mm := m
			cur.Close = &mm
			cur.CloseRunStart = l.start + m.Column
			cur.CloseRunEnd = cur.CloseRunStart + m.RunLength
			cur.Content = strings.Join(contentLines, "\n")
			cur.EndPos = lineEnd(text, l)
			blocks = append(blocks, *cur)
			cur = nil
			continue
		}
		if looksLikeSectionBoundary(lines, idx) {
			cur.Content = strings.Join(contentLines, "\n")
			cur.EndPos = l.start
			blocks = append(blocks, *cur)
			cur = nil
			// The boundary line itself is prose; it can never open a fence.
			continue
		}
		contentLines = append(contentLines, l.text)
	}
	if cur != nil {
		cur.Content = strings.Join(contentLines, "\n")
		cur.EndPos = len(text)
		cur.AtEOF = true
		blocks = append(blocks, *cur)
	}
	return blocks
}

// lineEnd 返回一行结束后的偏移（含行尾换行符）
func lineEnd(text string, l line) int {
	end := l.start + len(l.text)
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return end
}

type repairConfig struct {
	keepFenceChar bool
	tagging       bool
	defaultLang   string
}

// Fix 修复围栏问题并返回编辑记录，Position 均为原文字节偏移。
// 对结构上已有效的文本不产生任何编辑。
func Fix(text string, keepFenceChar bool) []types.Edit {
	return repairEdits(text, ScanBlocks(text), repairConfig{keepFenceChar: keepFenceChar})
}

// Ensure 在 Fix 之上为缺失语言标签的反引号围栏补充标签，
// 并把已有标签规范为惯用小写形式。
func Ensure(text string, defaultLang string, keepFenceChar bool) []types.Edit {
	return repairEdits(text, ScanBlocks(text), repairConfig{
		keepFenceChar: keepFenceChar,
		tagging:       true,
		defaultLang:   defaultLang,
	})
}

func repairEdits(text string, blocks []Block, cfg repairConfig) []types.Edit {
	var edits []types.Edit
	for i := range blocks {
		b := &blocks[i]
		newChar := b.Open.Char
		convert := false
		if !cfg.keepFenceChar && b.Open.Char == '~' {
			newChar = '`'
			convert = true
		}

		runModified := false
		safeLen := b.Open.RunLength
		if b.Unclosed() || convert {
			if maxRun := maxRunIn(b.Content, newChar); maxRun >= safeLen {
				safeLen = maxRun + 1
			}
		}

		origRun := strings.Repeat(string(b.Open.Char), b.Open.RunLength)
		switch {
		case convert:
			edits = append(edits, types.Edit{
				Kind:     types.EditReplace,
				Position: b.RunStart,
				Before:   origRun,
				After:    strings.Repeat(string(newChar), safeLen),
				Reason:   types.ReasonFenceCharNorm,
			})
			runModified = true
		case safeLen != b.Open.RunLength:
			edits = append(edits, types.Edit{
				Kind:     types.EditReplace,
				Position: b.RunStart,
				Before:   origRun,
				After:    strings.Repeat(string(newChar), safeLen),
				Reason:   types.ReasonFenceLengthConflict,
			})
			runModified = true
		}

		if cfg.tagging {
			edits = append(edits, tagEdits(b, newChar, runModified, cfg.defaultLang)...)
		}

		if b.Unclosed() {
			closer := strings.Repeat(string(newChar), safeLen)
			after := closer + "\n"
			pos := b.EndPos
			if b.AtEOF && (len(text) == 0 || text[len(text)-1] != '\n') {
				after = "\n" + closer
			}
			edits = append(edits, types.Edit{
				Kind:     types.EditInsert,
				Position: pos,
				After:    after,
				Reason:   types.ReasonUnclosedFence,
			})
			continue
		}

		if convert {
			closerLen := b.Close.RunLength
			if closerLen < safeLen {
				closerLen = safeLen
			}
			edits = append(edits, types.Edit{
				Kind:     types.EditReplace,
				Position: b.CloseRunStart,
				Before:   strings.Repeat(string(b.Open.Char), b.Close.RunLength),
				After:    strings.Repeat(string(newChar), closerLen),
				Reason:   types.ReasonFenceCharNorm,
			})
		}
	}
	return edits
}

// tagAliases 把常见语言标签别名归一为渲染器普遍支持的形式
var tagAliases = map[string]string{
	"py":      "python",
	"python3": "python",
	"js":      "javascript",
	"node":    "javascript",
	"sh":      "bash",
	"shell":   "bash",
	"zsh":     "bash",
	"yml":     "yaml",
}

func normalizeTag(tag string) string {
	lower := strings.ToLower(tag)
	if canonical, ok := tagAliases[lower]; ok {
		return canonical
	}
	return lower
}

func tagEdits(b *Block, effectiveChar byte, runModified bool, defaultLang string) []types.Edit {
	if effectiveChar != '`' {
		// Tilde fences cannot carry a tag.
		return nil
	}
	if b.Open.Lang != "" {
		norm := normalizeTag(b.Open.Lang)
		if norm == b.Open.Lang {
			return nil
		}
		return []types.Edit{{
			Kind:     types.EditReplace,
			Position: b.TagStart,
			Before:   b.Open.Lang,
			After:    norm,
			Reason:   types.ReasonLanguageTagNorm,
		}}
	}
	lang := defaultLang
	if strings.TrimSpace(b.Content) != "" {
		lang = guess.Guess(b.Content, defaultLang)
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil
	}
	if runModified {
		// The opener run already carries a replace edit; attach the tag
		// right after the run so the two edits stay disjoint.
		return []types.Edit{{
			Kind:     types.EditReplace,
			Position: b.RunEnd,
			Before:   "",
			After:    lang,
			Reason:   types.ReasonLanguageTagAdded,
		}}
	}
	run := strings.Repeat(string(b.Open.Char), b.Open.RunLength)
	return []types.Edit{{
		Kind:     types.EditReplace,
		Position: b.RunStart,
		Before:   run,
		After:    run + lang,
		Reason:   types.ReasonLanguageTagAdded,
	}}
}
