package mdmend

import (
	"strings"

	"github.com/riverfjs/mdmend-go/internal/buffer"
	"github.com/riverfjs/mdmend-go/internal/fence"
	"github.com/riverfjs/mdmend-go/internal/parser"
)

// SplitText 把文本拆成不超过 limit 个 rune 的块
//
// 参数:
//   - text: 待拆分的文本
//   - limit: 单块最大 rune 数，非正数取配置默认值
//
// 返回:
//   - []string: 有序的块列表，空文本返回 nil
//
// 拆分以顶层 Markdown 块为最小单元，围栏代码块不会被从中间截断；
// 当单个代码块自身超限时，先闭栏再在下一块以相同围栏行重新开栏。
// 除这种合成的围栏续行外，块拼接还原原文。
func SplitText(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultConfig().MaxMessageLength
	}
	if text == "" {
		return nil
	}
	if CountText(text) <= limit {
		return []string{text}
	}

	var chunks []string
	buf := buffer.New()
	flush := func() {
		if !buf.Empty() {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
	}

	for _, span := range parser.BlockSpans(text) {
		unit := text[span.Start:span.End]
		n := CountText(unit)
		if buf.RuneOffset()+n > limit {
			flush()
		}
		if n <= limit {
			buf.Write(unit)
			continue
		}
		pieces := splitOversized(unit, limit)
		for _, piece := range pieces[:len(pieces)-1] {
			chunks = append(chunks, piece)
		}
		// 最后一片还能和后续单元拼装
		buf.Write(pieces[len(pieces)-1])
	}
	flush()
	return chunks
}

// splitOversized 拆分一个自身超限的顶层单元
func splitOversized(unit string, limit int) []string {
	if blocks := fence.ScanBlocks(unit); len(blocks) == 1 && blocks[0].StartPos == 0 {
		return splitFencedBlock(unit, &blocks[0], limit)
	}
	return splitPlain(unit, limit)
}

// splitFencedBlock 按行拆分围栏代码块，每片闭栏、续片重新开栏
func splitFencedBlock(unit string, b *fence.Block, limit int) []string {
	lines := strings.SplitAfter(unit, "\n")
	opener := lines[0]
	run := strings.Repeat(string(b.Open.Char), b.Open.RunLength)
	closer := run + "\n"

	var pieces []string
	cur := opener
	curN := CountText(opener)
	closerN := CountText(closer)

	for _, l := range lines[1:] {
		ln := CountText(l)
		for curN+ln+closerN > limit && ln+CountText(opener)+closerN > limit {
			// 单行也放不下，硬切该行
			if cur != opener {
				pieces = append(pieces, cur+closer)
				cur = opener
				curN = CountText(opener)
			}
			budget := limit - curN - closerN - 1
			head, rest := cutRunes(l, budget)
			pieces = append(pieces, cur+head+"\n"+closer)
			cur = opener
			curN = CountText(opener)
			l = rest
			ln = CountText(l)
		}
		if curN+ln+closerN > limit && cur != opener {
			pieces = append(pieces, cur+closer)
			cur = opener
			curN = CountText(opener)
		}
		cur += l
		curN += ln
	}
	pieces = append(pieces, cur)
	return pieces
}

// splitPlain 按行贪心拆分非代码单元，超长单行按 rune 硬切
func splitPlain(unit string, limit int) []string {
	var pieces []string
	cur := ""
	curN := 0
	for _, l := range strings.SplitAfter(unit, "\n") {
		ln := CountText(l)
		for ln > limit {
			if cur != "" {
				pieces = append(pieces, cur)
				cur = ""
				curN = 0
			}
			head, rest := cutRunes(l, limit)
			pieces = append(pieces, head)
			l = rest
			ln = CountText(l)
		}
		if curN+ln > limit && cur != "" {
			pieces = append(pieces, cur)
			cur = ""
			curN = 0
		}
		cur += l
		curN += ln
	}
	if cur != "" {
		pieces = append(pieces, cur)
	}
	return pieces
}

// cutRunes 在第 n 个 rune 处切开字符串
func cutRunes(s string, n int) (string, string) {
	if n <= 0 {
		n = 1
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
