// Package parser 基于 goldmark 把 Markdown 解析为 AST，并从中提取
// 围栏代码块区间与顶层块级大纲，供流水线做长代码抽取与安全切分。
package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

// Segment 记录源文本中一个围栏代码块的位置与内容
type Segment struct {
	Start    int    // 字节起始（含开栏行）
	End      int    // 字节结束（含闭栏行及其换行）
	Language string // 围栏上的语言标签，可为空
	Code     string // 代码正文，不含围栏线，已去掉末尾换行
}

// Span 半开字节区间 [Start, End)
type Span struct {
	Start int
	End   int
}

// Parse 解析 Markdown 为 AST
func Parse(markdown string) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader([]byte(markdown)))
}

// CodeSegments 遍历 AST 收集所有围栏代码块。内容为空的块无法从
// AST 定位围栏行，直接跳过。
func CodeSegments(markdown string) []Segment {
	source := []byte(markdown)
	doc := Parse(markdown)
	var segs []Segment
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if seg, located := codeSegment(source, fcb); located {
			segs = append(segs, seg)
		}
		return ast.WalkSkipChildren, nil
	})
	return segs
}

func codeSegment(source []byte, fcb *ast.FencedCodeBlock) (Segment, bool) {
	lines := fcb.Lines()
	if lines.Len() == 0 {
		return Segment{}, false
	}
	contentStart := lines.At(0).Start
	contentEnd := lines.At(lines.Len() - 1).Stop

	start := lineStart(source, contentStart-1)
	end := contentEnd
	if end < len(source) {
		// 闭栏行跟在最后一个内容行之后
		if nl := bytes.IndexByte(source[end:], '\n'); nl >= 0 {
			end += nl + 1
		} else {
			end = len(source)
		}
	}

	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return Segment{
		Start:    start,
		End:      end,
		Language: string(fcb.Language(source)),
		Code:     strings.TrimSuffix(b.String(), "\n"),
	}, true
}

// BlockSpans 返回覆盖全文的顶层块区间。相邻块之间的空行并入前一个
// 区间，围栏代码块整块落在单个区间内，切分器以区间为不可分割单元。
func BlockSpans(markdown string) []Span {
	source := []byte(markdown)
	doc := Parse(markdown)
	var starts []int
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := nodeStart(source, c); ok {
			starts = append(starts, off)
		}
	}
	if len(starts) == 0 {
		if len(source) == 0 {
			return nil
		}
		return []Span{{Start: 0, End: len(source)}}
	}
	starts[0] = 0
	spans := make([]Span, 0, len(starts))
	for i, s := range starts {
		end := len(source)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end > s {
			spans = append(spans, Span{Start: s, End: end})
		}
	}
	return spans
}

// nodeStart 求节点首行的行首偏移；容器节点向下找第一个可定位的子节点
func nodeStart(source []byte, n ast.Node) (int, bool) {
	if fcb, ok := n.(*ast.FencedCodeBlock); ok {
		if fcb.Lines().Len() > 0 {
			return lineStart(source, fcb.Lines().At(0).Start-1), true
		}
		if fcb.Info != nil {
			return lineStart(source, fcb.Info.Segment.Start), true
		}
		return 0, false
	}
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		return lineStart(source, lines.At(0).Start), true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := nodeStart(source, c); ok {
			return off, true
		}
	}
	return 0, false
}

func lineStart(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	if pos <= 0 {
		return 0
	}
	if idx := bytes.LastIndexByte(source[:pos], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}
