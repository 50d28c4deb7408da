package parser

import (
	"strings"
	"testing"
)

// TestCodeSegments 测试围栏代码块的提取与定位
func TestCodeSegments(t *testing.T) {
	markdown := "# Title\n\n```go\na := 1\nb := 2\n```\n\ntail text\n"
	segs := CodeSegments(markdown)
	if len(segs) != 1 {
		t.Fatalf("CodeSegments() returned %d segments, want 1", len(segs))
	}
	seg := segs[0]
	if seg.Start != 9 || seg.End != 33 {
		t.Errorf("segment span = [%d, %d), want [9, 33)", seg.Start, seg.End)
	}
	if seg.Language != "go" {
		t.Errorf("segment language = %q, want \"go\"", seg.Language)
	}
	if seg.Code != "a := 1\nb := 2" {
		t.Errorf("segment code = %q, want \"a := 1\\nb := 2\"", seg.Code)
	}
	span := markdown[seg.Start:seg.End]
	if !strings.HasPrefix(span, "```go\n") || !strings.HasSuffix(span, "```\n") {
		t.Errorf("segment span should cover both fence lines, got %q", span)
	}
}

// TestCodeSegments_Multiple 测试多个代码块按出现顺序返回
func TestCodeSegments_Multiple(t *testing.T) {
	markdown := "```python\nx = 1\n```\n\nmiddle\n\n```\nplain\n```\n"
	segs := CodeSegments(markdown)
	if len(segs) != 2 {
		t.Fatalf("CodeSegments() returned %d segments, want 2", len(segs))
	}
	if segs[0].Language != "python" || segs[0].Code != "x = 1" {
		t.Errorf("first segment = %q/%q, want python/\"x = 1\"", segs[0].Language, segs[0].Code)
	}
	if segs[1].Language != "" || segs[1].Code != "plain" {
		t.Errorf("second segment = %q/%q, want \"\"/\"plain\"", segs[1].Language, segs[1].Code)
	}
	if segs[0].End > segs[1].Start {
		t.Errorf("segments out of order: first ends %d, second starts %d", segs[0].End, segs[1].Start)
	}
}

// TestCodeSegments_EmptyBlockSkipped 测试空代码块被跳过
func TestCodeSegments_EmptyBlockSkipped(t *testing.T) {
	if segs := CodeSegments("```go\n```\n"); len(segs) != 0 {
		t.Errorf("CodeSegments() returned %d segments, want 0 for empty block", len(segs))
	}
}

// TestCodeSegments_Unclosed 测试未闭合块延伸到文末
func TestCodeSegments_Unclosed(t *testing.T) {
	markdown := "before\n\n```py\nx = 1\n"
	segs := CodeSegments(markdown)
	if len(segs) != 1 {
		t.Fatalf("CodeSegments() returned %d segments, want 1", len(segs))
	}
	seg := segs[0]
	if seg.Start != 8 || seg.End != len(markdown) {
		t.Errorf("segment span = [%d, %d), want [8, %d)", seg.Start, seg.End, len(markdown))
	}
	if seg.Language != "py" || seg.Code != "x = 1" {
		t.Errorf("segment = %q/%q, want py/\"x = 1\"", seg.Language, seg.Code)
	}
}

// TestBlockSpans 测试顶层块区间连续覆盖全文
func TestBlockSpans(t *testing.T) {
	markdown := "para one\n\n```\ncode\n```\n\npara two\n"
	spans := BlockSpans(markdown)
	if len(spans) != 3 {
		t.Fatalf("BlockSpans() returned %d spans, want 3", len(spans))
	}
	if spans[0].Start != 0 {
		t.Errorf("first span starts at %d, want 0", spans[0].Start)
	}
	if spans[len(spans)-1].End != len(markdown) {
		t.Errorf("last span ends at %d, want %d", spans[len(spans)-1].End, len(markdown))
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start != spans[i-1].End {
			t.Errorf("spans %d and %d not contiguous: %d vs %d", i-1, i, spans[i-1].End, spans[i].Start)
		}
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(markdown[s.Start:s.End])
	}
	if b.String() != markdown {
		t.Error("concatenated spans do not reproduce the source")
	}
	// 围栏块整体落在第二个区间内
	if got := markdown[spans[1].Start:spans[1].End]; !strings.Contains(got, "```\ncode\n```\n") {
		t.Errorf("fenced block split across spans: %q", got)
	}
}

// TestBlockSpans_Degenerate 测试空文本与单段文本
func TestBlockSpans_Degenerate(t *testing.T) {
	if spans := BlockSpans(""); spans != nil {
		t.Errorf("BlockSpans(\"\") = %v, want nil", spans)
	}
	spans := BlockSpans("hello")
	if len(spans) != 1 || spans[0].Start != 0 || spans[0].End != 5 {
		t.Errorf("BlockSpans(\"hello\") = %v, want single [0, 5) span", spans)
	}
}

// TestParse 测试 AST 解析入口
func TestParse(t *testing.T) {
	doc := Parse("# heading\n\nbody\n")
	if doc == nil {
		t.Fatal("Parse() returned nil")
	}
	if doc.ChildCount() != 2 {
		t.Errorf("document has %d children, want 2", doc.ChildCount())
	}
}
