package diff

import (
	"strings"
	"testing"
)

// TestLines_NoChange 测试相同文本返回 nil
func TestLines_NoChange(t *testing.T) {
	if lines := Lines("a\nb\n", "a\nb\n"); lines != nil {
		t.Errorf("Lines() = %v, want nil for identical input", lines)
	}
}

// TestLines_ReplacedLine 测试单行替换的差异形态
func TestLines_ReplacedLine(t *testing.T) {
	before := "alpha\nbeta\ngamma\n"
	after := "alpha\nBETA\ngamma\n"
	lines := Lines(before, after)
	if len(lines) != 4 {
		t.Fatalf("Lines() returned %d lines, want 4", len(lines))
	}
	want := []struct {
		typ     LineType
		text    string
		oldLine int
		newLine int
	}{
		{LineContext, "alpha", 1, 1},
		{LineRemoved, "beta", 2, 0},
		{LineAdded, "BETA", 0, 2},
		{LineContext, "gamma", 3, 3},
	}
	for i, w := range want {
		l := lines[i]
		if l.Type != w.typ || l.Text != w.text {
			t.Errorf("line %d = %s %q, want %s %q", i, l.Type, l.Text, w.typ, w.text)
		}
		if l.OldLine != w.oldLine || l.NewLine != w.newLine {
			t.Errorf("line %d numbers = %d/%d, want %d/%d", i, l.OldLine, l.NewLine, w.oldLine, w.newLine)
		}
	}
}

// TestLines_AddedAndRemoved 测试纯增删
func TestLines_AddedAndRemoved(t *testing.T) {
	added := Lines("a\n", "a\nb\n")
	if len(added) != 2 || added[1].Type != LineAdded || added[1].Text != "b" || added[1].NewLine != 2 {
		t.Errorf("added diff = %+v, want context then added \"b\" at new line 2", added)
	}
	removed := Lines("a\nb\n", "a\n")
	if len(removed) != 2 || removed[1].Type != LineRemoved || removed[1].Text != "b" || removed[1].OldLine != 2 {
		t.Errorf("removed diff = %+v, want context then removed \"b\" at old line 2", removed)
	}
}

// TestLinesWithLimit 测试行数截断
func TestLinesWithLimit(t *testing.T) {
	var beforeB, afterB strings.Builder
	for i := 0; i < 50; i++ {
		beforeB.WriteString("old line\n")
		afterB.WriteString("new line\n")
	}
	lines := LinesWithLimit(beforeB.String(), afterB.String(), 10)
	if len(lines) != 10 {
		t.Errorf("LinesWithLimit() returned %d lines, want 10", len(lines))
	}
}

// TestFormat 测试差异的文本渲染
func TestFormat(t *testing.T) {
	lines := []Line{
		{Type: LineContext, Text: "alpha"},
		{Type: LineRemoved, Text: "beta"},
		{Type: LineAdded, Text: "BETA"},
		{Type: LineContext, Text: "gamma"},
	}
	got := Format(lines)
	want := " alpha\n-beta\n+BETA\n gamma"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

// TestFormat_Empty 测试空差异渲染为空串
func TestFormat_Empty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
