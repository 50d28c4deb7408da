package region

import (
	"testing"

	"github.com/riverfjs/mdmend-go/internal/types"
)

// TestCompute_FencedBlock 测试围栏代码块整块受保护
func TestCompute_FencedBlock(t *testing.T) {
	text := "a\n```\n$x\n```\nb\n"
	regions := Compute(text)
	if len(regions) != 1 {
		t.Fatalf("Compute() returned %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.Start != 2 || r.End != 13 {
		t.Errorf("region = [%d, %d), want [2, 13)", r.Start, r.End)
	}
	if r.Kind != types.RegionFencedCode {
		t.Errorf("region kind = %s, want %s", r.Kind, types.RegionFencedCode)
	}
	if !r.Contains(6) || r.Contains(13) {
		t.Error("Contains() should cover the $ inside and exclude the end offset")
	}
}

// TestCompute_InlineCode 测试行内代码识别
func TestCompute_InlineCode(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart int
		wantEnd   int
	}{
		{"single backtick", "use `$HOME` here", 4, 11},
		{"double backtick", "a ``x`y`` b", 2, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Compute(tt.text)
			if len(regions) != 1 {
				t.Fatalf("Compute() returned %d regions, want 1", len(regions))
			}
			r := regions[0]
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("region = [%d, %d), want [%d, %d)", r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
			if r.Kind != types.RegionInlineCode {
				t.Errorf("region kind = %s, want %s", r.Kind, types.RegionInlineCode)
			}
		})
	}
}

// TestCompute_InlineCodeNotAcrossLines 测试行内代码不跨行
func TestCompute_InlineCodeNotAcrossLines(t *testing.T) {
	if regions := Compute("a `x\nb` c"); len(regions) != 0 {
		t.Errorf("Compute() returned %d regions, want 0 for unclosed inline span", len(regions))
	}
}

// TestCompute_Comment 测试 % 注释保护到行尾
func TestCompute_Comment(t *testing.T) {
	text := "text % note\nnext"
	regions := Compute(text)
	if len(regions) != 1 {
		t.Fatalf("Compute() returned %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.Start != 5 || r.End != 11 || r.Kind != types.RegionComment {
		t.Errorf("region = [%d, %d) kind %s, want [5, 11) %s", r.Start, r.End, r.Kind, types.RegionComment)
	}
}

// TestCompute_EscapedPercent 测试转义的 \% 不构成注释
func TestCompute_EscapedPercent(t *testing.T) {
	if regions := Compute("50\\% off today"); len(regions) != 0 {
		t.Errorf("Compute() returned %d regions, want 0 for escaped percent", len(regions))
	}
}

// TestCompute_Verbatim 测试 verbatim 族环境保护，含星号变体
func TestCompute_Verbatim(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart int
		wantEnd   int
	}{
		{"verbatim", "\\begin{verbatim}\n$x\n\\end{verbatim}\ntail", 0, 34},
		{"starred verbatim", "\\begin{verbatim*}\ncost $x here\n\\end{verbatim*}\ntail", 0, 46},
		{"starred lstlisting", "\\begin{lstlisting*}\n$a\n\\end{lstlisting*}\ntail", 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Compute(tt.text)
			if len(regions) != 1 {
				t.Fatalf("Compute() returned %d regions, want 1", len(regions))
			}
			r := regions[0]
			if r.Start != tt.wantStart || r.End != tt.wantEnd || r.Kind != types.RegionVerbatim {
				t.Errorf("region = [%d, %d) kind %s, want [%d, %d) %s",
					r.Start, r.End, r.Kind, tt.wantStart, tt.wantEnd, types.RegionVerbatim)
			}
		})
	}
}

// TestCompute_VerbatimUnclosed 测试缺失 \end 时保护到文末
func TestCompute_VerbatimUnclosed(t *testing.T) {
	text := "\\begin{lstlisting}\ncode"
	regions := Compute(text)
	if len(regions) != 1 {
		t.Fatalf("Compute() returned %d regions, want 1", len(regions))
	}
	if regions[0].End != len(text) {
		t.Errorf("region end = %d, want %d (end of text)", regions[0].End, len(text))
	}
}

// TestCompute_Verb 测试 \verb 内联原文保护
func TestCompute_Verb(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantStart int
		wantEnd   int
	}{
		{"pipe delimiter", "see \\verb|$x| end", 1, 4, 13},
		{"starred with bang", "\\verb*!a!", 1, 0, 9},
		{"letter delimiter rejected", "\\verbose word", 0, 0, 0},
		{"digit delimiter rejected", "\\verb5x5 word", 0, 0, 0},
		{"space delimiter rejected", "\\verb  x  word", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Compute(tt.text)
			if len(regions) != tt.wantCount {
				t.Fatalf("Compute() returned %d regions, want %d", len(regions), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			r := regions[0]
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("region = [%d, %d), want [%d, %d)", r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

// TestCompute_MergeOverlap 测试重叠区间并入先出现的区间
func TestCompute_MergeOverlap(t *testing.T) {
	text := "```\na `b` % c\n```\n"
	regions := Compute(text)
	if len(regions) != 1 {
		t.Fatalf("Compute() returned %d regions, want 1 merged region", len(regions))
	}
	r := regions[0]
	if r.Start != 0 || r.End != 18 {
		t.Errorf("merged region = [%d, %d), want [0, 18)", r.Start, r.End)
	}
	if r.Kind != types.RegionFencedCode {
		t.Errorf("merged region kind = %s, want %s (first region wins)", r.Kind, types.RegionFencedCode)
	}
}

// TestCompute_SortedDisjoint 测试结果有序且互不重叠
func TestCompute_SortedDisjoint(t *testing.T) {
	text := "`a` text % note\n```\ncode\n```\n\\verb|x|\n"
	regions := Compute(text)
	if len(regions) < 3 {
		t.Fatalf("Compute() returned %d regions, want at least 3", len(regions))
	}
	for i := 1; i < len(regions); i++ {
		if regions[i].Start < regions[i-1].End {
			t.Errorf("regions %d and %d overlap: [%d,%d) then [%d,%d)",
				i-1, i, regions[i-1].Start, regions[i-1].End, regions[i].Start, regions[i].End)
		}
	}
}
