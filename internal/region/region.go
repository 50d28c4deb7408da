// Package region 负责计算文本中禁止数学修复触碰的保护区间，
// 包括围栏代码块、行内代码、LaTeX 注释与 verbatim 环境。
package region

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riverfjs/mdmend-go/internal/fence"
	"github.com/riverfjs/mdmend-go/internal/types"
)

var beginEnvRe = regexp.MustCompile(`\\begin\{((?:verbatim|lstlisting|minted)\*?)\}`)

// Compute 扫描全文并返回排好序、互不重叠的保护区间列表。
// 各扫描器独立产生区间，最后统一合并，重叠部分并入先出现的区间。
func Compute(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	regions = append(regions, fencedRegions(text)...)
	regions = append(regions, inlineCodeRegions(text)...)
	regions = append(regions, commentRegions(text)...)
	regions = append(regions, verbatimRegions(text)...)
	regions = append(regions, verbRegions(text)...)
	return merge(regions)
}

// fencedRegions 复用围栏扫描器，未闭合的块保护到小节边界或文末。
func fencedRegions(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	for _, b := range fence.ScanBlocks(text) {
		regions = append(regions, types.ProtectedRegion{
			Start: b.StartPos,
			End:   b.EndPos,
			Kind:  types.RegionFencedCode,
		})
	}
	return regions
}

// inlineCodeRegions 识别单反引号与双反引号的行内代码段。
// 行内代码不得跨行，三个及以上的反引号按围栏处理，不在此列。
func inlineCodeRegions(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	for i := 0; i < len(text); {
		if text[i] != '`' {
			i++
			continue
		}
		runLen := 1
		for i+runLen < len(text) && text[i+runLen] == '`' {
			runLen++
		}
		if runLen > 2 {
			i += runLen
			continue
		}
		closer := strings.Repeat("`", runLen)
		end := -1
		for j := i + runLen; j+runLen <= len(text); j++ {
			if text[j] == '\n' {
				break
			}
			if text[j:j+runLen] == closer {
				end = j + runLen
				break
			}
		}
		if end < 0 {
			i += runLen
			continue
		}
		regions = append(regions, types.ProtectedRegion{Start: i, End: end, Kind: types.RegionInlineCode})
		i = end
	}
	return regions
}

// commentRegions 识别未被转义的 % 注释，保护到行尾（不含换行符）。
func commentRegions(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	for i := 0; i < len(text); i++ {
		if text[i] != '%' || escapedAt(text, i) {
			continue
		}
		end := strings.IndexByte(text[i:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += i
		}
		regions = append(regions, types.ProtectedRegion{Start: i, End: end, Kind: types.RegionComment})
		i = end
	}
	return regions
}

// verbatimRegions 保护 verbatim 族环境（含星号变体）；缺失 \end 时保护到文末。
func verbatimRegions(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	for _, m := range beginEnvRe.FindAllStringSubmatchIndex(text, -1) {
		start := m[0]
		name := text[m[2]:m[3]]
		endMarker := `\end{` + name + `}`
		end := len(text)
		if idx := strings.Index(text[m[1]:], endMarker); idx >= 0 {
			end = m[1] + idx + len(endMarker)
		}
		regions = append(regions, types.ProtectedRegion{Start: start, End: end, Kind: types.RegionVerbatim})
	}
	return regions
}

// verbRegions 保护 \verb<分隔符>...<分隔符> 形式的内联原文。
// 分隔符不能是字母、数字或空白。
func verbRegions(text string) []types.ProtectedRegion {
	var regions []types.ProtectedRegion
	for i := 0; i+5 <= len(text); i++ {
		if text[i] != '\\' || escapedAt(text, i) || !strings.HasPrefix(text[i:], `\verb`) {
			continue
		}
		p := i + len(`\verb`)
		if p < len(text) && text[p] == '*' {
			p++
		}
		if p >= len(text) {
			break
		}
		delim := text[p]
		if isLetter(delim) || isDigit(delim) || isSpace(delim) {
			continue
		}
		end := p + 1
		for end < len(text) && text[end] != delim && text[end] != '\n' {
			end++
		}
		if end < len(text) && text[end] == delim {
			end++
		}
		regions = append(regions, types.ProtectedRegion{Start: i, End: end, Kind: types.RegionVerbatim})
		i = end - 1
	}
	return regions
}

// escapedAt reports whether the byte at pos sits behind an odd number of
// backslashes.
func escapedAt(text string, pos int) bool {
	n := 0
	for j := pos - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// merge 按起点排序并合并重叠区间，保留先出现区间的类型。
func merge(regions []types.ProtectedRegion) []types.ProtectedRegion {
	if len(regions) == 0 {
		return nil
	}
	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Start != regions[j].Start {
			return regions[i].Start < regions[j].Start
		}
		return regions[i].End > regions[j].End
	})
	out := regions[:1]
	for _, r := range regions[1:] {
		last := &out[len(out)-1]
		if r.Start < last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
