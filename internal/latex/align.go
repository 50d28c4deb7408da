package latex

import (
	"regexp"
	"strings"

	"github.com/riverfjs/mdmend-go/internal/region"
	"github.com/riverfjs/mdmend-go/internal/types"
)

var beginAlignRe = regexp.MustCompile(`\\begin\{(align\*?|aligned)\}`)

// Align 把 align 族环境规范为可嵌入 $$...$$ 的 aligned 形式，
// 返回对应的替换编辑。已处于显式展示数学包裹中的环境只改名不加 $$，
// 落在保护区间内的环境原样保留。
func Align(text string) []types.Edit {
	regions := region.Compute(text)
	var edits []types.Edit
	searchFrom := 0
	for searchFrom < len(text) {
		loc := beginAlignRe.FindStringSubmatchIndex(text[searchFrom:])
		if loc == nil {
			break
		}
		start := searchFrom + loc[0]
		envName := text[searchFrom+loc[2] : searchFrom+loc[3]]
		contentStart := searchFrom + loc[1]
		endMarker := `\end{` + envName + `}`
		rel := strings.Index(text[contentStart:], endMarker)
		if rel < 0 {
			searchFrom = contentStart
			continue
		}
		end := contentStart + rel + len(endMarker)
		if overlapsRegion(regions, start, end) {
			searchFrom = end
			continue
		}
		span := text[start:end]
		replacement := rewriteAlign(text, start, end, text[contentStart:contentStart+rel])
		if replacement != span {
			edits = append(edits, types.Edit{
				Kind:     types.EditReplace,
				Position: start,
				Before:   span,
				After:    replacement,
				Reason:   types.ReasonAlignNormalized,
			})
		}
		searchFrom = end
	}
	return edits
}

// rewriteAlign 重写单个环境：环境名统一为 aligned，剔除正文里
// 多余的 $$，再视外围上下文决定是否包裹 $$。
func rewriteAlign(text string, start, end int, content string) string {
	content = strings.ReplaceAll(content, "$$", "")
	body := `\begin{aligned}` + strings.TrimSpace(content) + `\end{aligned}`
	if displayWrapped(text, start, end) {
		return body
	}
	return "$$" + body + "$$"
}

// displayWrapped 检查环境紧邻的非空白上下文是否已是 $$ 或 \[ \] 包裹
func displayWrapped(text string, start, end int) bool {
	i := start
	for i > 0 && isSpaceByte(text[i-1]) {
		i--
	}
	before := text[:i]
	prefixOK := strings.HasSuffix(before, "$$") || strings.HasSuffix(before, `\[`)

	j := end
	for j < len(text) && isSpaceByte(text[j]) {
		j++
	}
	after := text[j:]
	suffixOK := strings.HasPrefix(after, "$$") || strings.HasPrefix(after, `\]`)

	return prefixOK && suffixOK
}

func overlapsRegion(regions []types.ProtectedRegion, start, end int) bool {
	for _, r := range regions {
		if r.Start >= end {
			return false
		}
		if r.End > start {
			return true
		}
	}
	return false
}
