// Package latex 实现 LaTeX 数学定界符的校验与修复。
//
// 扫描器从左到右逐字节推进，整体跳过保护区间，用显式栈跟踪四类
// 定界符的嵌套状态；修复决策以编辑记录返回，由调用方统一应用。
package latex

import (
	"github.com/riverfjs/mdmend-go/internal/region"
	"github.com/riverfjs/mdmend-go/internal/types"
)

// Fix 扫描文本并返回让所有数学定界符配对所需的编辑记录。
//
// 参数:
//   - text: 待修复的原始文本
//   - closeOnNewline: 为 true 时在段落边界强制闭合所有未配对定界符，
//     避免数学区间吞掉后续无关的散文
//
// 返回:
//   - []types.Edit: 按决策顺序排列的编辑记录，Position 为原文字节偏移
//
// 不匹配的闭合标记原样保留，既不弹栈也不产生编辑。扫描结束仍未闭合
// 的定界符按后开先闭的顺序在文末补齐。
func Fix(text string, closeOnNewline bool) []types.Edit {
	regions := region.Compute(text)
	var edits []types.Edit
	var stack []frame
	ri := 0
	i := 0
	for i < len(text) {
		for ri < len(regions) && regions[ri].End <= i {
			ri++
		}
		if ri < len(regions) && i >= regions[ri].Start {
			i = regions[ri].End
			continue
		}
		c := text[i]

		if closeOnNewline && c == '\n' && len(stack) > 0 && paragraphBoundary(text, i) {
			edits = append(edits, types.Edit{
				Kind:     types.EditReplace,
				Position: i,
				Before:   "\n",
				After:    closers(stack) + "\n",
				Reason:   types.ReasonNewlineBoundary,
			})
			stack = stack[:0]
			i++
			continue
		}

		if c == '\\' {
			if i+1 >= len(text) {
				break
			}
			switch text[i+1] {
			case '(':
				stack = append(stack, frame{kindParen, i})
			case '[':
				stack = append(stack, frame{kindBracket, i})
			case ')':
				if top, ok := peek(stack); ok && top == kindParen {
					stack = stack[:len(stack)-1]
				}
			case ']':
				if top, ok := peek(stack); ok && top == kindBracket {
					stack = stack[:len(stack)-1]
				}
			}
			// Consuming the escaped pair keeps backslash parity implicit:
			// \$ never reaches the dollar branch below.
			i += 2
			continue
		}

		if c == '$' {
			if i+1 < len(text) && text[i+1] == '$' {
				if top, ok := peek(stack); ok && top == kindDisplay {
					stack = stack[:len(stack)-1]
				} else {
					stack = append(stack, frame{kindDisplay, i})
				}
				i += 2
				continue
			}
			if top, ok := peek(stack); ok && top == kindInline {
				stack = stack[:len(stack)-1]
				i++
				continue
			}
			if looksLikeCurrency(text, i) {
				i++
				continue
			}
			stack = append(stack, frame{kindInline, i})
			i++
			continue
		}

		i++
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		edits = append(edits, types.Edit{
			Kind:     types.EditInsert,
			Position: len(text),
			After:    top.kind.closer(),
			Reason:   types.ReasonUnclosedMath,
		})
	}
	return edits
}

// looksLikeCurrency 判断一个可能开启行内数学的 $ 是否更像货币符号：
// 紧跟数字，且在下一个空白行或"句末标点+空白"之前找不到未转义的
// 配对 $。该启发式偏向把数字旁的孤立 $ 当作货币处理。
func looksLikeCurrency(text string, pos int) bool {
	if pos+1 >= len(text) || !isDigit(text[pos+1]) {
		return false
	}
	for j := pos + 1; j < len(text); j++ {
		c := text[j]
		if c == '$' && !escapedAt(text, j) {
			return false
		}
		if (c == '.' || c == '!' || c == '?') && j+1 < len(text) && isSpaceByte(text[j+1]) {
			return true
		}
		if c == '\n' && (j+1 >= len(text) || text[j+1] == '\n') {
			return true
		}
	}
	return true
}
