package mdmend

import (
	"github.com/riverfjs/mdmend-go/internal/edit"
	"github.com/riverfjs/mdmend-go/internal/fence"
	"github.com/riverfjs/mdmend-go/internal/latex"
)

// Mend 一步完成围栏修复与数学定界符修复
//
// 参数:
//   - text: 原始文本
//   - opts: 可选配置，默认取 DefaultConfig 的对应字段
//
// 返回:
//   - string: 修复后的文本
//   - []Edit: 合并后按位置排序的编辑记录，Position 为原文字节偏移
func Mend(text string, opts ...Option) (string, []Edit) {
	fixed, report := MendWithReport(text, opts...)
	return fixed, report.Edits
}

// MendWithReport 同 Mend，额外返回诊断报告
//
// 参数:
//   - text: 原始文本
//   - opts: 可选配置
//
// 返回:
//   - string: 修复后的文本
//   - *Report: 本次修复的问题列表、编辑记录与统计信息
//
// 围栏先于数学修复，数学阶段依赖正确的围栏区间来保护代码内容。
func MendWithReport(text string, opts ...Option) (string, *Report) {
	options := applyOptions(opts...)

	_, issues := fence.Validate(text)

	fenceEdits := fence.Ensure(text, options.DefaultLang, options.KeepFenceChar)
	afterFences := edit.Apply(text, fenceEdits)

	delimEdits := latex.Fix(afterFences, options.CloseOnNewline)
	afterDelims := edit.Apply(afterFences, delimEdits)

	alignEdits := latex.Align(afterDelims)
	out := edit.Apply(afterDelims, alignEdits)

	// 后两个阶段的编辑位置逐级折算回原文坐标
	latexEdits := append([]Edit{}, delimEdits...)
	latexEdits = append(latexEdits, edit.Remap(alignEdits, delimEdits)...)

	combined := append([]Edit{}, fenceEdits...)
	combined = append(combined, edit.Remap(latexEdits, fenceEdits)...)
	edit.SortByPosition(combined)

	if ok, postIssues := fence.Validate(afterFences); !ok {
		Logger.Printf("code fences still invalid after fix: %v", postIssues)
	}

	return out, newReport(text, out, issues, combined)
}
