package edit

import (
	"sort"

	"github.com/riverfjs/mdmend-go/internal/buffer"
	"github.com/riverfjs/mdmend-go/internal/types"
)

// Apply 将一组 Edit 应用到原文并返回修复后的文本
//
// edits 的 Position 均为 text 中的字节偏移，必须按偏移升序排列
// （同一偏移处按记录顺序应用）。引擎产生的编辑天然满足该约束。
func Apply(text string, edits []types.Edit) string {
	if len(edits) == 0 {
		return text
	}
	out := buffer.New()
	cursor := 0
	for _, e := range edits {
		if e.Position < cursor || e.Position > len(text) {
			// The engines never produce overlapping or out-of-range edits.
			continue
		}
		out.Write(text[cursor:e.Position])
		cursor = e.Position
		switch e.Kind {
		case types.EditInsert:
			out.Write(e.After)
		case types.EditReplace:
			out.Write(e.After)
			cursor += len(e.Before)
		case types.EditDelete:
			cursor += len(e.Before)
		}
	}
	if cursor < len(text) {
		out.Write(text[cursor:])
	}
	return out.String()
}

// SortByPosition 按 Position 稳定排序
func SortByPosition(edits []types.Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Position < edits[j].Position
	})
}

// MapToInput 将"应用 edits 之后的文本"中的字节偏移映射回应用前的偏移
//
// 落在未修改区段内的偏移精确映射；落在被编辑区段内的偏移映射到该
// 编辑的起始位置（尽力而为）。edits 须与 Apply 的入参相同且有序。
func MapToInput(outputPos int, edits []types.Edit) int {
	inCursor := 0
	outCursor := 0
	for _, e := range edits {
		if e.Position < inCursor {
			continue
		}
		span := e.Position - inCursor
		if outputPos < outCursor+span {
			return inCursor + (outputPos - outCursor)
		}
		outCursor += span
		inCursor = e.Position
		var produced, consumed int
		switch e.Kind {
		case types.EditInsert:
			produced = len(e.After)
		case types.EditReplace:
			produced = len(e.After)
			consumed = len(e.Before)
		case types.EditDelete:
			consumed = len(e.Before)
		}
		if outputPos < outCursor+produced {
			return e.Position
		}
		outCursor += produced
		inCursor += consumed
	}
	return inCursor + (outputPos - outCursor)
}

// Remap 将 later 中以"earlier 输出文本"为坐标的编辑改写为以
// "earlier 输入文本"为坐标，用于合并两阶段的编辑日志。
func Remap(later []types.Edit, earlier []types.Edit) []types.Edit {
	if len(earlier) == 0 || len(later) == 0 {
		return later
	}
	remapped := make([]types.Edit, len(later))
	for i, e := range later {
		e.Position = MapToInput(e.Position, earlier)
		remapped[i] = e
	}
	return remapped
}
