// Package mdmend 修复 LLM 输出里残缺的 Markdown 代码围栏与 LaTeX 数学定界符
//
// 这个包面向聊天渲染场景：上游模型吐出的文本经常带着没闭合的 ``` 围栏、
// 缺失的语言标签、不配对的 $ / $$ / \( \) / \[ \] 定界符。直接交给渲染器
// 会把后续内容整段吞进代码块或数学环境里。mdmend 在展示前做结构修补，
// 只配平标记，不理解代码或公式本身。
//
// 核心功能：
//   - 校验并补全未闭合的代码围栏，解决围栏长度冲突
//   - 为缺失语言标签的代码块推断标签
//   - 配平四类数学定界符，嵌套按栈式后开先闭处理
//   - 规范 align 族环境为 $$ 包裹的 aligned
//   - 拆分长消息、提取超长代码块为文件
//
// 主要 API：
//   - Mend(): 一步完成围栏与数学修复，返回 (文本, 编辑记录)
//   - MendWithReport(): 同 Mend，额外返回诊断报告
//   - ProcessMessage(): 完整管道，返回可发送的内容列表
//
// 示例：
//
//	fixed, edits := mdmend.Mend(raw, mdmend.WithDefaultLang("python"))
//	for _, e := range edits {
//	    log.Printf("%s at %d", e.Reason, e.Position)
//	}
//
//	contents, err := mdmend.ProcessMessage(raw, 4096, nil)
//	for _, content := range contents {
//	    switch c := content.(type) {
//	    case *mdmend.Text:
//	        // 发送文本消息
//	    case *mdmend.CodeFile:
//	        // 发送文件
//	    }
//	}
package mdmend

import (
	"github.com/riverfjs/mdmend-go/internal/edit"
	"github.com/riverfjs/mdmend-go/internal/fence"
	"github.com/riverfjs/mdmend-go/internal/guess"
	"github.com/riverfjs/mdmend-go/internal/latex"
)

// ValidateCodeFences 校验代码围栏结构
//
// 参数:
//   - text: 待校验的文本
//
// 返回:
//   - bool: 结构是否有效
//   - []string: 按发现顺序排列的问题描述，有效时为空
//
// 校验不修改文本。未闭合的围栏报 "Unclosed code fence started on line N"，
// 围栏内出现的标题行报 "Heading inside open code fence on line N"。
func ValidateCodeFences(text string) (bool, []string) {
	return fence.Validate(text)
}

// FixCodeFences 修复未闭合的代码围栏与围栏长度冲突
//
// 参数:
//   - text: 待修复的文本
//
// 返回:
//   - string: 修复后的文本
//   - []Edit: 编辑记录，Position 为原文字节偏移；文本本就有效时为 nil
//
// 未闭合的块在小节边界或文末补上闭栏；内容里含有同字符长串时加长
// 围栏避免歧义。围栏只加长，不缩短。
func FixCodeFences(text string) (string, []Edit) {
	edits := fence.Fix(text, DefaultConfig().KeepFenceChar)
	return edit.Apply(text, edits), edits
}

// EnsureFencedCode 在 FixCodeFences 之上补充语言标签
//
// 参数:
//   - text: 待修复的文本
//   - defaultLang: 推断失败时使用的语言标签，空则不加
//
// 返回:
//   - string: 修复后的文本
//   - []Edit: 编辑记录
//
// 内容非空的无标签块先经启发式推断，失败回落 defaultLang；已有标签
// 归一为惯用小写形式。修复后仍不合法时仅记录日志，不返回错误。
func EnsureFencedCode(text string, defaultLang string) (string, []Edit) {
	edits := fence.Ensure(text, defaultLang, DefaultConfig().KeepFenceChar)
	fixed := edit.Apply(text, edits)
	if ok, issues := fence.Validate(fixed); !ok {
		Logger.Printf("code fences still invalid after fix: %v", issues)
	}
	return fixed, edits
}

// GuessLang 根据代码内容推断语言标签，无法判断时返回空串。
func GuessLang(code string) string {
	return guess.Guess(code, "")
}

// FixLatexDelimiters 配平 LaTeX 数学定界符并规范 align 族环境
//
// 参数:
//   - text: 待修复的文本
//   - closeOnNewline: 为 true 时未闭合的定界符在段落边界强制闭合，
//     而不是等到文末
//
// 返回:
//   - string: 修复后的文本
//   - []Edit: 合并后按位置排序的编辑记录，Position 为原文字节偏移
//
// 代码块、行内代码、注释与 verbatim 环境内的内容不会被触碰。
func FixLatexDelimiters(text string, closeOnNewline bool) (string, []Edit) {
	delimEdits := latex.Fix(text, closeOnNewline)
	mended := edit.Apply(text, delimEdits)

	alignEdits := latex.Align(mended)
	out := edit.Apply(mended, alignEdits)

	combined := append([]Edit{}, delimEdits...)
	combined = append(combined, edit.Remap(alignEdits, delimEdits)...)
	edit.SortByPosition(combined)
	return out, combined
}

// FixAlignEnvironments 把 align/align* 环境规范为 $$ 包裹的 aligned 形式。
// 独立于定界符修复，可单独调用。
func FixAlignEnvironments(text string) string {
	return edit.Apply(text, latex.Align(text))
}
