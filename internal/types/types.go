package types

// EditKind 表示一次修复操作的类型
type EditKind string

const (
	// EditInsert 在 Position 处插入 After
	EditInsert EditKind = "insert"
	// EditReplace 将 Position 处的 Before 替换为 After
	EditReplace EditKind = "replace"
	// EditDelete 删除 Position 处的 Before
	EditDelete EditKind = "delete"
)

// Edit 表示修复过程中对原文的一次修改记录
//
// Position 是相对于原始文本的字节偏移量。Edit 一经产生不可变更，
// 按决策顺序返回，是引擎对外的唯一透明机制。
type Edit struct {
	Kind     EditKind `json:"kind"`
	Position int      `json:"position"`
	Before   string   `json:"before,omitempty"`
	After    string   `json:"after,omitempty"`
	Reason   string   `json:"reason"`
}

// ToDict 将 Edit 转换为 map，便于结构化日志输出
func (e Edit) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"kind":     string(e.Kind),
		"position": e.Position,
		"reason":   e.Reason,
	}
	if e.Before != "" {
		result["before"] = e.Before
	}
	if e.After != "" {
		result["after"] = e.After
	}
	return result
}

// Edit reason tags. Callers branch on these, so they are part of the API.
const (
	ReasonUnclosedFence       = "unclosed_fence"
	ReasonFenceLengthConflict = "fence_length_conflict"
	ReasonLanguageTagAdded    = "language_tag_added"
	ReasonLanguageTagNorm     = "language_tag_normalized"
	ReasonFenceCharNorm       = "fence_char_normalized"
	ReasonUnclosedMath        = "unclosed_math"
	ReasonNewlineBoundary     = "newline_boundary_close"
	ReasonAlignNormalized     = "align_normalized"
)

// RegionKind 表示受保护区域的种类
type RegionKind string

const (
	// RegionFencedCode 围栏代码块
	RegionFencedCode RegionKind = "fenced_code"
	// RegionInlineCode 行内代码
	RegionInlineCode RegionKind = "inline_code"
	// RegionComment LaTeX 注释（% 到行尾）
	RegionComment RegionKind = "comment"
	// RegionVerbatim verbatim/lstlisting/minted 环境及 \verb
	RegionVerbatim RegionKind = "verbatim"
)

// ProtectedRegion 表示数学定界符修复不得触碰的半开区间 [Start, End)
type ProtectedRegion struct {
	Start int        `json:"start"`
	End   int        `json:"end"`
	Kind  RegionKind `json:"kind"`
}

// Contains reports whether the byte offset falls inside the region.
func (r ProtectedRegion) Contains(pos int) bool {
	return r.Start <= pos && pos < r.End
}

// Config 修复与管道配置
type Config struct {
	// DefaultLang 无法推断语言时使用的围栏语言标签，空则不加标签
	DefaultLang string `mapstructure:"default_lang"`
	// CloseOnNewline 为 true 时在段落边界强制闭合未闭合的数学环境
	CloseOnNewline bool `mapstructure:"close_on_newline"`
	// KeepFenceChar 为 false 时将波浪线围栏统一改写为反引号围栏
	KeepFenceChar bool `mapstructure:"keep_fence_char"`
	// ExtractThreshold 代码块超过该行数时在管道中提取为文件
	ExtractThreshold int `mapstructure:"extract_threshold"`
	// MaxMessageLength 单条消息的最大长度（rune 数）
	MaxMessageLength int `mapstructure:"max_message_length"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		DefaultLang:      "",
		CloseOnNewline:   false,
		KeepFenceChar:    true,
		ExtractThreshold: 50,
		MaxMessageLength: 4096,
	}
}
