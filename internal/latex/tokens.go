package latex

// frameKind 标识四类数学定界符，$ 与 $$ 是不同种类，互不闭合
type frameKind int

const (
	kindInline  frameKind = iota // $
	kindDisplay                  // $$
	kindParen                    // \(
	kindBracket                  // \[
)

// closer 返回该种类定界符对应的闭合标记
func (k frameKind) closer() string {
	switch k {
	case kindInline:
		return "$"
	case kindDisplay:
		return "$$"
	case kindParen:
		return `\)`
	default:
		return `\]`
	}
}

// frame 记录一个尚未闭合的定界符及其在原文中的位置
type frame struct {
	kind frameKind
	pos  int
}

func peek(stack []frame) (frameKind, bool) {
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1].kind, true
}

// closers 按后开先闭的顺序拼出整个栈的闭合标记
func closers(stack []frame) string {
	out := ""
	for i := len(stack) - 1; i >= 0; i-- {
		out += stack[i].kind.closer()
	}
	return out
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// escapedAt 判断 pos 处的字符前是否有奇数个反斜杠
func escapedAt(text string, pos int) bool {
	n := 0
	for j := pos - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// paragraphBoundary 判断 pos 处的换行符是否构成段落边界：
// 其后是空白行，或已无更多内容。
func paragraphBoundary(text string, pos int) bool {
	j := pos + 1
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	return j >= len(text) || text[j] == '\n'
}
