package mdmend

import "unicode/utf8"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Chat APIs commonly measure entity offsets in UTF-16 code units rather
// than bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// OffsetTable 预计算一段文本的字节、rune 与 UTF-16 偏移对应关系
//
// 编辑记录的 Position 是字节偏移；按 rune 或 UTF-16 计数的调用方
// 用 OffsetTable 做换算。表在构造时一次建好，之后只读。
type OffsetTable struct {
	text       string
	runeAt     []int // runeAt[i] = 字节 i 处之前的 rune 数
	utf16At    []int // utf16At[i] = 字节 i 处之前的 UTF-16 code unit 数
	byteOfRune []int // byteOfRune[r] = 第 r 个 rune 的字节起点
	byteOfU16  []int // byteOfU16[u] = 第 u 个 code unit 所在 rune 的字节起点
}

// NewOffsetTable 为 text 构建偏移换算表
func NewOffsetTable(text string) *OffsetTable {
	t := &OffsetTable{
		text:    text,
		runeAt:  make([]int, len(text)+1),
		utf16At: make([]int, len(text)+1),
	}
	r, u := 0, 0
	for i := 0; i < len(text); {
		cp, size := utf8.DecodeRuneInString(text[i:])
		units := 1
		if cp > 0xFFFF {
			units = 2
		}
		t.byteOfRune = append(t.byteOfRune, i)
		for k := 0; k < units; k++ {
			t.byteOfU16 = append(t.byteOfU16, i)
		}
		// A multi-byte rune's interior bytes share its offsets.
		for k := 0; k < size; k++ {
			t.runeAt[i+k] = r
			t.utf16At[i+k] = u
		}
		r++
		u += units
		i += size
	}
	t.runeAt[len(text)] = r
	t.utf16At[len(text)] = u
	t.byteOfRune = append(t.byteOfRune, len(text))
	t.byteOfU16 = append(t.byteOfU16, len(text))
	return t
}

// Runes 文本的 rune 总数
func (t *OffsetTable) Runes() int {
	return t.runeAt[len(t.text)]
}

// UTF16 文本的 UTF-16 code unit 总数
func (t *OffsetTable) UTF16() int {
	return t.utf16At[len(t.text)]
}

// RuneForByte 把字节偏移换算为 rune 偏移，越界时取就近端点
func (t *OffsetTable) RuneForByte(pos int) int {
	return t.runeAt[clamp(pos, len(t.text))]
}

// UTF16ForByte 把字节偏移换算为 UTF-16 偏移，越界时取就近端点
func (t *OffsetTable) UTF16ForByte(pos int) int {
	return t.utf16At[clamp(pos, len(t.text))]
}

// ByteForRune 把 rune 偏移换算为字节偏移，越界时取就近端点
func (t *OffsetTable) ByteForRune(r int) int {
	return t.byteOfRune[clamp(r, len(t.byteOfRune)-1)]
}

// ByteForUTF16 把 UTF-16 偏移换算为字节偏移；落在代理对中间时
// 取该 rune 的字节起点
func (t *OffsetTable) ByteForUTF16(u int) int {
	return t.byteOfU16[clamp(u, len(t.byteOfU16)-1)]
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
