package buffer

import "unicode/utf8"

// TextBuffer accumulates output text parts and tracks byte and rune offsets.
// The repair applier and the message splitter both assemble their output
// through it so that offset bookkeeping lives in one place.
type TextBuffer struct {
	parts      []string
	byteOffset int
	runeOffset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.byteOffset += len(text)
	tb.runeOffset += utf8.RuneCountInString(text)
}

// ByteOffset returns the current byte offset.
func (tb *TextBuffer) ByteOffset() int {
	return tb.byteOffset
}

// RuneOffset returns the current rune offset.
func (tb *TextBuffer) RuneOffset() int {
	return tb.runeOffset
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// PopLast removes and returns the last written part.
// Used by the splitter to retract a line that overflowed the current chunk.
func (tb *TextBuffer) PopLast() string {
	if len(tb.parts) == 0 {
		return ""
	}
	last := tb.parts[len(tb.parts)-1]
	tb.parts = tb.parts[:len(tb.parts)-1]
	tb.byteOffset -= len(last)
	tb.runeOffset -= utf8.RuneCountInString(last)
	return last
}

// Empty reports whether nothing has been written since the last Reset.
func (tb *TextBuffer) Empty() bool {
	return tb.byteOffset == 0
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.byteOffset)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.byteOffset = 0
	tb.runeOffset = 0
}
