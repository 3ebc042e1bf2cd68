// Package escpos builds raw ESC/POS byte streams and ships them to thermal
// receipt printers over USB device files or TCP.
package escpos

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	cmdESC = 0x1B
	cmdGS  = 0x1D
	cmdLF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	SizeNormal = 0x00
	SizeDouble = 0x11 // double width + double height
	SizeWide   = 0x10 // double width only
	SizeTall   = 0x01 // double height only
)

// Builder accumulates an ESC/POS byte stream. Widths in characters: 32 for
// 58mm paper, 48 for 80mm.
type Builder struct {
	buf   bytes.Buffer
	width int
}

// NewBuilder creates an initialized builder with the given character width.
func NewBuilder(charWidth int) *Builder {
	if charWidth <= 0 {
		charWidth = 48
	}
	b := &Builder{width: charWidth}
	b.Init()
	return b
}

// Width returns the configured character width.
func (b *Builder) Width() int {
	return b.width
}

// Init sends ESC @ (initialize printer).
func (b *Builder) Init() *Builder {
	b.buf.Write([]byte{cmdESC, '@'})
	return b
}

// Align sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (b *Builder) Align(align int) *Builder {
	b.buf.Write([]byte{cmdESC, 'a', byte(align)})
	return b
}

// Bold enables or disables emphasized text.
func (b *Builder) Bold(on bool) *Builder {
	v := byte(0)
	if on {
		v = 1
	}
	b.buf.Write([]byte{cmdESC, 'E', v})
	return b
}

// Size sets the character size. Use SizeNormal, SizeDouble, SizeWide, or SizeTall.
func (b *Builder) Size(size byte) *Builder {
	b.buf.Write([]byte{cmdGS, '!', size})
	return b
}

// Line writes a line of text followed by a line feed.
func (b *Builder) Line(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte(cmdLF)
	return b
}

// Linef writes a formatted line followed by a line feed.
func (b *Builder) Linef(format string, args ...interface{}) *Builder {
	b.buf.WriteString(fmt.Sprintf(format, args...))
	b.buf.WriteByte(cmdLF)
	return b
}

// Feed sends n line feeds.
func (b *Builder) Feed(n int) *Builder {
	for i := 0; i < n; i++ {
		b.buf.WriteByte(cmdLF)
	}
	return b
}

// Rule prints a full-width rule of the given character.
func (b *Builder) Rule(char byte) *Builder {
	b.buf.WriteString(strings.Repeat(string(char), b.width))
	b.buf.WriteByte(cmdLF)
	return b
}

// TwoCol prints a left-aligned label and right-aligned value on one line.
// Example: "Grand Total              Rs 266.00"
func (b *Builder) TwoCol(left, right string) *Builder {
	gap := b.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.buf.WriteString(left)
	b.buf.WriteString(strings.Repeat(" ", gap))
	b.buf.WriteString(right)
	b.buf.WriteByte(cmdLF)
	return b
}

// ItemRow prints a receipt line item: "2x Galaxy A15" with a right-aligned total.
func (b *Builder) ItemRow(qty int, name, total string) *Builder {
	return b.TwoCol(fmt.Sprintf("%dx %s", qty, name), total)
}

// Cut sends the full paper cut command.
func (b *Builder) Cut() *Builder {
	b.buf.Write([]byte{cmdGS, 'V', 0x00})
	return b
}

// PartialCut sends the partial cut command.
func (b *Builder) PartialCut() *Builder {
	b.buf.Write([]byte{cmdGS, 'V', 0x01})
	return b
}

// Bytes returns the accumulated stream.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Reset clears the buffer and reinitializes.
func (b *Builder) Reset() *Builder {
	b.buf.Reset()
	b.Init()
	return b
}
