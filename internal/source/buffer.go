// Package source holds the immutable source buffer, byte-range spans, and
// line/column resolution shared by the lexer, parser, and diagnostic engine.
package source

import (
	"sort"
	"unicode/utf8"
)

// Buffer is an immutable (text, path) pair with O(1) byte-index access to
// the Unicode scalar whose first byte sits at a given offset.
type Buffer struct {
	text string
	path string

	// lineStarts holds the byte offset of every '\n' in text, built lazily
	// on first Location lookup and reused via binary search thereafter.
	lineStarts []int
}

// New wraps source text and its originating path into a Buffer.
func New(text, path string) *Buffer {
	return &Buffer{text: text, path: path}
}

// Text returns the full source text.
func (b *Buffer) Text() string { return b.text }

// Path returns the originating file path.
func (b *Buffer) Path() string { return b.path }

// Len returns the length of the source text in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// RuneAt returns the scalar whose first byte is at the given byte offset,
// and the number of bytes it occupies. size is 0 if offset is out of range.
func (b *Buffer) RuneAt(offset int) (r rune, size int) {
	if offset < 0 || offset >= len(b.text) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(b.text[offset:])
}

// Slice returns the raw bytes of the half-open range [start, end).
func (b *Buffer) Slice(start, end int) string {
	return b.text[start:end]
}

func (b *Buffer) ensureLineStarts() {
	if b.lineStarts != nil {
		return
	}
	starts := make([]int, 0, 64)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, i)
		}
	}
	b.lineStarts = starts
}

// Location resolves a byte offset to a 1-based (line, column) pair. Column
// counts scalars on the line up to and including the addressed scalar.
func (b *Buffer) Location(offset int) Location {
	b.ensureLineStarts()

	// line is 1 + the number of newlines strictly before offset.
	line := 1 + sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] >= offset
	})

	lineStart := 0
	if line > 1 {
		lineStart = b.lineStarts[line-2] + 1
	}

	column := 1
	for i := lineStart; i < offset && i < len(b.text); {
		_, size := utf8.DecodeRuneInString(b.text[i:])
		if size == 0 {
			size = 1
		}
		i += size
		column++
	}

	return Location{Line: line, Column: column}
}

// LineText returns the full text of the given 1-based line number, without
// its trailing newline, along with the byte offset at which the line
// begins.
func (b *Buffer) LineText(line int) (text string, start int) {
	b.ensureLineStarts()

	if line <= 1 {
		start = 0
	} else if line-2 < len(b.lineStarts) {
		start = b.lineStarts[line-2] + 1
	} else {
		start = len(b.text)
	}

	end := len(b.text)
	if line-1 < len(b.lineStarts) {
		end = b.lineStarts[line-1]
	}
	if start > end {
		start = end
	}
	return b.text[start:end], start
}
