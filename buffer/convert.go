package buffer

import "unicode/utf8"

// ByteOffset returns the byte offset of p in Text(). p is clamped first.
func (b *Buffer) ByteOffset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += runesByteLen(b.lines[row]) + 1
	}
	return off + runesByteLen(b.lines[p.Row][:p.Col])
}

// PosFromByteOffset maps a byte offset in Text() back to a position.
// Offsets are clamped into [0, len(Text())]. ok is false when off falls
// inside a multi-byte rune; the returned Pos is then the rune start.
func (b *Buffer) PosFromByteOffset(off int) (p Pos, ok bool) {
	if off < 0 {
		return Pos{}, true
	}
	cur := 0
	for row, line := range b.lines {
		for col, r := range line {
			if off == cur {
				return Pos{Row: row, Col: col}, true
			}
			next := cur + utf8.RuneLen(r)
			if off < next {
				return Pos{Row: row, Col: col}, false
			}
			cur = next
		}
		if off == cur || row == len(b.lines)-1 {
			return Pos{Row: row, Col: len(line)}, true
		}
		cur++ // '\n'
	}
	return Pos{}, true
}

func runesByteLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}
