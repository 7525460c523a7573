package graphics

const (
	fnvOffsetBasis uint64 = 0xcbf29ce484222325
	fnvPrime       uint64 = 0x00000100000001B3
)

// Hash computes the FNV-1a 64-bit digest of every cell in row-major order
// Per cell: code point (4 bytes LE), fg index, bg index, flags high byte, flags low byte,
// then the RGB components of fg and bg when they are explicit RGB colors
// The value is the debug script oracle and must stay stable across releases
func (s *Surface) Hash() uint64 {
	h := fnvOffsetBasis
	var buf [8]byte
	for _, ch := range s.chars {
		code := uint32(ch.Code)
		buf[0] = byte(code)
		buf[1] = byte(code >> 8)
		buf[2] = byte(code >> 16)
		buf[3] = byte(code >> 24)
		buf[4] = ch.Fg.Index()
		buf[5] = ch.Bg.Index()
		buf[6] = byte(ch.Flags >> 8)
		buf[7] = byte(ch.Flags)
		for _, b := range buf {
			h ^= uint64(b)
			h *= fnvPrime
		}
		if r, g, b, ok := ch.Fg.Components(); ok {
			h = fnvBytes(h, r, g, b)
		}
		if r, g, b, ok := ch.Bg.Components(); ok {
			h = fnvBytes(h, r, g, b)
		}
	}
	return h
}

func fnvBytes(h uint64, bs ...byte) uint64 {
	for _, b := range bs {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return h
}
