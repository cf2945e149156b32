package art

// SuffixArena is a per-tree, append-only byte buffer holding the compressed
// edge labels ("prefixes") referenced by nodes as (position, length) pairs.
// No substring sharing is attempted: prefixes simply accrete as keys and
// merged subtrees arrive.
type SuffixArena struct {
	buf []byte
}

// Append copies b onto the end of the arena and returns the position at
// which it now lives.
func (s *SuffixArena) Append(b []byte) uint32 {
	pos := uint32(len(s.buf))
	s.buf = append(s.buf, b...)
	return pos
}

// At returns the single byte stored at pos.
func (s *SuffixArena) At(pos uint32) byte {
	return s.buf[pos]
}

// Slice returns the length bytes starting at pos. The returned slice aliases
// the arena's backing array and is only valid until the next Append.
func (s *SuffixArena) Slice(pos, length uint32) []byte {
	return s.buf[pos : pos+length]
}

// Len returns the number of bytes currently stored in the arena.
func (s *SuffixArena) Len() int {
	return len(s.buf)
}
