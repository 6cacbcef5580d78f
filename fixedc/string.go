package fixedc

// String64 is a stack-resident, 64-byte-capacity string, used anywhere a
// bus component needs a small label (a subscriber name, a diagnostic tag)
// without touching the heap. Overflow truncates silently; callers that
// need to know about truncation compare Len() against the input length
// themselves — the truncating constructor never signals failure at the
// call site.
type String64 struct {
	buf [64]byte
	n   uint32
}

// NewString64Truncate builds a String64 from s, silently truncating to 64
// bytes if s is longer.
func NewString64Truncate(s string) String64 {
	var out String64
	out.n = uint32(copy(out.buf[:], s))
	return out
}

// String returns the string's contents as a newly allocated Go string.
// Reserved for cold paths (logging, diagnostics) — never call this from a
// hot loop, it allocates.
func (s String64) String() string { return string(s.buf[:s.n]) }

// Len returns the current length in bytes.
func (s String64) Len() uint32 { return s.n }

// Equal compares two String64 values by length then bytes.
func (s String64) Equal(other String64) bool {
	if s.n != other.n {
		return false
	}
	return s.buf == other.buf || string(s.buf[:s.n]) == string(other.buf[:other.n])
}
