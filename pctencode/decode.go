package pctencode

// Decoder is a forward iterator that yields decoded bytes from a percent-
// encoded byte sequence. At each step, if the current byte is '%' and is
// followed by two valid hex digits, it yields the decoded octet and
// advances by three bytes; otherwise it yields the current byte literally
// and advances by one. This makes decoding of malformed trailers
// idempotent: "ab%" yields 'a', 'b', '%'.
type Decoder struct {
	s   string
	pos int
}

// NewDecoder returns a Decoder over s, starting at its first byte.
func NewDecoder(s string) *Decoder { return &Decoder{s: s} }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// Next returns the next decoded byte and true, or (0, false) once the
// input is exhausted.
func (d *Decoder) Next() (byte, bool) {
	if d.pos >= len(d.s) {
		return 0, false
	}
	b := d.s[d.pos]
	if b == '%' && d.pos+2 < len(d.s) && isHexDigit(d.s[d.pos+1]) && isHexDigit(d.s[d.pos+2]) {
		v := hexVal(d.s[d.pos+1])<<4 | hexVal(d.s[d.pos+2])
		d.pos += 3
		return v, true
	}
	d.pos++
	return b, true
}

// lowerAlpha lowercases an ASCII letter, leaving any other byte unchanged.
func lowerAlpha(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// NextLower is like Next but additionally lowercases alphabetic output,
// for composing a normalized host or scheme.
func (d *Decoder) NextLower() (byte, bool) {
	b, ok := d.Next()
	if !ok {
		return 0, false
	}
	return lowerAlpha(b), true
}

// Decode fully decodes s and returns the resulting byte sequence as a
// string. If s contains no well-formed %HH triplet, Decode returns s
// unchanged without allocating.
func Decode(s string) string {
	if !NeedsDecoding(s) {
		return s
	}
	out := make([]byte, 0, len(s))
	d := NewDecoder(s)
	for {
		b, ok := d.Next()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

// DecodeLower is like Decode but additionally lowercases alphabetic
// output.
func DecodeLower(s string) string {
	out := make([]byte, 0, len(s))
	d := NewDecoder(s)
	for {
		b, ok := d.NextLower()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

// NeedsDecoding reports whether Decode(s) would differ from s, i.e.
// whether s contains at least one well-formed %HH triplet.
func NeedsDecoding(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			return true
		}
	}
	return false
}

// DecodedSize returns the exact byte length Decode(s) would produce,
// without materializing the decoded string.
func DecodedSize(s string) int {
	n := 0
	d := NewDecoder(s)
	for {
		if _, ok := d.Next(); !ok {
			break
		}
		n++
	}
	return n
}
