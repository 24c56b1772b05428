package uri

// Authority is the "userinfo @ host : port" tuple that follows "//" in a
// URI that has one. Host is mandatory whenever an Authority is present
// (it may be the empty string); Userinfo and Port are each independently
// optional.
type Authority struct {
	Userinfo    string
	HasUserinfo bool
	Host        string
	Port        string
	HasPort     bool
}

// Equal reports whether a and other have byte-identical components.
func (a Authority) Equal(other Authority) bool {
	return a.HasUserinfo == other.HasUserinfo &&
		a.Userinfo == other.Userinfo &&
		a.Host == other.Host &&
		a.HasPort == other.HasPort &&
		a.Port == other.Port
}

// Path is a URI's path component: an ordered sequence of segments plus
// whether the path is absolute. Segments carry their separating "/" as
// part of their own text, so Compose can reproduce the original path by
// simply concatenating them in order; see DESIGN.md for the grounding
// behind this choice.
type Path struct {
	Absolute bool
	Segments []string
}

// Empty reports whether the path has zero segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// String concatenates the path's segments, each already carrying its own
// leading slash where the grammar put one there.
func (p Path) String() string {
	switch len(p.Segments) {
	case 0:
		return ""
	case 1:
		return p.Segments[0]
	}
	n := 0
	for _, s := range p.Segments {
		n += len(s)
	}
	b := make([]byte, 0, n)
	for _, s := range p.Segments {
		b = append(b, s...)
	}
	return string(b)
}

// Equal reports whether p and other have the same Absolute flag and the
// same segments in the same order.
func (p Path) Equal(other Path) bool {
	if p.Absolute != other.Absolute || len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// Parts is the structured decomposition of a parsed URI, as produced by
// Split, SplitReference, Join, Encode, and Decode.
type Parts struct {
	Scheme      string
	HasScheme   bool
	Authority   *Authority
	Path        Path
	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// Equal reports whether p and other are equal under byte equality of every
// component.
func (p Parts) Equal(other Parts) bool {
	if p.HasScheme != other.HasScheme || p.Scheme != other.Scheme {
		return false
	}
	if (p.Authority == nil) != (other.Authority == nil) {
		return false
	}
	if p.Authority != nil && !p.Authority.Equal(*other.Authority) {
		return false
	}
	if !p.Path.Equal(other.Path) {
		return false
	}
	if p.HasQuery != other.HasQuery || p.Query != other.Query {
		return false
	}
	return p.HasFragment == other.HasFragment && p.Fragment == other.Fragment
}

// EnsureAuthority returns p's existing authority, installing and
// returning an empty one (HasUserinfo and HasPort both false, Host "")
// first if p has none.
func (p *Parts) EnsureAuthority() *Authority {
	if p.Authority == nil {
		p.Authority = &Authority{}
	}
	return p.Authority
}
