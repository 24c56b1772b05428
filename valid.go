package uri

// Valid checks grammar-level well-formedness of each component p actually
// has present: Scheme against the scheme production, Host against host,
// Port against *DIGIT, each path segment against segment, and Query /
// Fragment against their shared production. Valid never errors: it is a
// pure predicate, consistent with every Parts produced by Split or
// SplitReference already satisfying it.
func (p Parts) Valid() bool {
	if p.HasScheme && !fullyMatches(p.Scheme, scheme) {
		return false
	}
	if a := p.Authority; a != nil {
		if !fullyMatches(a.Host, host) {
			return false
		}
		if a.HasPort && !fullyMatches(a.Port, port) {
			return false
		}
	}
	for _, seg := range p.Path.Segments {
		if !fullyMatches(stripLeadingSlash(seg), segment) {
			return false
		}
	}
	if p.HasQuery && !fullyMatches(p.Query, query) {
		return false
	}
	if p.HasFragment && !fullyMatches(p.Fragment, fragment) {
		return false
	}
	return true
}

func stripLeadingSlash(s string) string {
	if len(s) > 0 && s[0] == '/' {
		return s[1:]
	}
	return s
}

func fullyMatches(s string, m matcher) bool {
	return newRule(s).concat(m).done()
}
