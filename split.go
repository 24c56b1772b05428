package uri

// Split parses text as an absolute URI (RFC 3986 §3, the "URI" production:
// scheme ":" hier-part [ "?" query ] [ "#" fragment" ]). It reports false
// if text is not a well-formed URI.
func Split(text string) (Parts, bool) {
	p := Parts{}
	if !newRule(text).concat(uriBody(&p)).done() {
		return Parts{}, false
	}
	finalizePath(&p)
	return p, true
}

// SplitReference parses text as a URI-reference (RFC 3986 §4.1: a URI or
// a relative-ref). It reports false if text matches neither.
func SplitReference(text string) (Parts, bool) {
	p := Parts{}
	ok := newRule(text).alternative(uriBody(&p), relativeRefBody(&p)).done()
	if !ok {
		return Parts{}, false
	}
	finalizePath(&p)
	return p, true
}

// DebugSplit is Split with a diagnostic error in place of a bare bool,
// for callers that want to know why a parse failed rather than just that
// it did.
func DebugSplit(text string) (Parts, error) {
	p := Parts{}
	r := newRule(text).concat(uriBody(&p))
	if !r.done() {
		if r.err != nil {
			return Parts{}, newParseError(r.err)
		}
		return Parts{}, newParseError(errGrammarMismatch)
	}
	finalizePath(&p)
	return p, nil
}

// DebugSplitReference is SplitReference with a diagnostic error.
func DebugSplitReference(text string) (Parts, error) {
	p := Parts{}
	r := newRule(text).alternative(uriBody(&p), relativeRefBody(&p))
	if !r.done() {
		if r.err != nil {
			return Parts{}, newParseError(r.err)
		}
		return Parts{}, newParseError(errGrammarMismatch)
	}
	finalizePath(&p)
	return p, nil
}
