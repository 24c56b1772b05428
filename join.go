package uri

// Join implements RFC 3986 §5.3: it resolves ref against base, producing
// the absolute set of Parts that a user agent would navigate to. strict
// matches the RFC's "strict" parameter — when false, a reference whose
// scheme is syntactically present but identical to base's scheme is
// treated as a same-document relative reference, for compatibility with
// older parsers that emit such references when backreferencing the
// retrieval URI.
func Join(base, ref Parts, strict bool) Parts {
	var t Parts
	if ref.HasScheme && (strict || ref.Scheme != base.Scheme) {
		t.Scheme, t.HasScheme = ref.Scheme, true
		t.Authority = cloneAuthority(ref.Authority)
		t.Path = ref.Path.RemoveDotSegments()
		t.Query, t.HasQuery = ref.Query, ref.HasQuery
	} else {
		t.Scheme, t.HasScheme = base.Scheme, base.HasScheme
		switch {
		case ref.Authority != nil:
			t.Authority = cloneAuthority(ref.Authority)
			t.Path = ref.Path.RemoveDotSegments()
			t.Query, t.HasQuery = ref.Query, ref.HasQuery
		case ref.Path.Empty():
			t.Authority = cloneAuthority(base.Authority)
			t.Path = base.Path
			if ref.HasQuery {
				t.Query, t.HasQuery = ref.Query, true
			} else {
				t.Query, t.HasQuery = base.Query, base.HasQuery
			}
		default:
			t.Authority = cloneAuthority(base.Authority)
			if ref.Path.Absolute {
				t.Path = ref.Path.RemoveDotSegments()
			} else {
				t.Path = mergePaths(base.Path, ref.Path, base.Authority != nil).RemoveDotSegments()
			}
			t.Query, t.HasQuery = ref.Query, ref.HasQuery
		}
	}
	t.Fragment, t.HasFragment = ref.Fragment, ref.HasFragment
	return t
}

// JoinStrings parses base as an absolute URI and ref as a URI-reference,
// then returns Join(base, ref, strict). It reports false if base is not
// a well-formed URI or ref is not a well-formed URI-reference.
func JoinStrings(base, ref string, strict bool) (Parts, bool) {
	b, ok := Split(base)
	if !ok {
		return Parts{}, false
	}
	r, ok := SplitReference(ref)
	if !ok {
		return Parts{}, false
	}
	return Join(b, r, strict), true
}

func cloneAuthority(a *Authority) *Authority {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
