package uri

// This file wires the grammar combinator in combinator.go to RFC 3986's
// ABNF, production by production, with each production's acceptor
// writing its matched text directly into a *Parts (or *Authority). Every
// matcher that writes into Parts is built once per call (it closes over
// the destination Parts), not shared as a package-level value, since each
// Split/SplitReference call needs its own set of acceptors bound to its
// own Parts; productions that only match are plain package-level funcs.

// pctEncoded matches "%" HEXDIG HEXDIG.
func pctEncoded(r rule) rule {
	return r.concat(literalByte('%')).concat(hexdig).concat(hexdig)
}

var unreserved = singleByte(isUnreserved)
var subDelims = singleByte(isSubDelims)

// pchar is RFC 3986 §3.3: unreserved / pct-encoded / sub-delims / ":" / "@".
func pchar(r rule) rule {
	return r.alternative(unreserved, pctEncoded, subDelims, colon, atSign)
}

// scheme is ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func scheme(r rule) rule {
	return r.concat(alpha).star(matched(func(r2 rule) rule {
		return r2.alternative(alpha, digit, plus, minus, fullStop)
	}), nil, 0, 0)
}

// decOctet is RFC 3986's five ordered alternatives, longest (and most
// restrictive) first so that a value like "25" isn't matched by the
// single-DIGIT alternative before the two-DIGIT and three-DIGIT
// alternatives get a chance — the ABNF's ordering is what gives dec-octet
// its [0,255] range instead of three bare digits.
func decOctet(r rule) rule {
	return r.alternative(
		matched(func(r1 rule) rule { // "25" %x30-35
			return r1.concat(literalByte('2')).concat(literalByte('5')).concat(byteRange('0', '5'))
		}),
		matched(func(r1 rule) rule { // "2" %x30-34 DIGIT
			return r1.concat(literalByte('2')).concat(byteRange('0', '4')).concat(digit)
		}),
		matched(func(r1 rule) rule { // "1" 2DIGIT
			return r1.concat(literalByte('1')).concat(digit).concat(digit)
		}),
		matched(func(r1 rule) rule { // %x31-39 DIGIT
			return r1.concat(byteRange('1', '9')).concat(digit)
		}),
		digit,
	)
}

func ipv4address(r rule) rule {
	return r.concat(decOctet).concat(fullStop).concat(decOctet).concat(fullStop).
		concat(decOctet).concat(fullStop).concat(decOctet)
}

// h16 is 1*4HEXDIG.
func h16(r rule) rule {
	return r.star(hexdig, nil, 1, 4)
}

func h16Colon(r rule) rule {
	return r.concat(h16).concat(singleColon)
}

func colonColon(r rule) rule {
	return r.concat(colon).concat(colon)
}

func ls32(r rule) rule {
	return r.alternative(
		matched(func(r1 rule) rule { return r1.concat(h16).concat(singleColon).concat(h16) }),
		ipv4address,
	)
}

// h16ColonUpTo returns a matcher for "*N( h16 ":" ) h16", i.e. up to n
// leading h16 groups followed by one more, used by the variable-length
// "::" alternatives of IPv6address.
func h16ColonUpTo(n int) matcher {
	return matched(func(r rule) rule {
		return r.star(h16Colon, nil, 0, n).concat(h16)
	})
}

// ipv6address is RFC 3986's nine ordered alternatives for IPv6address,
// distinguished by how many leading h16 groups precede a "::" (or whether
// there is no "::" at all).
func ipv6address(r rule) rule {
	return r.alternative(
		matched(func(r1 rule) rule { return r1.star(h16Colon, nil, 6, 6).concat(ls32) }),
		matched(func(r1 rule) rule { return r1.concat(colonColon).star(h16Colon, nil, 5, 5).concat(ls32) }),
		matched(func(r1 rule) rule {
			return r1.optional(h16, nil).concat(colonColon).star(h16Colon, nil, 4, 4).concat(ls32)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(1), nil).concat(colonColon).star(h16Colon, nil, 3, 3).concat(ls32)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(2), nil).concat(colonColon).star(h16Colon, nil, 2, 2).concat(ls32)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(3), nil).concat(colonColon).concat(h16Colon).concat(ls32)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(4), nil).concat(colonColon).concat(ls32)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(5), nil).concat(colonColon).concat(h16)
		}),
		matched(func(r1 rule) rule {
			return r1.optional(h16ColonUpTo(6), nil).concat(colonColon)
		}),
	)
}

// ipvFuture is "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func ipvFuture(r rule) rule {
	return r.concat(literalByte('v')).star(hexdig, nil, 1, 0).concat(fullStop).
		star(matched(func(r1 rule) rule { return r1.alternative(unreserved, subDelims, colon) }), nil, 1, 0)
}

func ipLiteral(r rule) rule {
	return r.concat(leftSq).concat(matched(func(r1 rule) rule {
		return r1.alternative(ipv6address, ipvFuture)
	})).concat(rightSq)
}

// regName is *( unreserved / pct-encoded / sub-delims ).
func regName(r rule) rule {
	return r.star(matched(func(r1 rule) rule {
		return r1.alternative(unreserved, pctEncoded, subDelims)
	}), nil, 0, 0)
}

// host is IP-literal / IPv4address / reg-name, in that order: IPv4address
// is tried before reg-name because reg-name would otherwise happily
// accept any dotted-decimal text as an ordinary registered name.
func host(r rule) rule {
	return r.alternative(ipLiteral, ipv4address, regName)
}

func userinfo(r rule) rule {
	return r.star(matched(func(r1 rule) rule {
		return r1.alternative(unreserved, pctEncoded, subDelims, colon)
	}), nil, 0, 0)
}

func port(r rule) rule {
	return r.star(digit, nil, 0, 0)
}

// segment is *pchar.
func segment(r rule) rule {
	return r.star(pchar, nil, 0, 0)
}

// segmentNZ is 1*pchar.
func segmentNZ(r rule) rule {
	return r.star(pchar, nil, 1, 0)
}

// segmentNZNC is 1*( unreserved / pct-encoded / sub-delims / "@" ) — like
// segmentNZ but without ":", so a reference's first path segment can
// never be mistaken for a scheme.
func segmentNZNC(r rule) rule {
	return r.star(matched(func(r1 rule) rule {
		return r1.alternative(unreserved, pctEncoded, subDelims, atSign)
	}), nil, 1, 0)
}

func query(r rule) rule {
	return r.star(matched(func(r1 rule) rule { return r1.alternative(pchar, solidus, question) }), nil, 0, 0)
}

// fragment shares query's grammar (RFC 3986 §3.5).
func fragment(r rule) rule { return query(r) }

// appendSegment records the start of a new path segment (the "/" itself,
// since Path.Segments carries it).
func appendSegment(p *Parts, s string) { p.Path.Segments = append(p.Path.Segments, s) }

// extendLastSegment appends s to the most recently started segment.
func extendLastSegment(p *Parts, s string) {
	if s == "" {
		return
	}
	last := len(p.Path.Segments) - 1
	p.Path.Segments[last] += s
}

// pathAbempty binds *( "/" segment ) into p, used after an authority
// (possibly empty) has been parsed.
func pathAbempty(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.star(matched(func(r1 rule) rule {
			return r1.
				concatAccept(solidus, func(s string) { appendSegment(p, s) }).
				concatAccept(segment, func(s string) { extendLastSegment(p, s) })
		}), nil, 0, 0)
	})
}

// pathAbsolute binds "/" [ segment-nz *( "/" segment ) ] into p.
func pathAbsolute(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.
			concatAccept(solidus, func(s string) { appendSegment(p, s) }).
			optional(matched(func(r1 rule) rule {
				return r1.
					concatAccept(segmentNZ, func(s string) { extendLastSegment(p, s) }).
					concat(matched(func(r2 rule) rule {
						return r2.star(matched(func(r3 rule) rule {
							return r3.
								concatAccept(solidus, func(s string) { appendSegment(p, s) }).
								concatAccept(segment, func(s string) { extendLastSegment(p, s) })
						}), nil, 0, 0)
					}))
			}), nil)
	})
}

// pathRootlessWithFirst binds segment-nz-like *( "/" segment ) where
// first is the matcher for the first, slash-free segment (segmentNZ for
// path-rootless, segmentNZNC for path-noscheme).
func pathRootlessWithFirst(p *Parts, first matcher) matcher {
	return matched(func(r rule) rule {
		return r.
			concatAccept(first, func(s string) { appendSegment(p, s) }).
			star(matched(func(r1 rule) rule {
				return r1.
					concatAccept(solidus, func(s string) { appendSegment(p, s) }).
					concatAccept(segment, func(s string) { extendLastSegment(p, s) })
			}), nil, 0, 0)
	})
}

// pathEmpty always succeeds without consuming anything (0<pchar>).
func pathEmpty(r rule) rule { return r }

// authority binds [ userinfo "@" ] host [ ":" port ] into p, creating p's
// Authority on the first field written (ensuring it exists even when
// host matches the empty reg-name).
func authority(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.
			optional(matched(func(r1 rule) rule {
				return r1.
					concatAccept(userinfo, func(s string) {
						a := p.EnsureAuthority()
						a.Userinfo, a.HasUserinfo = s, true
					}).
					concat(atSign)
			}), nil).
			concatAccept(host, func(s string) { p.EnsureAuthority().Host = s }).
			optional(matched(func(r1 rule) rule {
				return r1.
					concat(colon).
					concatAccept(port, func(s string) {
						a := p.EnsureAuthority()
						a.Port, a.HasPort = s, true
					})
			}), nil)
	})
}

// hierPart binds RFC 3986's hier-part into p.
func hierPart(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.alternative(
			matched(func(r1 rule) rule {
				return r1.concat(solidus).concat(solidus).concat(authority(p)).concat(pathAbempty(p))
			}),
			pathAbsolute(p),
			pathRootlessWithFirst(p, segmentNZ),
			pathEmpty,
		)
	})
}

// relativePart binds RFC 3986's relative-part into p.
func relativePart(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.alternative(
			matched(func(r1 rule) rule {
				return r1.concat(solidus).concat(solidus).concat(authority(p)).concat(pathAbempty(p))
			}),
			pathAbsolute(p),
			pathRootlessWithFirst(p, segmentNZNC),
			pathEmpty,
		)
	})
}

// bindQuery and bindFragment are the shared "?query" / "#fragment" tails
// of both URI and relative-ref.
func bindQuery(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.concat(question).concatAccept(query, func(s string) { p.Query, p.HasQuery = s, true })
	})
}

func bindFragment(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.concat(hash).concatAccept(fragment, func(s string) { p.Fragment, p.HasFragment = s, true })
	})
}

// uriBody binds "scheme ":" hier-part [ "?" query ] [ "#" fragment ]".
func uriBody(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.
			concatAccept(scheme, func(s string) { p.Scheme, p.HasScheme = s, true }).
			concat(colon).
			concat(hierPart(p)).
			optional(bindQuery(p), nil).
			optional(bindFragment(p), nil)
	})
}

// relativeRefBody binds "relative-part [ "?" query ] [ "#" fragment ]".
func relativeRefBody(p *Parts) matcher {
	return matched(func(r rule) rule {
		return r.
			concat(relativePart(p)).
			optional(bindQuery(p), nil).
			optional(bindFragment(p), nil)
	})
}

// finalizePath sets Path.Absolute from the parsed segments: the grammar
// never tracks it directly, since "does the first segment start with /"
// is simpler to compute once than to thread through every path
// alternative above.
func finalizePath(p *Parts) {
	if len(p.Path.Segments) > 0 && p.Path.Segments[0][0] == '/' {
		p.Path.Absolute = true
	}
}
