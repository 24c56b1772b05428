package uri

import (
	"io"
	"strings"
)

// Compose serializes p back to its RFC 3986 text form: scheme ":" "//"
// authority path "?" query "#" fragment, with each optional piece
// present only when its Has flag (or, for Authority, a non-nil pointer)
// says so.
func Compose(p Parts) string {
	var b strings.Builder
	b.Grow(composeSize(p))
	writeComposed(&b, p)
	return b.String()
}

// ComposeTo writes p's RFC 3986 text form to w, returning the number of
// bytes written.
func ComposeTo(w io.Writer, p Parts) (int, error) {
	var b strings.Builder
	b.Grow(composeSize(p))
	writeComposed(&b, p)
	return io.WriteString(w, b.String())
}

func composeSize(p Parts) int {
	n := 0
	if p.HasScheme {
		n += len(p.Scheme) + 1
	}
	if p.Authority != nil {
		n += 2 + authoritySize(*p.Authority)
	}
	n += len(p.Path.String())
	if p.HasQuery {
		n += len(p.Query) + 1
	}
	if p.HasFragment {
		n += len(p.Fragment) + 1
	}
	return n
}

func authoritySize(a Authority) int {
	n := len(a.Host)
	if a.HasUserinfo {
		n += len(a.Userinfo) + 1
	}
	if a.HasPort {
		n += len(a.Port) + 1
	}
	return n
}

func writeComposed(b *strings.Builder, p Parts) {
	if p.HasScheme {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if a := p.Authority; a != nil {
		b.WriteString("//")
		if a.HasUserinfo {
			b.WriteString(a.Userinfo)
			b.WriteByte('@')
		}
		b.WriteString(a.Host)
		if a.HasPort {
			b.WriteByte(':')
			b.WriteString(a.Port)
		}
	}
	b.WriteString(p.Path.String())
	if p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
}
