package uri

import (
	"github.com/jplu/uri/pctencode"
	"github.com/jplu/uri/punycode"
)

// pendingView records a byte range already written to a Store, together
// with the setter that should receive the final slice once every write
// for this operation has landed and a single stable snapshot is safe to
// take.
type pendingView struct {
	start, end int
	set        func(string)
}

// Encode applies RFC 3986 percent-encoding to userinfo, each path
// segment, query, and fragment, and RFC 3492 Punycode to the host,
// writing every transformed field into store and leaving every
// already-safe field pointing at its original bytes. It performs exactly
// one reservation on store: a first pass sums the bytes every
// transformed field will need, then a second pass writes them.
func Encode(store *Store, p Parts) Parts {
	store.Reset()
	out := p
	out.Authority = cloneAuthority(p.Authority)
	out.Path.Segments = append([]string(nil), p.Path.Segments...)

	size := 0
	var userinfoEncoded, hostEncoded string
	needUserinfo := p.Authority != nil && p.Authority.HasUserinfo &&
		pctencode.NeedsEncoding(p.Authority.Userinfo, pctencode.Userinfo)
	if needUserinfo {
		userinfoEncoded = pctencode.Encode(p.Authority.Userinfo, pctencode.Userinfo)
		size += len(userinfoEncoded)
	}

	needHost := p.Authority != nil && punycode.AnyNonASCII(p.Authority.Host)
	if needHost {
		enc, err := punycode.EncodeDomain(p.Authority.Host)
		if err == nil {
			hostEncoded = enc
			size += len(hostEncoded)
		} else {
			needHost = false
		}
	}

	segNeeds := make([]bool, len(p.Path.Segments))
	segEncoded := make([]string, len(p.Path.Segments))
	for i, seg := range p.Path.Segments {
		prefix, text := splitSlashPrefix(seg)
		if !pctencode.NeedsEncoding(text, pctencode.Path) {
			continue
		}
		segNeeds[i] = true
		segEncoded[i] = prefix + pctencode.Encode(text, pctencode.Path)
		size += len(segEncoded[i])
	}

	var queryEncoded, fragmentEncoded string
	needQuery := p.HasQuery && pctencode.NeedsEncoding(p.Query, pctencode.Query)
	if needQuery {
		queryEncoded = pctencode.Encode(p.Query, pctencode.Query)
		size += len(queryEncoded)
	}
	needFragment := p.HasFragment && pctencode.NeedsEncoding(p.Fragment, pctencode.Fragment)
	if needFragment {
		fragmentEncoded = pctencode.Encode(p.Fragment, pctencode.Fragment)
		size += len(fragmentEncoded)
	}

	store.Reserve(size)

	var pending []pendingView
	if needUserinfo {
		a := out.EnsureAuthority()
		start, end := store.Append(userinfoEncoded)
		pending = append(pending, pendingView{start, end, func(s string) { a.Userinfo = s }})
	}
	if needHost {
		a := out.EnsureAuthority()
		start, end := store.Append(hostEncoded)
		pending = append(pending, pendingView{start, end, func(s string) { a.Host = s }})
	}
	for i := range out.Path.Segments {
		if !segNeeds[i] {
			continue
		}
		idx := i
		start, end := store.Append(segEncoded[i])
		pending = append(pending, pendingView{start, end, func(s string) { out.Path.Segments[idx] = s }})
	}
	if needQuery {
		start, end := store.Append(queryEncoded)
		pending = append(pending, pendingView{start, end, func(s string) { out.Query = s }})
	}
	if needFragment {
		start, end := store.Append(fragmentEncoded)
		pending = append(pending, pendingView{start, end, func(s string) { out.Fragment = s }})
	}

	full := store.String()
	for _, pv := range pending {
		pv.set(full[pv.start:pv.end])
	}
	if store.Len() != size {
		panic("uri: encode size oracle disagreed with writer")
	}
	return out
}

// splitSlashPrefix separates a path segment's leading "/" (if any) from
// its pchar text, since only the text participates in percent-encoding.
func splitSlashPrefix(seg string) (prefix, text string) {
	if len(seg) > 0 && seg[0] == '/' {
		return "/", seg[1:]
	}
	return "", seg
}
