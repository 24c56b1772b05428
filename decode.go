package uri

import (
	"github.com/jplu/uri/pctencode"
	"github.com/jplu/uri/punycode"
)

// Decode reverses Encode: it percent-decodes userinfo, each path
// segment, query, and fragment, and decodes the host out of Punycode
// when it carries the "xn--" ACE prefix. Any Punycode decode error
// aborts immediately — Decode never partially succeeds.
func Decode(store *Store, p Parts) (Parts, error) {
	store.Reset()
	out := p
	out.Authority = cloneAuthority(p.Authority)
	out.Path.Segments = append([]string(nil), p.Path.Segments...)

	var userinfoDecoded, hostDecoded string
	needUserinfo := p.Authority != nil && p.Authority.HasUserinfo && pctencode.NeedsDecoding(p.Authority.Userinfo)
	if needUserinfo {
		userinfoDecoded = pctencode.Decode(p.Authority.Userinfo)
	}

	needHost := p.Authority != nil && punycode.HasACELabel(p.Authority.Host)
	if needHost {
		dec, err := punycode.DecodeDomain(p.Authority.Host)
		if err != nil {
			return Parts{}, newParseError(err)
		}
		hostDecoded = dec
	}

	segNeeds := make([]bool, len(p.Path.Segments))
	segDecoded := make([]string, len(p.Path.Segments))
	for i, seg := range p.Path.Segments {
		prefix, text := splitSlashPrefix(seg)
		if !pctencode.NeedsDecoding(text) {
			continue
		}
		segNeeds[i] = true
		segDecoded[i] = prefix + pctencode.Decode(text)
	}

	var queryDecoded, fragmentDecoded string
	needQuery := p.HasQuery && pctencode.NeedsDecoding(p.Query)
	if needQuery {
		queryDecoded = pctencode.Decode(p.Query)
	}
	needFragment := p.HasFragment && pctencode.NeedsDecoding(p.Fragment)
	if needFragment {
		fragmentDecoded = pctencode.Decode(p.Fragment)
	}

	size := len(userinfoDecoded) + len(hostDecoded) + len(queryDecoded) + len(fragmentDecoded)
	for i := range segDecoded {
		if segNeeds[i] {
			size += len(segDecoded[i])
		}
	}
	store.Reserve(size)

	var pending []pendingView
	if needUserinfo {
		a := out.EnsureAuthority()
		start, end := store.Append(userinfoDecoded)
		pending = append(pending, pendingView{start, end, func(s string) { a.Userinfo = s }})
	}
	if needHost {
		a := out.EnsureAuthority()
		start, end := store.Append(hostDecoded)
		pending = append(pending, pendingView{start, end, func(s string) { a.Host = s }})
	}
	for i := range out.Path.Segments {
		if !segNeeds[i] {
			continue
		}
		idx := i
		start, end := store.Append(segDecoded[i])
		pending = append(pending, pendingView{start, end, func(s string) { out.Path.Segments[idx] = s }})
	}
	if needQuery {
		start, end := store.Append(queryDecoded)
		pending = append(pending, pendingView{start, end, func(s string) { out.Query = s }})
	}
	if needFragment {
		start, end := store.Append(fragmentDecoded)
		pending = append(pending, pendingView{start, end, func(s string) { out.Fragment = s }})
	}

	full := store.String()
	for _, pv := range pending {
		pv.set(full[pv.start:pv.end])
	}
	if store.Len() != size {
		panic("uri: decode size oracle disagreed with writer")
	}
	return out, nil
}
