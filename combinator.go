package uri

// This file implements a small grammar combinator, kept deliberately
// independent of the URI grammar built on top of it in grammar.go: a
// cursor over an input byte view, with ordered-alternative / sequence /
// repetition / optional matchers and deferred acceptor callbacks that run
// only once the enclosing rule has matched in full. A rule value carries
// its unconsumed tail and the acceptors queued by every sub-match that
// has succeeded so far; alternative tries each branch against a snapshot
// of the cursor and keeps only the winner's acceptors, so a discarded
// alternative's side effects never run.

// matcher attempts to consume a prefix of the rule it is given, returning
// a new rule describing what remains. A matcher signals failure by
// returning a rule with failed set.
type matcher func(rule) rule

// rule is the grammar combinator's cursor: the unconsumed tail of input,
// whether a prior step in the chain has already failed ("poisoned"), and
// the acceptors queued by every rule that has matched so far.
//
// failTail and err exist only for diagnostics: when a rule fails, failTail
// holds the tail at the point progress stopped and err a reason, so that
// alternative can pick the "furthest" failure among its candidates as the
// most likely explanation — the same heuristic recursive-descent and PEG
// parsers commonly use to produce a readable message instead of "no
// alternative matched".
type rule struct {
	tail      string
	failed    bool
	failTail  string
	err       error
	acceptors []func()
}

// newRule starts a fresh match attempt over s.
func newRule(s string) rule { return rule{tail: s} }

func failAt(tail string, err error) rule {
	return rule{failed: true, failTail: tail, err: err}
}

// concat requires m to match the current tail; on success it advances
// past the match. It is the sequencing primitive ("Rule1 Rule2 ...").
func (r rule) concat(m matcher) rule {
	return r.concatAccept(m, nil)
}

// concatAccept is concat plus a deferred acceptor: on success, accept is
// queued with the exact substring m consumed, to run once the top-level
// rule reaches done().
func (r rule) concatAccept(m matcher, accept func(matched string)) rule {
	if r.failed {
		return r
	}
	before := r.tail
	next := m(rule{tail: r.tail})
	if next.failed {
		return failAt(next.failTail, next.err)
	}
	consumed := before[:len(before)-len(next.tail)]
	return rule{
		tail:      next.tail,
		acceptors: appendAcceptors(r.acceptors, next.acceptors, accept, consumed),
	}
}

// alternative tries each rule in order against a snapshot of the current
// cursor and keeps the first that succeeds, adopting only its acceptors.
// If none matches, the cursor is poisoned ("Rule1 / Rule2 / ...") and the
// reported failure is whichever candidate consumed the most input before
// failing.
func (r rule) alternative(rules ...matcher) rule {
	if r.failed {
		return r
	}
	var deepestTail string
	var deepestErr error
	haveFailure := false
	for _, m := range rules {
		next := m(rule{tail: r.tail})
		if !next.failed {
			return rule{
				tail:      next.tail,
				acceptors: appendAcceptors(r.acceptors, next.acceptors, nil, ""),
			}
		}
		if !haveFailure || len(next.failTail) < len(deepestTail) {
			deepestTail, deepestErr, haveFailure = next.failTail, next.err, true
		}
	}
	return failAt(deepestTail, deepestErr)
}

// star repeats m greedily, requiring at least min successes and at most
// max (0 meaning unbounded); accept, if non-nil, is queued once per
// successful repetition with that repetition's matched text ("*Rule",
// "1*Rule", "m*nRule").
func (r rule) star(m matcher, accept func(matched string), min, max int) rule {
	if r.failed {
		return r
	}
	cur := r
	count := 0
	var lastFail rule
	for max <= 0 || count < max {
		before := cur.tail
		next := m(rule{tail: cur.tail})
		if next.failed {
			lastFail = next
			break
		}
		consumed := before[:len(before)-len(next.tail)]
		cur = rule{
			tail:      next.tail,
			acceptors: appendAcceptors(cur.acceptors, next.acceptors, accept, consumed),
		}
		count++
	}
	if count < min {
		return failAt(lastFail.failTail, lastFail.err)
	}
	return cur
}

// optional attempts m once; on failure the cursor is left unchanged
// ("[ Rule ]") and the failure is not reported — an optional that doesn't
// match is not itself a grammar error.
func (r rule) optional(m matcher, accept func(matched string)) rule {
	if r.failed {
		return r
	}
	before := r.tail
	next := m(rule{tail: r.tail})
	if next.failed {
		return r
	}
	consumed := before[:len(before)-len(next.tail)]
	return rule{
		tail:      next.tail,
		acceptors: appendAcceptors(r.acceptors, next.acceptors, accept, consumed),
	}
}

// matched packages a rule-building function as a matcher, so that a named
// production built from concat/alternative/star/optional can itself be
// used as a component of a parent production. This is the introspection
// hook of §4.D: it is where a sub-rule's consumed range and pending
// acceptors are handed back to the caller atomically.
func matched(build func(rule) rule) matcher {
	return func(r rule) rule {
		return build(r)
	}
}

// done succeeds iff the cursor has not been poisoned and every byte of
// the input has been consumed. On success it runs every queued acceptor,
// in the order its producing sub-rule completed — which, because
// acceptors are only ever appended (never reordered) by concat/star/
// optional/alternative, is also the order those sub-rules appear in the
// input.
func (r rule) done() bool {
	if r.failed || r.tail != "" {
		return false
	}
	for _, a := range r.acceptors {
		a()
	}
	return true
}

// appendAcceptors builds the acceptor list for a rule that has just
// adopted a sub-match: first its own prior acceptors, then the sub-match's
// (both already in enqueue order), then optionally one more for this
// concat/star/optional step's own field-binding accept function.
func appendAcceptors(prior, sub []func(), accept func(string), matchedText string) []func() {
	if accept == nil {
		if len(sub) == 0 {
			return prior
		}
		out := make([]func(), 0, len(prior)+len(sub))
		out = append(out, prior...)
		out = append(out, sub...)
		return out
	}
	out := make([]func(), 0, len(prior)+len(sub)+1)
	out = append(out, prior...)
	out = append(out, sub...)
	text := matchedText
	out = append(out, func() { accept(text) })
	return out
}

// --- terminal matchers -----------------------------------------------

// singleByte matches one byte satisfying pred.
func singleByte(pred func(byte) bool) matcher {
	return func(r rule) rule {
		if r.failed {
			return r
		}
		if len(r.tail) == 0 {
			return failAt(r.tail, &kindError{message: "unexpected end of input"})
		}
		if !pred(r.tail[0]) {
			return failAt(r.tail, &kindError{message: "unexpected character", char: r.tail[0], hasChar: true})
		}
		return rule{tail: r.tail[1:], acceptors: r.acceptors}
	}
}

// literalByte matches a single specific byte.
func literalByte(c byte) matcher {
	return singleByte(func(b byte) bool { return b == c })
}

// byteRange matches a single byte in [lo, hi].
func byteRange(lo, hi byte) matcher {
	return singleByte(func(b byte) bool { return b >= lo && b <= hi })
}

// singleColon matches a ':' that is not immediately followed by another
// ':'. Without this distinction, the h16 ":" production inside an
// IPv6address alternative could consume the first colon of a following
// "::" and misparse addresses like "1::2".
func singleColon(r rule) rule {
	if r.failed {
		return r
	}
	if len(r.tail) == 0 || r.tail[0] != ':' {
		return failAt(r.tail, &kindError{message: "expected ':'"})
	}
	if len(r.tail) > 1 && r.tail[1] == ':' {
		return failAt(r.tail, &kindError{message: "':' is part of '::'"})
	}
	return rule{tail: r.tail[1:], acceptors: r.acceptors}
}

var (
	alpha    = singleByte(isASCIILetter)
	digit    = singleByte(isASCIIDigit)
	hexdig   = singleByte(isHexDigit)
	colon    = literalByte(':')
	solidus  = literalByte('/')
	question = literalByte('?')
	hash     = literalByte('#')
	atSign   = literalByte('@')
	plus     = literalByte('+')
	minus    = literalByte('-')
	fullStop = literalByte('.')
	leftSq   = literalByte('[')
	rightSq  = literalByte(']')
)
