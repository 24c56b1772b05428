package uri

import "strings"

// applyDotSegmentRules handles rules 2A-2D of RFC 3986 §5.2.4. in is the
// remaining input, output the accumulated segments written so far; when a
// rule fires it returns the new input and output along with true.
func applyDotSegmentRules(in string, output []string) (string, []string, bool) {
	switch {
	case strings.HasPrefix(in, "../"):
		return in[3:], output, true
	case strings.HasPrefix(in, "./"):
		return in[2:], output, true
	case strings.HasPrefix(in, "/./"):
		return "/" + in[3:], output, true
	case in == "/.":
		return "/", output, true
	case strings.HasPrefix(in, "/../") || in == "/..":
		newIn := "/"
		if len(in) > len("/..") {
			newIn += in[4:]
		}
		if len(output) > 0 {
			last := output[len(output)-1]
			output = output[:len(output)-1]
			if len(output) == 0 && !strings.HasPrefix(last, "/") {
				newIn = strings.TrimPrefix(newIn, "/")
			}
		}
		return newIn, output, true
	case in == "." || in == "..":
		return "", output, true
	default:
		return in, output, false
	}
}

// extractFirstSegment handles rule 2E of RFC 3986 §5.2.4: move the leading
// path segment of in (including its separating slash, if any) to the
// front, returning it together with whatever remains.
func extractFirstSegment(in string) (string, string) {
	slashIndex := strings.Index(in, "/")
	if slashIndex == 0 {
		nextSlash := strings.Index(in[1:], "/")
		if nextSlash == -1 {
			return in, ""
		}
		return in[:nextSlash+1], in[nextSlash+1:]
	}
	if slashIndex == -1 {
		return in, ""
	}
	return in[:slashIndex], in[slashIndex:]
}

// removeDotSegmentsString implements the "Remove Dot Segments" algorithm
// of RFC 3986 §5.2.4 on a raw path string.
func removeDotSegmentsString(input string) string {
	var output []string
	in := input
	for len(in) > 0 {
		var applied bool
		in, output, applied = applyDotSegmentRules(in, output)
		if applied {
			continue
		}
		var seg string
		seg, in = extractFirstSegment(in)
		output = append(output, seg)
	}
	return strings.Join(output, "")
}

// RemoveDotSegments implements RFC 3986 §5.2.4: it returns an equivalent
// Path with every "." and ".." segment resolved away. It is idempotent —
// applying it twice yields the same result as applying it once.
func (p Path) RemoveDotSegments() Path {
	normalized := removeDotSegmentsString(p.String())
	return Path{
		Absolute: len(normalized) > 0 && normalized[0] == '/',
		Segments: splitPathSegments(normalized),
	}
}

// splitPathSegments re-derives a Path's Segments slice (each entry
// carrying its own leading slash, matching what the grammar produces)
// from a flat path string.
func splitPathSegments(path string) []string {
	var segs []string
	in := path
	for len(in) > 0 {
		var seg string
		seg, in = extractFirstSegment(in)
		segs = append(segs, seg)
	}
	return segs
}

// mergePaths implements RFC 3986 §5.3's merge step: the reference's path
// is merged with the base's by replacing everything in the base path
// after its last "/" with the reference's path. hasBaseAuthority is
// whether base's Parts carries a non-nil Authority: when it does and the
// base path is empty, the merge result is "/" + ref's path rather than
// just ref's path.
func mergePaths(base Path, ref Path, hasBaseAuthority bool) Path {
	basePath := base.String()
	refPath := ref.String()
	if hasBaseAuthority && basePath == "" {
		return Path{Absolute: true, Segments: splitPathSegments("/" + refPath)}
	}
	lastSlash := strings.LastIndex(basePath, "/")
	if lastSlash == -1 {
		return ref
	}
	merged := basePath[:lastSlash+1] + refPath
	return Path{
		Absolute: len(merged) > 0 && merged[0] == '/',
		Segments: splitPathSegments(merged),
	}
}
