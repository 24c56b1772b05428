/*
Package uri provides types and functions for parsing, composing, and
normalizing Uniform Resource Identifiers as defined by RFC 3986.

The package is built around a single central value:

  - Parts: the structured decomposition of a parsed URI — scheme,
    authority (userinfo/host/port), path, query, and fragment.

Key operations:

  - Split / SplitReference parse a URI or URI-reference into Parts.
  - Compose / ComposeTo serialize Parts back to text.
  - Join implements RFC 3986 §5.3 reference resolution.
  - Encode / Decode apply RFC 3986 percent-encoding to the userinfo,
    path segments, query and fragment of a Parts (and RFC 3492 Punycode
    to the host), producing a new Parts backed by a caller-owned Store.
    Scheme and port are left as they are.
  - Path.RemoveDotSegments implements RFC 3986 §5.2.4.

This package covers RFC 3986 URI syntax only: Split and SplitReference
accept 7-bit ASCII text. A Parts built directly, or returned by Decode,
may carry non-ASCII bytes; Encode turns them back into percent-encoded
text, or, in the host, into Punycode labels through the sibling punycode
package.
*/
package uri
