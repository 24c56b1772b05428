package uri

func isASCIILetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isASCIIDigit(b byte) bool  { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isUnreserved is RFC 3986 §2.3.
func isUnreserved(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

// isSubDelims is RFC 3986 §2.2.
func isSubDelims(b byte) bool {
	switch b {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
