package lexer

// IsIdentStart reports whether c may start a filter identifier, e.g. `eq` in
// `eq('foo')`. Identifiers start with a letter.
func IsIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentPart reports whether c may continue a filter identifier: letters,
// digits, and '-'.
func IsIdentPart(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9') || c == '-'
}

// IsNamePart reports whether c may be part of a capture name:
// [A-Za-z0-9_-].
func IsNamePart(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

// ReadWhile consumes the longest prefix of src whose bytes all satisfy
// pred, returning the prefix and its length.
func ReadWhile(src string, pred func(byte) bool) (string, int) {
	i := 0
	for i < len(src) && pred(src[i]) {
		i++
	}
	return src[:i], i
}
