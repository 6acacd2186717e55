package validate

import (
	"net/url"
	"strconv"
	"strings"
)

// ID parses a numeric path identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}

// Price parses a price from a form field.
func Price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// Number accepts a decoded JSON value that may be a number or a numeric
// string, depending on how the client serialized its form state.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		return Price(x)
	default:
		return 0, false
	}
}

// Credentials splits a combined "username&password" path segment at the
// first ampersand. The segment is percent-unescaped first, as the
// original router did.
func Credentials(seg string) (username, password string) {
	if u, err := url.PathUnescape(seg); err == nil {
		seg = u
	}
	if i := strings.IndexByte(seg, '&'); i >= 0 {
		return seg[:i], seg[i+1:]
	}
	return seg, ""
}
