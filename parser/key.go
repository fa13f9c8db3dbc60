package parser

import (
	"strings"

	"github.com/toon-go/toon/token"
)

// ParseKeyToken recognizes a key at content[start:], returning the decoded
// key, the index immediately after the terminating colon, and whether the
// source token was quoted (spec.md §4.6). err is non-nil only for a
// malformed quoted key (unterminated quote, or a quote not immediately
// followed by ':'); an unquoted key with no colon at all is reported via
// ok=false, since that is simply "not a key/value line" rather than a
// syntax error.
func ParseKeyToken(content string, start int) (key string, end int, quoted bool, ok bool, err error) {
	if start >= len(content) {
		return "", start, false, false, nil
	}
	if content[start] == '"' {
		closeIdx := token.FindClosingQuote(content, start+1)
		if closeIdx < 0 {
			return "", start, false, false, errUnterminatedQuote
		}
		unescaped, uerr := token.Unescape(content[start+1 : closeIdx])
		if uerr != nil {
			return "", start, false, false, uerr
		}
		colonIdx := closeIdx + 1
		if colonIdx >= len(content) || content[colonIdx] != ':' {
			return "", start, false, false, errMissingColon
		}
		return unescaped, colonIdx + 1, true, true, nil
	}

	colonIdx := token.FindUnquotedChar(content, ':', start)
	if colonIdx < 0 {
		return "", start, false, false, nil
	}
	key = strings.TrimSpace(content[start:colonIdx])
	return key, colonIdx + 1, false, true, nil
}
