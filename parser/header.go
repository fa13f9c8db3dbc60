package parser

import (
	"strconv"
	"strings"

	"github.com/toon-go/toon/token"
)

// ArrayHeader is the parsed form of a line of shape
// key?[len<delim>?]{fields}?: tail? (spec.md §3 "Array header").
type ArrayHeader struct {
	HasKey       bool
	Key          string
	KeyQuoted    bool
	Length       int
	LengthMarker bool
	Delimiter    token.Delimiter
	Fields       []string // nil when the header has no {fields}
	FieldsQuoted []bool
	HeaderEnd    int    // index into the source content right after ':'
	Tail         string // trimmed text after ':'; "" if nothing follows
}

// ParseArrayHeaderLine attempts to recognize content as an array header.
// ok is false (with err nil) when content simply does not have the header
// shape; that is not a parse error; it is the caller's signal to try
// parsing content as a key/value line instead (spec.md §4.6: "If the line
// does not match the full header shape, the function returns no-match").
func ParseArrayHeaderLine(content string, defaultDelimiter token.Delimiter) (*ArrayHeader, bool, error) {
	n := len(content)
	i := 0
	h := &ArrayHeader{}

	if n > 0 && content[0] == '"' {
		closeIdx := token.FindClosingQuote(content, 1)
		if closeIdx < 0 || closeIdx+1 >= n || content[closeIdx+1] != '[' {
			return nil, false, nil
		}
		unescaped, err := token.Unescape(content[1:closeIdx])
		if err != nil {
			return nil, false, nil
		}
		h.HasKey = true
		h.KeyQuoted = true
		h.Key = unescaped
		i = closeIdx + 1
	} else if n > 0 && content[0] == '[' {
		i = 0
	} else {
		bracketIdx := strings.IndexByte(content, '[')
		if bracketIdx <= 0 {
			return nil, false, nil
		}
		candidate := content[:bracketIdx]
		if strings.ContainsAny(candidate, ":\"{}") {
			return nil, false, nil
		}
		h.HasKey = true
		h.Key = candidate
		i = bracketIdx
	}

	if i >= n || content[i] != '[' {
		return nil, false, nil
	}
	closeBracket := strings.IndexByte(content[i:], ']')
	if closeBracket < 0 {
		return nil, false, nil
	}
	closeBracket += i
	inner := content[i+1 : closeBracket]

	if strings.HasPrefix(inner, "#") {
		h.LengthMarker = true
		inner = inner[1:]
	}
	delim := defaultDelimiter
	if len(inner) > 0 {
		last := rune(inner[len(inner)-1])
		if last == '\t' || last == '|' {
			d, _ := token.DelimiterFromRune(last)
			delim = d
			inner = inner[:len(inner)-1]
		}
	}
	if inner == "" {
		return nil, false, nil
	}
	length, err := strconv.Atoi(inner)
	if err != nil || length < 0 {
		return nil, false, nil
	}
	h.Length = length
	h.Delimiter = delim

	pos := closeBracket + 1
	if pos < n && content[pos] == '{' {
		closeBrace := strings.IndexByte(content[pos:], '}')
		if closeBrace < 0 {
			return nil, false, nil
		}
		closeBrace += pos
		fields, quoted, ferr := parseFieldList(content[pos+1:closeBrace], delim)
		if ferr != nil {
			return nil, false, nil
		}
		h.Fields = fields
		h.FieldsQuoted = quoted
		pos = closeBrace + 1
	}

	if pos >= n || content[pos] != ':' {
		return nil, false, nil
	}
	pos++
	h.HeaderEnd = pos
	h.Tail = strings.TrimSpace(content[pos:])
	return h, true, nil
}

func parseFieldList(inner string, delim token.Delimiter) ([]string, []bool, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, nil, nil
	}
	raw := ParseDelimitedValues(inner, delim)
	fields := make([]string, len(raw))
	quoted := make([]bool, len(raw))
	for idx, r := range raw {
		r = strings.TrimSpace(r)
		if len(r) >= 2 && r[0] == '"' && r[len(r)-1] == '"' {
			unescaped, err := token.Unescape(r[1 : len(r)-1])
			if err != nil {
				return nil, nil, err
			}
			fields[idx] = unescaped
			quoted[idx] = true
			continue
		}
		fields[idx] = r
	}
	return fields, quoted, nil
}
