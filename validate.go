package toon

import (
	"fmt"
	"strings"

	"github.com/toon-go/toon/errors"
	"github.com/toon-go/toon/parser"
	"github.com/toon-go/toon/scanner"
	"github.com/toon-go/toon/token"
)

// assertExpectedCount is spec.md §4.8 "assert_expected_count": strict-only
// comparison of a declared array length against what was actually parsed.
func assertExpectedCount(strict bool, actual, expected int, what string, line scanner.ParsedLine) error {
	if !strict || actual == expected {
		return nil
	}
	return errors.ErrRange(
		fmt.Sprintf("declared %s length %d but found %d", what, expected, actual),
		line.LineNumber, 1, line.Raw)
}

// validateNoExtraListItem is spec.md §4.8
// "validate_no_extra_list_items": after the declared item count has been
// read, the next same-depth line must not itself be a list item.
func validateNoExtraListItem(strict bool, line scanner.ParsedLine) error {
	if !strict {
		return nil
	}
	return errors.ErrValidation(
		"unexpected list item beyond the declared array length",
		line.LineNumber, 1, line.Raw)
}

// validateNoExtraTabularRow is spec.md §4.8
// "validate_no_extra_tabular_rows": after the declared row count has been
// read, a same-depth line is only tolerated if it is not itself a data
// row (a data row has its first delimiter occurrence before any colon).
func validateNoExtraTabularRow(strict bool, line scanner.ParsedLine, delim token.Delimiter) error {
	if !strict || !looksLikeDataRow(line.Content, delim) {
		return nil
	}
	return errors.ErrValidation(
		"unexpected data row beyond the declared array length",
		line.LineNumber, 1, line.Raw)
}

// validateHeaderFieldDelimiterConsistency catches a header whose {fields}
// list was clearly split with a different delimiter than the bracket
// declares, e.g. "[1]{a|b}: 1" under the default comma delimiter: field
// "a|b" was meant to be two pipe-separated fields, not one field literally
// named "a|b" (spec.md §7 "header/data delimiter mismatch (strict)").
func validateHeaderFieldDelimiterConsistency(strict bool, h *parser.ArrayHeader, line scanner.ParsedLine) error {
	if !strict {
		return nil
	}
	for i, f := range h.Fields {
		if i < len(h.FieldsQuoted) && h.FieldsQuoted[i] {
			continue
		}
		for _, d := range [...]token.Delimiter{token.DelimiterComma, token.DelimiterTab, token.DelimiterPipe} {
			if d == h.Delimiter {
				continue
			}
			if strings.ContainsRune(f, d.Rune()) {
				return errors.ErrValidation(
					"array header field delimiter does not match the bracket delimiter",
					line.LineNumber, 1, line.Raw)
			}
		}
	}
	return nil
}

// validateNoBlankLinesInRange is spec.md §4.8
// "validate_no_blank_lines_in_range": strict mode forbids any blank line
// strictly between an array's header line and the last line of its body,
// regardless of the blank line's own depth.
func validateNoBlankLinesInRange(strict bool, blanks []scanner.BlankLine, start, end int) error {
	if !strict {
		return nil
	}
	for _, b := range blanks {
		if b.LineNumber > start && b.LineNumber < end {
			return errors.ErrValidation(
				"blank line not allowed inside an array body", b.LineNumber, 1, "")
		}
	}
	return nil
}
