package parser

import "errors"

var (
	errUnterminatedQuote  = errors.New("unterminated quoted string")
	errTrailingAfterQuote = errors.New("unexpected characters after closing quote")
	errMissingColon       = errors.New("expected ':' after key")
)
