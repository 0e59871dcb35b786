/*
File: lumen/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// isWhitespace checks if the given byte is a whitespace character. Uses
// Unicode's definition of whitespace, which includes space, tab, newline,
// carriage return, form feed, and vertical tab.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isNumeric checks if the given byte is a numeric digit (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z) or
// underscore, the full set of characters an identifier may start or
// continue with.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter or underscore, false otherwise
func isAlpha(curr byte) bool {
	return 'a' <= curr && curr <= 'z' || 'A' <= curr && curr <= 'Z' || curr == '_'
}

// readIdentifier consumes a maximal run of letters/underscores starting at
// lex.Position, then classifies it as a keyword or a plain identifier.
//
// Parameters:
//   - lex: The lexer to read from; advanced past the identifier on return
//
// Returns:
//   - Token: an IDENT token, or the matching keyword token if the text is
//     reserved
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	position := lex.Position

	for isAlpha(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}

// readNumber consumes a maximal run of ASCII digits starting at
// lex.Position. Lumen has no float literals, so this always yields an INT
// token.
//
// Parameters:
//   - lex: The lexer to read from; advanced past the digits on return
//
// Returns:
//   - Token: an INT token holding the digit run as its literal
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	position := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(INT, lex.Src[position:lex.Position], line, column)
}

// readString consumes the contents of a string literal up to the closing
// quote, or to end of input if the closing quote is missing. No escape
// sequences are recognized; the delimiting quotes themselves are excluded
// from the returned literal.
//
// Parameters:
//   - lex: The lexer positioned at the opening '"'; advanced past the
//     closing '"' (or to EOF) on return
//
// Returns:
//   - Token: a STRING token holding the text between the quotes
func readString(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	position := lex.Position + 1

	for {
		lex.Advance()
		if lex.Current == '"' || lex.Current == 0 {
			break
		}
	}

	literal := lex.Src[position:lex.Position]
	lex.Advance() // consume the closing quote (or step past EOF, harmlessly)
	return NewTokenWithMetadata(STRING, literal, line, column)
}
