/*
File    : lumen/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as a top-down operator
precedence parser) for the Lumen programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (infix, prefix, literals, identifiers)
- Statements (let/return declarations, expression statements)
- Functions (literals and calls)
- Arrays (literals and indexing)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Operator precedence handling via a token-to-precedence table
- Error collection (doesn't panic on the first error)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
)

// Operator precedence constants, weakest to strongest. Higher number = higher
// precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Equality operators (==, !=)
//  2. Relational operators (<, >)
//  3. Additive operators (+, -)
//  4. Multiplicative operators (*, /)
//  5. Prefix operators (-x, !x)
//  6. Call/index operators (fn(x), arr[x])
//
// Example: in "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // < or >
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x or !x
	CALL        // fn(x) or arr[x]
)

// precedences maps each infix-capable token kind to its binding precedence.
// Tokens absent from this table bind at LOWEST, which is what stops the
// Pratt loop from consuming them as infix operators.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: CALL,
}

// unaryParseFunction is a function type for parsing unary/prefix expressions
// and literals — the token under CurrToken starts the expression with no
// left-hand side to combine with.
type unaryParseFunction func() ast.Expression

// binaryParseFunction is a function type for parsing binary/infix
// expressions: given the already-parsed left-hand side, it consumes the
// operator and right-hand side.
type binaryParseFunction func(ast.Expression) ast.Expression

// Parser represents the parser state and configuration. It maintains all
// the information needed to parse Lumen source code into an Abstract Syntax
// Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing. These maps associate token types
	// with their parsing functions.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix/unary operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/infix operators

	// Errors collects parsing errors instead of panicking. This allows
	// reporting multiple errors in a single parse.
	Errors []string
}

// NewParser creates and initializes a new Parser for the given source code.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Lumen source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation. Call Parse() to
// begin parsing the source code.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.init()
	return par
}

// init initializes the parser's internal state. This function sets up:
//  1. Function maps for Pratt parsing
//  2. Error collection
//  3. Initial token lookahead
//
// The function registers parsing functions for every token that can start
// or continue an expression, establishing the grammar of the Lumen
// language.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Identifiers, literals: name, 42, "text", true/false
	par.registerUnaryFuncs(par.parseIdentifier, lexer.IDENT)
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING)
	par.registerUnaryFuncs(par.parseBoolean, lexer.TRUE, lexer.FALSE)

	// Prefix operators: !x, -x
	par.registerUnaryFuncs(par.parsePrefixExpression, lexer.BANG, lexer.MINUS)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LPAREN)

	// Control flow: if (cond) { ... } else { ... }
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF)

	// Function literals: fn(params) { body }
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNCTION)

	// Array literals: [1, 2, 3]
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LBRACKET)

	// Arithmetic and comparison operators: + - * / < > == !=
	par.registerBinaryFuncs(par.parseInfixExpression,
		lexer.PLUS, lexer.MINUS, lexer.SLASH, lexer.ASTERISK,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT)

	// Call expressions: fn(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LPAREN)

	// Index expressions: arr[idx]
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LBRACKET)

	// Prime the token lookahead by advancing twice.
	// After this, CurrToken and NextToken are both valid.
	par.advance()
	par.advance()
}

// registerUnaryFuncs associates f with every token type in tokenTypes in
// the UnaryFuncs dispatch table.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		par.UnaryFuncs[t] = f
	}
}

// registerBinaryFuncs associates f with every token type in tokenTypes in
// the BinaryFuncs dispatch table.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		par.BinaryFuncs[t] = f
	}
}

// advance moves the parser forward by one token. This implements the token
// lookahead mechanism:
//   - CurrToken becomes NextToken
//   - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions based on the
// current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currIs reports whether CurrToken is of type t.
func (par *Parser) currIs(t lexer.TokenType) bool { return par.CurrToken.Type == t }

// nextIs reports whether NextToken is of type t.
func (par *Parser) nextIs(t lexer.TokenType) bool { return par.NextToken.Type == t }

// expectAdvance checks if the next token matches the expected type, and if
// so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a closing paren next, and
// if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type. If not, it
// adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks. Use
// expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("expected next token to be %s, got %s instead", expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// noUnaryFuncError records that no unary (prefix) parse function is
// registered for t — the token cannot start an expression.
func (par *Parser) noUnaryFuncError(t lexer.TokenType) {
	par.addError(fmt.Sprintf("no prefix parse function for %s found", t))
}

// addError adds an error message to the parser's error list. The parser
// collects errors instead of panicking, allowing it to report multiple
// errors from a single parse.
//
// Parameters:
//
//	msg - The error message to add
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are parsing errors. This should be
// checked after parsing to determine if the parse was successful.
//
// Returns:
//
//	true if there are any errors, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing. This
// allows the caller to display all errors to the user.
//
// Returns:
//
//	A slice of error message strings
func (par *Parser) GetErrors() []string {
	return par.Errors
}

func (par *Parser) peekPrecedence() int {
	if pr, ok := precedences[par.NextToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (par *Parser) currPrecedence() int {
	if pr, ok := precedences[par.CurrToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the file (EOF),
// building up an ast.Program that contains all the parsed statements.
//
// Returns:
//
//	A pointer to an ast.Program containing every top-level statement
//
// A let statement that fails to parse is omitted from the result; other
// statements are kept with whatever part of them did parse (possibly a nil
// expression). Parsing continues from the next token so a single bad
// statement does not abort the rest of the input. Callers must check GetErrors() after Parse;
// evaluating a Program produced alongside a non-empty error list is
// undefined.
func (par *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !par.currIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}

func (par *Parser) parseStatement() ast.Statement {
	switch par.CurrToken.Type {
	case lexer.LET:
		return par.parseLetStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

func (par *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: par.CurrToken}

	if !par.expectAdvance(lexer.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.ASSIGN) {
		return nil
	}

	par.advance()
	stmt.Value = par.parseExpression(LOWEST)

	if par.nextIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: par.CurrToken}

	par.advance()
	stmt.ReturnValue = par.parseExpression(LOWEST)

	if par.nextIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: par.CurrToken}

	stmt.Expression = par.parseExpression(LOWEST)

	if par.nextIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

// parseExpression is the Pratt-parsing core: dispatch to the unary handler
// for CurrToken, then keep folding in binary operators whose precedence
// beats precedence, left-associatively.
func (par *Parser) parseExpression(precedence int) ast.Expression {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.noUnaryFuncError(par.CurrToken.Type)
		return nil
	}
	left := unary()

	for !par.nextIs(lexer.SEMICOLON) && precedence < par.peekPrecedence() {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

func (par *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: par.CurrToken}

	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("could not parse %q as integer", par.CurrToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

func (par *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: par.CurrToken, Value: par.currIs(lexer.TRUE)}
}

func (par *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    par.CurrToken,
		Operator: par.CurrToken.Literal,
	}

	par.advance()
	expression.Right = par.parseExpression(PREFIX)

	return expression
}

func (par *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    par.CurrToken,
		Operator: par.CurrToken.Literal,
		Left:     left,
	}

	precedence := par.currPrecedence()
	par.advance()
	expression.Right = par.parseExpression(precedence)

	return expression
}

func (par *Parser) parseGroupedExpression() ast.Expression {
	par.advance()

	exp := par.parseExpression(LOWEST)

	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}

	return exp
}

func (par *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}

	par.advance()
	expression.Condition = par.parseExpression(LOWEST)

	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}

	expression.Consequence = par.parseBlockStatement()

	if par.nextIs(lexer.ELSE) {
		par.advance()

		if !par.expectAdvance(lexer.LBRACE) {
			return nil
		}

		expression.Alternative = par.parseBlockStatement()
	}

	return expression
}

func (par *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: par.CurrToken, Statements: []ast.Statement{}}

	par.advance()

	for !par.currIs(lexer.RBRACE) && !par.currIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}

func (par *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}

	lit.Parameters = par.parseFunctionParameters()

	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}

	lit.Body = par.parseBlockStatement()

	return lit
}

func (par *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if par.nextIs(lexer.RPAREN) {
		par.advance()
		return identifiers
	}

	par.advance()
	identifiers = append(identifiers, &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal})

	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		identifiers = append(identifiers, &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal})
	}

	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}

	return identifiers
}

func (par *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: par.CurrToken, Function: function}
	exp.Arguments = par.parseExpressionList(lexer.RPAREN)
	return exp
}

func (par *Parser) parseArrayLiteral() ast.Expression {
	array := &ast.ArrayLiteral{Token: par.CurrToken}
	array.Elements = par.parseExpressionList(lexer.RBRACKET)
	return array
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by end, shared between call-argument lists and array
// literals.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if par.nextIs(end) {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(LOWEST))

	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(LOWEST))
	}

	if !par.expectAdvance(end) {
		return nil
	}

	return list
}

func (par *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: par.CurrToken, Left: left}

	par.advance()
	exp.Index = par.parseExpression(LOWEST)

	if !par.expectAdvance(lexer.RBRACKET) {
		return nil
	}

	return exp
}
