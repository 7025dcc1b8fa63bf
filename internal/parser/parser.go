// Package parser builds ir.Expr trees from the S-expression surface
// syntax (spec.md §6: "a constructed LExpr tree using only Lam, App, Var,
// Lit, BuiltinIdent"). It is a minimal recursive-descent parser: the
// grammar has exactly two compound forms, (lambda (params...) body...) and
// (operator operand...), plus the two atoms symbol and int.
package parser

import (
	"fmt"
	"strconv"

	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/ir"
	"github.com/schemec/schemec/internal/lexer"
)

// ParserError is a structured parser error with a fix suggestion,
// following the same shape as the other pipeline stages' Report errors.
type ParserError struct {
	Code       string
	Message    string
	Pos        ir.Pos
	NearToken  lexer.Token
	Fix        string
	Confidence float64
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Pos, e.Message)
}

func newParserError(code string, pos ir.Pos, near lexer.Token, message, fix string) *ParserError {
	return &ParserError{Code: code, Message: message, Pos: pos, NearToken: near, Fix: fix, Confidence: 0.85}
}

// Parser consumes a token stream from internal/lexer and produces ir.Expr.
type Parser struct {
	l         *lexer.Lexer
	file      string
	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser over already-Normalize'd source.
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) pos() ir.Pos {
	return ir.Pos{File: p.file, Line: p.curToken.Line, Column: p.curToken.Column}
}

// ParseProgram parses a single top-level expression. Extra trailing
// tokens beyond the first complete expression are an error: the core's
// surface language (spec.md §6) has no notion of multiple top-level forms.
func (p *Parser) ParseProgram() (ir.Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.EOF {
		pe := newParserError(errors.PAR001, p.pos(), p.curToken,
			"unexpected trailing input after top-level expression", "remove the extra form, or wrap both in an enclosing application")
		return nil, errors.WrapReport(parserReport(pe))
	}
	return expr, nil
}

func (p *Parser) parseExpr() (ir.Expr, error) {
	switch p.curToken.Type {
	case lexer.INT:
		return p.parseInt()
	case lexer.SYMBOL:
		return p.parseSymbol()
	case lexer.LPAREN:
		return p.parseCompound()
	default:
		pe := newParserError(errors.PAR001, p.pos(), p.curToken,
			fmt.Sprintf("unexpected token %s", p.curToken), "expected an integer, identifier, or '('")
		return nil, errors.WrapReport(parserReport(pe))
	}
}

func (p *Parser) parseInt() (ir.Expr, error) {
	at := p.pos()
	v, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		pe := newParserError(errors.PAR001, at, p.curToken,
			fmt.Sprintf("malformed integer literal %q", p.curToken.Lexeme), "use a decimal integer, e.g. 42 or -7")
		return nil, errors.WrapReport(parserReport(pe))
	}
	p.nextToken()
	return ir.NewIntLit(at, v), nil
}

func (p *Parser) parseSymbol() (ir.Expr, error) {
	at := p.pos()
	name := p.curToken.Lexeme
	p.nextToken()
	return ir.NewVar(at, name), nil
}

// parseCompound parses either a lambda form or an application, both
// introduced by '('.
func (p *Parser) parseCompound() (ir.Expr, error) {
	at := p.pos()
	p.nextToken() // consume '('

	if p.curToken.Type == lexer.LAMBDA {
		return p.parseLambda(at)
	}
	return p.parseApplication(at)
}

func (p *Parser) parseLambda(at ir.Pos) (ir.Expr, error) {
	p.nextToken() // consume 'lambda'

	if p.curToken.Type != lexer.LPAREN {
		pe := newParserError(errors.PAR004, p.pos(), p.curToken,
			"lambda form is missing its parameter list", "write (lambda (params...) body...)")
		return nil, errors.WrapReport(parserReport(pe))
	}
	p.nextToken() // consume '('

	var params []string
	for p.curToken.Type != lexer.RPAREN {
		if p.curToken.Type != lexer.SYMBOL {
			pe := newParserError(errors.PAR003, p.pos(), p.curToken,
				fmt.Sprintf("lambda parameter must be an identifier, got %s", p.curToken), "use a bare identifier, e.g. x")
			return nil, errors.WrapReport(parserReport(pe))
		}
		params = append(params, p.curToken.Lexeme)
		p.nextToken()
	}
	p.nextToken() // consume ')'

	var body []ir.Expr
	for p.curToken.Type != lexer.RPAREN {
		if p.curToken.Type == lexer.EOF {
			return nil, errors.WrapReport(parserReport(newParserError(errors.PAR002, p.pos(), p.curToken,
				"unterminated lambda form", "add a closing ')'")))
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, e)
	}
	p.nextToken() // consume ')'

	return ir.NewLam(at, params, body), nil
}

func (p *Parser) parseApplication(at ir.Pos) (ir.Expr, error) {
	if p.curToken.Type == lexer.RPAREN {
		pe := newParserError(errors.PAR001, p.pos(), p.curToken,
			"empty application has no operator", "an application needs at least an operator, e.g. (f)")
		return nil, errors.WrapReport(parserReport(pe))
	}

	operator, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var operands []ir.Expr
	for p.curToken.Type != lexer.RPAREN {
		if p.curToken.Type == lexer.EOF {
			return nil, errors.WrapReport(parserReport(newParserError(errors.PAR002, p.pos(), p.curToken,
				"unterminated application", "add a closing ')'")))
		}
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	p.nextToken() // consume ')'

	return ir.NewApp(at, operator, operands), nil
}

func parserReport(pe *ParserError) *errors.Report {
	return &errors.Report{
		Schema:  "schemec.error/v1",
		Code:    pe.Code,
		Phase:   errors.PhaseParser,
		Message: pe.Message,
		Span: &errors.Span{
			Start: pe.Pos,
			End:   pe.Pos,
		},
		Fix: &errors.Fix{Suggestion: pe.Fix, Confidence: pe.Confidence},
	}
}
