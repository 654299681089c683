// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"errors"
	"go/scanner"
	"go/token"
	"strconv"
)

// The declaration grammar is
//
//	invocation  = literal | declaration { declaration }
//	declaration = [ "pub" ] identifier "=" literal ";"
//	literal     = string_lit { "+" string_lit }
//
// Every declaration of an invocation must have the same visibility.

const qualifier = "pub"

type lexeme struct {
	pos token.Pos
	tok token.Token
	lit string
}

type declParser struct {
	file   *token.File
	tokens []lexeme
	index  int
	errors scanner.ErrorList
}

// Parse parses declarations or a bare literal from src. The returned error is
// a [scanner.ErrorList] when the input is malformed.
func Parse(filename string, src []byte) (*Invocation, error) {
	p := new(declParser)
	p.file = token.NewFileSet().AddFile(filename, -1, len(src))

	var s scanner.Scanner
	s.Init(p.file, src, p.errors.Add, 0)
	for {
		pos, tok, lit := s.Scan()
		p.tokens = append(p.tokens, lexeme{pos, tok, lit})
		if tok == token.EOF {
			break
		}
	}
	if err := p.errors.Err(); err != nil {
		return nil, err
	}

	inv, ok := p.parseInvocation()
	if !ok {
		return nil, p.errors.Err()
	}
	return inv, nil
}

// ParseExpr parses a single bare literal.
func ParseExpr(src string) (string, error) {
	inv, err := Parse("", []byte(src))
	if err != nil {
		return "", err
	}
	if inv.Literal == nil {
		return "", errors.New("expected a literal, got declarations")
	}
	return *inv.Literal, nil
}

func (p *declParser) peek(n int) lexeme {
	if p.index+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.index+n]
}

func (p *declParser) next() lexeme {
	l := p.peek(0)
	if l.tok != token.EOF {
		p.index++
	}
	return l
}

func (p *declParser) error(pos token.Pos, msg string) bool {
	p.errors.Add(p.file.Position(pos), msg)
	return false
}

func (p *declParser) expect(l lexeme, what string) bool {
	switch {
	case l.tok == token.EOF:
		return p.error(l.pos, "expected "+what+", found end of input")
	case l.tok == token.SEMICOLON && l.lit == "\n":
		return p.error(l.pos, "expected "+what+", found newline")
	case l.lit != "":
		return p.error(l.pos, "expected "+what+", found "+strconv.Quote(l.lit))
	default:
		return p.error(l.pos, "expected "+what+", found "+l.tok.String())
	}
}

func (p *declParser) parseInvocation() (*Invocation, bool) {
	if p.peek(0).tok == token.EOF {
		p.expect(p.peek(0), "declaration or literal")
		return nil, false
	}

	if p.peek(0).tok == token.STRING {
		value, ok := p.parseLiteral()
		if !ok {
			return nil, false
		}

		// A bare literal may be followed by a separator, nothing else
		if p.peek(0).tok == token.SEMICOLON {
			p.next()
		}
		if l := p.next(); l.tok != token.EOF {
			return nil, p.expect(l, "end of input after literal")
		}
		return &Invocation{Literal: &value}, true
	}

	inv := new(Invocation)
	for p.peek(0).tok != token.EOF {
		decl, ok := p.parseDeclaration()
		if !ok {
			return nil, false
		}

		if len(inv.Declarations) > 0 && inv.Declarations[0].Exported != decl.Exported {
			p.errors.Add(decl.Pos, "mixed visibility: "+describe(inv.Declarations[0])+" but "+describe(decl))
			return nil, false
		}
		inv.Declarations = append(inv.Declarations, decl)
	}
	return inv, true
}

func describe(d *Declaration) string {
	if d.Exported {
		return strconv.Quote(d.Name) + " is " + qualifier
	}
	return strconv.Quote(d.Name) + " is not " + qualifier
}

func (p *declParser) parseDeclaration() (*Declaration, bool) {
	decl := new(Declaration)
	start := p.peek(0)

	if start.tok == token.IDENT && start.lit == qualifier && p.peek(1).tok == token.IDENT {
		decl.Exported = true
		p.next()
	}

	name := p.next()
	if name.tok != token.IDENT {
		return nil, p.expect(name, "identifier")
	}
	decl.Name = name.lit
	decl.Pos = p.file.Position(start.pos)

	if l := p.next(); l.tok != token.ASSIGN {
		return nil, p.expect(l, "=")
	}

	value, ok := p.parseLiteral()
	if !ok {
		return nil, false
	}
	decl.Value = value

	// Automatic semicolons (inserted at a newline or the end of input) do not
	// count as separators
	if l := p.next(); l.tok != token.SEMICOLON || l.lit != ";" {
		return nil, p.expect(l, "; after declaration of "+strconv.Quote(decl.Name))
	}
	return decl, true
}

func (p *declParser) parseLiteral() (string, bool) {
	var value string
	for {
		l := p.next()
		if l.tok != token.STRING {
			return "", p.expect(l, "string literal")
		}
		s, err := strconv.Unquote(l.lit)
		if err != nil {
			return "", p.error(l.pos, "invalid string literal: "+err.Error())
		}
		value += s

		if p.peek(0).tok != token.ADD {
			return value, true
		}
		p.next()
	}
}
