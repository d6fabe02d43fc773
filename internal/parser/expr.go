package parser

import (
	"github.com/ember-lang/emberc/internal/ast"
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// parseBlock parses '{' (Statement ';'?)* '}'. A bare block, or a
// conditional whose then-branch is a block and whose else-branch is absent
// or a block (IfExpr.SemicolonRequired false), does not require a trailing
// ';'; any other statement does, unless it is directly followed by '}'.
func (p *Parser) parseBlock() *ast.BlockExpr {
	open, ok := p.expect(token.LBrace)
	if !ok {
		return nil
	}

	var stmts []ast.Stmt
	for {
		if p.last().Kind == token.RBrace {
			close := p.pop()
			return ast.NewBlockExpr(stmts, open.Span.Cover(close.Span))
		}
		if p.atEnd() {
			p.ctx.Push(unclosedDelimiter(p.last(), token.RBrace, open.Span))
			return ast.NewBlockExpr(stmts, open.Span.Cover(p.last().Span))
		}

		stmt := p.parseStatement()
		if stmt == nil {
			p.skipToAny(token.Semicolon, token.RBrace)
			if p.last().Kind == token.Semicolon {
				p.pop()
			}
			continue
		}
		stmts = append(stmts, stmt)

		if p.last().Kind == token.Semicolon {
			p.pop()
			continue
		}
		if requiresSemicolon(stmt) && p.last().Kind != token.RBrace {
			p.ctx.Push(expectedToken(p.last(), token.Semicolon))
		}
	}
}

// requiresSemicolon reports whether stmt needs a trailing ';' to
// terminate it inside a block.
func requiresSemicolon(stmt ast.Stmt) bool {
	if _, ok := stmt.(*ast.VarDecl); ok {
		return true
	}
	switch n := stmt.(type) {
	case *ast.BlockExpr:
		return false
	case *ast.IfExpr:
		return n.SemicolonRequired
	case ast.Expr:
		return true
	default:
		return true
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	if p.last().Kind == token.KwConst || p.last().Kind == token.KwVar {
		decl := p.parseVarDecl(false, nil)
		if decl == nil {
			return nil
		}
		return decl
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return expr
}

// parseExpression parses a full expression via precedence climbing,
// starting at the lowest binding power.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnaryOrPrimary()
	if left == nil {
		return nil
	}

	for {
		tok := p.last()
		if tok.Kind != token.Operator {
			break
		}
		info := token.Info(tok.Op)
		if !info.Binary || info.BinaryPrec < minPrec {
			break
		}
		p.pop()

		nextMin := info.BinaryPrec + 1
		if info.BinaryAssoc == token.RightAssoc {
			nextMin = info.BinaryPrec
		}

		right := p.parseBinary(nextMin)
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(tok.Op, left, right, left.Span().Cover(right.Span()))
	}

	return left
}

// parseUnaryOrPrimary parses an optional chain of prefix unary operators
// ('*', '&', '-', '!') around a primary, binding tighter than every
// binary operator per the precedence table.
func (p *Parser) parseUnaryOrPrimary() ast.Expr {
	tok := p.last()
	if tok.Kind == token.Operator && token.Info(tok.Op).UnaryPrefix {
		p.pop()
		operand := p.parseUnaryOrPrimary()
		if operand == nil {
			return nil
		}
		return ast.NewUnaryExpr(tok.Op, operand, tok.Span.Cover(operand.Span()))
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.last()

	switch {
	case tok.Kind == token.Int:
		p.pop()
		return ast.NewIntLit(tok.Int, tok.Span)

	case tok.Kind == token.KwTrue:
		p.pop()
		return ast.NewBoolLit(true, tok.Span)

	case tok.Kind == token.KwFalse:
		p.pop()
		return ast.NewBoolLit(false, tok.Span)

	case tok.Kind == token.KwUndefined:
		p.pop()
		return ast.NewUndefinedLit(tok.Span)

	case tok.Kind == token.Ident:
		p.pop()
		if p.last().Kind == token.LParen {
			open := p.pop()
			callee := ast.NewVarExpr(tok.Text, tok.Span)
			args, closeSpan, ok := p.parseCallArgs(open.Span)
			if !ok {
				return nil
			}
			return ast.NewCallExpr(callee, args, tok.Span.Cover(closeSpan))
		}
		return ast.NewVarExpr(tok.Text, tok.Span)

	case tok.Kind == token.LParen:
		return p.parseParenExpr(tok)

	case tok.Kind == token.LBrace:
		block := p.parseBlock()
		if block == nil {
			return nil
		}
		return block

	case tok.Kind == token.KwIf:
		return p.parseIfExpr()

	case tok.Kind == token.KwReturn:
		return p.parseReturnExpr()

	default:
		p.ctx.Push(expectedPrimary(tok))
		return nil
	}
}

func (p *Parser) parseParenExpr(open token.Token) ast.Expr {
	p.pop()
	inner := p.parseExpression()
	if inner == nil {
		return nil
	}
	if p.last().Kind != token.RParen {
		p.ctx.Push(unclosedDelimiter(p.last(), token.RParen, open.Span))
		return nil
	}
	close := p.pop()
	return ast.NewParenExpr(inner, open.Span, open.Span.Cover(close.Span))
}

// parseCallArgs parses a comma-separated, optionally trailing-comma
// argument list up to and including the closing ')'.
func (p *Parser) parseCallArgs(openSpan source.Span) ([]ast.Expr, source.Span, bool) {
	var args []ast.Expr

	if p.last().Kind == token.RParen {
		close := p.pop()
		return args, close.Span, true
	}

	for {
		arg := p.parseExpression()
		if arg == nil {
			p.ctx.Push(unclosedDelimiter(p.last(), token.RParen, openSpan))
			return args, openSpan, false
		}
		args = append(args, arg)

		switch p.last().Kind {
		case token.Comma:
			p.pop()
			if p.last().Kind == token.RParen {
				close := p.pop()
				return args, close.Span, true
			}
		case token.RParen:
			close := p.pop()
			return args, close.Span, true
		default:
			p.ctx.Push(unclosedDelimiter(p.last(), token.RParen, openSpan))
			return args, openSpan, false
		}
	}
}

// parseIfExpr parses 'if' Cond Then ('else' Else)?. An unparenthesized
// condition whose then-branch is not a block produces a warning, since
// the conditional's extent would otherwise be ambiguous to a reader.
func (p *Parser) parseIfExpr() ast.Expr {
	kw := p.pop()
	parenthesized := p.last().Kind == token.LParen

	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	then := p.parseExpression()
	if then == nil {
		return nil
	}
	if !parenthesized {
		if _, isBlock := then.(*ast.BlockExpr); !isBlock {
			p.ctx.Push(unparenthesizedCondition(cond.Span()))
		}
	}

	span := kw.Span.Cover(then.Span())
	var els ast.Expr
	if p.last().Kind == token.KwElse {
		p.pop()
		els = p.parseExpression()
		if els == nil {
			return nil
		}
		span = kw.Span.Cover(els.Span())
	}

	_, thenIsBlock := then.(*ast.BlockExpr)
	_, elseIsBlock := els.(*ast.BlockExpr)
	semicolonRequired := !(thenIsBlock && (els == nil || elseIsBlock))

	return ast.NewIfExpr(cond, then, els, semicolonRequired, span)
}

// parseReturnExpr parses 'return' Expression?, where the value is
// omitted when the next token cannot start an expression.
func (p *Parser) parseReturnExpr() ast.Expr {
	kw := p.pop()
	if !startsExpression(p.last()) {
		return ast.NewReturnExpr(nil, kw.Span)
	}
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return ast.NewReturnExpr(value, kw.Span.Cover(value.Span()))
}

// startsExpression reports whether tok can begin a primary.
func startsExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.Int, token.KwTrue, token.KwFalse, token.KwUndefined,
		token.Ident, token.LParen, token.LBrace, token.KwIf, token.KwReturn:
		return true
	case token.Operator:
		return token.Info(tok.Op).UnaryPrefix
	default:
		return false
	}
}
