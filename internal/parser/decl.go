package parser

import (
	"github.com/ember-lang/emberc/internal/ast"
	"github.com/ember-lang/emberc/internal/token"
)

// parseSourceFile parses a whole compilation unit: 'package' QualIdent,
// zero or more import clauses, then a run of top-level declarations
// terminated by EOF. A bad top-level declaration resynchronizes at the
// next declaration-starting keyword rather than aborting the file.
func (p *Parser) parseSourceFile() *ast.SourceFile {
	pkg := p.parsePackageDecl()
	startSpan := p.last().Span
	if pkg != nil {
		startSpan = pkg.Span()
	}

	var imports []*ast.ImportDecl
	for p.last().Kind == token.KwImport {
		imp := p.parseImportDecl()
		if imp == nil {
			p.synchronizeTopLevel()
			continue
		}
		imports = append(imports, imp)
	}

	var decls []ast.Decl
loop:
	for {
		res := p.parseTopLevelDecl()
		switch res.status {
		case statusGood:
			decls = append(decls, res.value)
		case statusNotComplete:
			break loop
		case statusError:
			p.synchronizeTopLevel()
		}
	}

	eof := p.pop()
	return ast.NewSourceFile(pkg, imports, decls, startSpan.Cover(eof.Span))
}

// synchronizeTopLevel discards tokens until one that can start a fresh
// top-level declaration, or EOF.
func (p *Parser) synchronizeTopLevel() {
	p.skipToAny(token.KwFn, token.KwConst, token.KwVar, token.KwPub, token.KwImport)
}

func (p *Parser) parsePackageDecl() *ast.PackageDecl {
	kw, ok := p.expect(token.KwPackage)
	if !ok {
		return nil
	}
	name := p.parseQualIdent()
	if name == nil {
		return nil
	}
	return ast.NewPackageDecl(name, kw.Span.Cover(name.Span()))
}

func (p *Parser) parseQualIdent() *ast.QualIdent {
	first, ok := p.expect(token.Ident)
	if !ok {
		return nil
	}
	parts := []*ast.Ident{ast.NewIdent(first.Text, first.Span)}
	span := first.Span

	for p.last().Kind == token.Operator && p.last().Op == token.OpDot {
		p.pop()
		next, ok := p.expect(token.Ident)
		if !ok {
			break
		}
		parts = append(parts, ast.NewIdent(next.Text, next.Span))
		span = span.Cover(next.Span)
	}

	return ast.NewQualIdent(parts, span)
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	kw, ok := p.expect(token.KwImport)
	if !ok {
		return nil
	}
	path := p.parseQualIdent()
	if path == nil {
		return nil
	}
	span := kw.Span.Cover(path.Span())

	var alias *ast.Ident
	if p.last().Kind == token.KwAs {
		p.pop()
		aliasTok, ok := p.expect(token.Ident)
		if ok {
			alias = ast.NewIdent(aliasTok.Text, aliasTok.Span)
			span = span.Cover(alias.Span())
		}
	}

	return ast.NewImportDecl(path, alias, span)
}

// parseTopLevelDecl parses one 'pub'? Decl. A NotComplete outcome restores
// a bare 'pub' consumed right before EOF so the caller sees a clean stop.
func (p *Parser) parseTopLevelDecl() result[ast.Decl] {
	if p.atEnd() {
		return notComplete[ast.Decl]()
	}

	var pubTok *token.Token
	if p.last().Kind == token.KwPub {
		tok := p.pop()
		pubTok = &tok
	}

	if p.atEnd() {
		if pubTok != nil {
			p.restore([]token.Token{*pubTok})
		}
		return notComplete[ast.Decl]()
	}

	pub := pubTok != nil

	switch p.last().Kind {
	case token.KwFn:
		fn := p.parseFnDecl(pub, pubTok)
		if fn == nil {
			return errorResult[ast.Decl]()
		}
		return good[ast.Decl](fn)
	case token.KwConst, token.KwVar:
		v := p.parseVarDecl(pub, pubTok)
		if v == nil {
			return errorResult[ast.Decl]()
		}
		if p.last().Kind == token.Semicolon {
			p.pop()
		}
		return good[ast.Decl](v)
	default:
		p.ctx.Push(expectedToken(p.last(), token.KwFn, token.KwConst, token.KwVar))
		return errorResult[ast.Decl]()
	}
}

func (p *Parser) parseFnDecl(pub bool, pubTok *token.Token) *ast.FnDecl {
	kw, ok := p.expect(token.KwFn)
	if !ok {
		return nil
	}
	startSpan := kw.Span
	if pubTok != nil {
		startSpan = pubTok.Span
	}

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return nil
	}
	name := ast.NewIdent(nameTok.Text, nameTok.Span)

	if _, ok := p.expect(token.LParen); !ok {
		return nil
	}
	params := p.parseParamList()

	returnType := p.parseType()
	if returnType == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewFnDecl(pub, name, params, returnType, body, startSpan.Cover(body.Span()))
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param

	if p.last().Kind == token.RParen {
		p.pop()
		return params
	}

	for {
		nameTok, ok := p.expect(token.Ident)
		if !ok {
			p.recoverParamList()
			return params
		}
		if _, ok := p.expect(token.Colon); !ok {
			p.recoverParamList()
			return params
		}
		typ := p.parseType()
		if typ == nil {
			p.recoverParamList()
			return params
		}

		name := ast.NewIdent(nameTok.Text, nameTok.Span)
		params = append(params, ast.NewParam(name, typ, nameTok.Span.Cover(typ.Span())))

		switch p.last().Kind {
		case token.Comma:
			p.pop()
			if p.last().Kind == token.RParen {
				p.pop()
				return params
			}
		case token.RParen:
			p.pop()
			return params
		default:
			p.ctx.Push(expectedToken(p.last(), token.Comma, token.RParen))
			p.recoverParamList()
			return params
		}
	}
}

// recoverParamList discards tokens up to and including the parameter
// list's closing paren, or stops at EOF.
func (p *Parser) recoverParamList() {
	p.skipToAny(token.RParen)
	if p.last().Kind == token.RParen {
		p.pop()
	}
}

func (p *Parser) parseType() ast.TypeExpr {
	tok := p.last()

	if tok.Kind == token.Operator && tok.Op == token.OpStar {
		p.pop()
		isConst := false
		if p.last().Kind == token.KwConst {
			p.pop()
			isConst = true
		}
		elem := p.parseType()
		if elem == nil {
			return nil
		}
		return ast.NewPointerType(isConst, elem, tok.Span.Cover(elem.Span()))
	}

	if tok.Kind == token.Ident {
		kind, ok := token.LookupPrimitive(tok.Text)
		if !ok {
			p.pop()
			p.ctx.Push(unknownPrimitiveType(tok))
			return nil
		}
		p.pop()
		return ast.NewPrimitiveType(kind, tok.Span)
	}

	p.ctx.Push(expectedType(tok))
	return nil
}

// parseVarDecl parses a 'const'/'var' declaration: Ident (':' Type)?
// ('=' Expression)?. Used both at top level (pub allowed) and, with
// pub always false, as a block statement.
func (p *Parser) parseVarDecl(pub bool, pubTok *token.Token) *ast.VarDecl {
	kw := p.pop()
	isConst := kw.Kind == token.KwConst

	startSpan := kw.Span
	if pubTok != nil {
		startSpan = pubTok.Span
	}

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return nil
	}
	name := ast.NewIdent(nameTok.Text, nameTok.Span)
	span := startSpan.Cover(nameTok.Span)

	var typ ast.TypeExpr
	if p.last().Kind == token.Colon {
		p.pop()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
		span = span.Cover(typ.Span())
	}

	var value ast.Expr
	if p.last().Kind == token.Operator && p.last().Op == token.OpAssign {
		p.pop()
		value = p.parseExpression()
		if value == nil {
			return nil
		}
		span = span.Cover(value.Span())
	}

	return ast.NewVarDecl(pub, isConst, name, typ, value, span)
}

// expect pops the next token if it matches kind, otherwise pushes an
// ExpectedToken diagnostic and leaves the stack untouched.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	tok := p.last()
	if tok.Kind != kind {
		p.ctx.Push(expectedToken(tok, kind))
		return tok, false
	}
	return p.pop(), true
}

// skipToAny discards tokens until the next one matches a kind in kinds,
// or EOF is reached. The matching token (if any) is left unconsumed.
func (p *Parser) skipToAny(kinds ...token.Kind) {
	for {
		tok := p.last()
		if tok.Kind == token.EOF {
			return
		}
		for _, k := range kinds {
			if tok.Kind == k {
				return
			}
		}
		p.pop()
	}
}
