package parser

import (
	"errors"
	"log/slog"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
)

// Statement and function parsing. Every parse* method starts with the cursor
// on the first token of its construct and leaves it on the last one.

// ParseProgram parses items until EOF and assembles them into a program.
//
// A failed item is recorded and the parser skips ahead to the next fn or
// directive keyword; the returned error joins every recorded error.
func (p *Parser) ParseProgram() (*core.Program, error) {
	prog := core.NewProgram()
	customNames := make(map[string]token.Position)

	for !p.check(token.EOF) {
		if err := p.parseItem(prog, customNames); err != nil {
			p.addError(err)
			if p.maxErrors > 0 && len(p.errors) >= p.maxErrors {
				break
			}
			p.synchronize()
			continue
		}
		p.nextToken()
	}

	return prog, errors.Join(p.errors...)
}

// parseItem parses one top-level item and pushes it into prog.
func (p *Parser) parseItem(prog *core.Program, customNames map[string]token.Position) error {
	switch p.token.Type {
	case token.FN:
		fn, err := p.parseFunction()
		if err != nil {
			return err
		}
		if fn.Name == core.MainFunction && prog.Main != nil {
			p.logger.Warn("main redefined, last definition wins",
				slog.String("previous", prog.Main.Pos().String()),
				slog.String("pos", fn.Pos().String()))
		}
		p.logger.Debug("constraint function", slog.String("name", fn.Name), slog.Int("params", len(fn.Parameters)))
		prog.PushConstraintFunction(fn)
		return nil

	case token.DIRECTIVE:
		return p.parseDirective(prog, customNames)

	default:
		stmt, err := p.parseStatement()
		if err != nil {
			return err
		}
		prog.PushStatement(stmt)
		return nil
	}
}

// parseDirective parses: directive [ "(" IDENT ")" ] fn_decl
func (p *Parser) parseDirective(prog *core.Program, customNames map[string]token.Position) error {
	var name *string
	if p.checkPeek(token.LPAREN) {
		p.nextToken()
		if err := p.expectPeek(token.IDENT); err != nil {
			return err
		}
		gate := p.token.Literal
		name = &gate
		if prev, seen := customNames[gate]; seen {
			p.logger.Warn("custom directive name reused",
				slog.String("name", gate),
				slog.String("previous", prev.String()),
				slog.String("pos", p.token.Pos.String()))
		}
		customNames[gate] = p.token.Pos
		if err := p.expectPeek(token.RPAREN); err != nil {
			return err
		}
	}

	if err := p.expectPeek(token.FN); err != nil {
		return err
	}
	fn, err := p.parseFunction()
	if err != nil {
		return err
	}

	if name != nil {
		p.logger.Debug("custom directive", slog.String("name", *name), slog.String("func", fn.Name))
	} else {
		p.logger.Debug("directive", slog.String("func", fn.Name))
	}
	prog.PushDirectiveFunction(name, fn)
	return nil
}

// synchronize skips tokens until the next top-level keyword or EOF.
func (p *Parser) synchronize() {
	for !p.check(token.EOF) {
		p.nextToken()
		if p.check(token.FN) || p.check(token.DIRECTIVE) {
			return
		}
	}
}

// parseFunction parses: "fn" IDENT "(" params ")" block
func (p *Parser) parseFunction() (*core.FunctionDefinition, error) {
	start := p.token.Pos

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	fn := &core.FunctionDefinition{Name: p.token.Literal}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.Span = token.Span{Start: start, End: p.token.End()}
	return fn, nil
}

// parseParameters parses the parameter list. The cursor is on "(" and ends
// on ")".
func (p *Parser) parseParameters() ([]core.Parameter, error) {
	var params []core.Parameter

	for !p.checkPeek(token.RPAREN) {
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		param := core.Parameter{Name: p.token.Literal}

		if err := p.expectPeek(token.COLON); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		param.Type = core.Type{Name: p.token.Literal}
		params = append(params, param)

		if !p.checkPeek(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseBlock parses "{" statement* "}".
func (p *Parser) parseBlock() (*core.BlockStmt, error) {
	block := &core.BlockStmt{}
	start := p.token.Pos
	p.nextToken()

	for !p.check(token.RBRACE) {
		if p.check(token.EOF) {
			return nil, p.errorAt(p.token.Pos, ErrSyntax, ErrUnterminatedBlock)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	block.Span = token.Span{Start: start, End: p.token.End()}
	return block, nil
}

// parseStatement dispatches on the statement keyword.
func (p *Parser) parseStatement() (core.Stmt, error) {
	switch p.token.Type {
	case token.LET:
		return p.parseDecl(core.DeclLet)
	case token.PRIV:
		return p.parseDecl(core.DeclPriv)
	case token.CONST:
		return p.parseDecl(core.DeclConst)
	case token.CONSTRAIN:
		return p.parseConstrain()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// parseDecl parses: ("let" | "priv" | "const") IDENT "=" expr ";"
func (p *Parser) parseDecl(kind core.DeclKind) (core.Stmt, error) {
	start := p.token.Pos

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	decl := &core.DeclStmt{Kind: kind, Name: p.token.Literal}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	decl.Value = value

	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	decl.Span = token.Span{Start: start, End: p.token.End()}
	return decl, nil
}

// parseConstrain parses: "constrain" expr ";"
func (p *Parser) parseConstrain() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken()

	expr, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &core.ConstrainStmt{
		NodeInfo: core.NodeInfo{Span: token.Span{Start: start, End: p.token.End()}},
		Expr:     expr,
	}, nil
}

// parseExprStmt parses: expr ";"
func (p *Parser) parseExprStmt() (core.Stmt, error) {
	start := p.token.Pos

	expr, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &core.ExprStmt{
		NodeInfo: core.NodeInfo{Span: token.Span{Start: start, End: p.token.End()}},
		Expr:     expr,
	}, nil
}
