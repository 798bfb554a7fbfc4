package lang

import (
	"fmt"
	"strconv"

	"github.com/rdmchase/hornkb/pkg/reason"
)

// CommandKind distinguishes the command forms a line can take: the four
// forms spec.md §6 defines, plus a rule declaration.
type CommandKind int

const (
	// CommandAssert is "s p o [c] .": add a ground fact to the KB.
	CommandAssert CommandKind = iota
	// CommandQuery is "s p o ?": stream answers from reason.Query.
	CommandQuery
	// CommandRule is "head <- body1, body2, ... [c]": add a rule.
	CommandRule
	// CommandRazona is "razona si s p o ?": an entailment check.
	CommandRazona
	// CommandDescubrir is "descubrir!": one forward-chaining sweep.
	CommandDescubrir
)

// Command is the parsed result of one line of input.
type Command struct {
	Kind   CommandKind
	Triple reason.Triple // set for CommandAssert, CommandQuery, CommandRazona
	Rule   reason.Rule   // set for CommandRule
}

// parser consumes a pre-lexed token stream with one token of lookahead.
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	if p.peek().kind != kind {
		return token{}, fmt.Errorf("expected %s, found %s at column %d", kind, p.peek(), p.peek().pos+1)
	}
	return p.advance(), nil
}

// anonymousNames maps term position (0=subject, 1=predicate, 2=object) to
// the fresh variable name a bare '?' is renamed to, per spec.md §6.
var anonymousNames = [3]string{"X", "Y", "Z"}

// term parses one term at the given position (0, 1, or 2), returning the
// resolved Term and whether the source token was an anonymous '?'.
func (p *parser) term(position int) (reason.Term, bool, error) {
	switch p.peek().kind {
	case tokenIdent:
		return p.advance().text, false, nil
	case tokenQuestion:
		p.advance()
		return anonymousNames[position], true, nil
	default:
		return "", false, fmt.Errorf("expected a term, found %s at column %d", p.peek(), p.peek().pos+1)
	}
}

// tripleTerms parses three consecutive terms into a Triple (confidence left
// at reason.Certain; callers apply a trailing [c] tag themselves) and
// reports whether the predicate term was an anonymous '?' while subject and
// object were literals — the "querying by predicate alone" shape the parser
// rejects.
func (p *parser) tripleTerms() (reason.Triple, bool, error) {
	s, _, err := p.term(0)
	if err != nil {
		return reason.Triple{}, false, err
	}
	pr, prAnon, err := p.term(1)
	if err != nil {
		return reason.Triple{}, false, err
	}
	o, _, err := p.term(2)
	if err != nil {
		return reason.Triple{}, false, err
	}
	predicateOnly := prAnon && reason.IsLiteral(s) && reason.IsLiteral(o)
	return reason.NewTriple(s, pr, o, reason.Certain), predicateOnly, nil
}

// confidence parses an optional trailing [c] tag, defaulting to
// reason.Certain when absent.
func (p *parser) confidence() (float64, error) {
	if p.peek().kind != tokenConfidence {
		return reason.Certain, nil
	}
	tok := p.advance()
	c, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid confidence %q at column %d", tok.text, tok.pos+1)
	}
	return reason.ClampConfidence(c), nil
}

// Parse parses one line of input into a Command. It never invokes
// reason.KB, reason.Query, reason.Proves, or reason.Discover itself —
// dispatching a parsed Command onto the core is the caller's job
// (internal/repl, internal/store).
func Parse(line string) (Command, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return Command{}, err
	}
	p := &parser{tokens: tokens}

	if p.peek().kind == tokenEOF {
		return Command{}, fmt.Errorf("empty input")
	}

	if p.peek().kind == tokenIdent && p.peek().text == "descubrir" {
		p.advance()
		if _, err := p.expect(tokenBang); err != nil {
			return Command{}, fmt.Errorf(`el comando "descubrir!" no lleva argumentos`)
		}
		if _, err := p.expect(tokenEOF); err != nil {
			return Command{}, fmt.Errorf(`el comando "descubrir!" no lleva argumentos`)
		}
		return Command{Kind: CommandDescubrir}, nil
	}

	if p.peek().kind == tokenIdent && p.peek().text == "razona" {
		p.advance()
		if tok := p.peek(); tok.kind != tokenIdent || tok.text != "si" {
			return Command{}, fmt.Errorf("la consulta de razonamiento debe ser: razona si S P O ?")
		}
		p.advance()
		// "razona si S P O ?" must be exactly three terms plus a trailing
		// '?': reject any other shape before attempting to parse terms, so
		// a short or long tail gets the same message the original gives.
		if len(p.tokens)-p.pos != 5 {
			return Command{}, fmt.Errorf("la consulta de razonamiento debe ser: razona si S P O ?")
		}
		triple, _, err := p.tripleTerms()
		if err != nil {
			return Command{}, fmt.Errorf("la consulta de razonamiento debe ser: razona si S P O ?")
		}
		if _, err := p.expect(tokenQuestion); err != nil {
			return Command{}, fmt.Errorf("la consulta de razonamiento debe terminar en ?")
		}
		return Command{Kind: CommandRazona, Triple: triple}, nil
	}

	head, predicateOnly, err := p.tripleTerms()
	if err != nil {
		return Command{}, err
	}

	if p.peek().kind == tokenArrow {
		p.advance()
		body := []reason.Triple{}
		for {
			atom, _, err := p.tripleTerms()
			if err != nil {
				return Command{}, err
			}
			body = append(body, atom)
			if p.peek().kind != tokenComma {
				break
			}
			p.advance()
		}
		c, err := p.confidence()
		if err != nil {
			return Command{}, err
		}
		if _, err := p.expect(tokenEOF); err != nil {
			return Command{}, fmt.Errorf("unexpected trailing input in rule at column %d", p.peek().pos+1)
		}
		return Command{Kind: CommandRule, Rule: reason.NewRule(head, body, c)}, nil
	}

	c, err := p.confidence()
	if err != nil {
		return Command{}, err
	}
	head.Confidence = c

	switch p.peek().kind {
	case tokenDot:
		if !head.Ground() {
			return Command{}, fmt.Errorf("a fact cannot contain variables")
		}
		p.advance()
		if _, err := p.expect(tokenEOF); err != nil {
			return Command{}, fmt.Errorf("unexpected trailing input after '.' at column %d", p.peek().pos+1)
		}
		return Command{Kind: CommandAssert, Triple: head}, nil
	case tokenQuestion:
		if predicateOnly {
			return Command{}, fmt.Errorf("no consultar por predicado")
		}
		p.advance()
		if _, err := p.expect(tokenEOF); err != nil {
			return Command{}, fmt.Errorf("unexpected trailing input after '?' at column %d", p.peek().pos+1)
		}
		return Command{Kind: CommandQuery, Triple: head}, nil
	default:
		return Command{}, fmt.Errorf("la consulta debe terminar en ? (consulta) o . (hecho)")
	}
}
