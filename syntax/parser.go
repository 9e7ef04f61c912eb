package syntax

import "github.com/yuzuki-re/tinyregex/token"

// Parse recognizes tokens against the grammar documented on Package syntax
// and returns the resulting parse tree. tokens must be terminated by an
// token.EOF token, as token.Tokenize always produces.
//
// Outside '[...]', '-' and '^' are not accepted and produce a parse error;
// inside '[...]', '-' is the range operator and a '^' immediately after
// '[' negates the class.
func Parse(tokens []token.Token) (*Node, error) {
	p := &parser{tokens: tokens}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(k token.Kind) error {
	t := p.next()
	if t.Kind != k {
		return errf(t.Pos, "expected token %q, found %q", token.Token{Kind: k}, t)
	}
	return nil
}

// startsFactor reports whether t can begin a factor: it is the FIRST set of
// seq/subseq, used to decide between "more sequence follows" and "sequence
// ends here".
func startsFactor(t token.Token) bool {
	switch t.Kind {
	case token.LParen, token.Char, token.LBracket, token.Dot:
		return true
	default:
		return false
	}
}

// expr := subexpr EOF
func (p *parser) expr() (*Node, error) {
	node, err := p.subexpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, errf(p.tokens[len(p.tokens)-1].Pos, "unexpected trailing tokens after end of pattern")
	}
	return node, nil
}

// subexpr := seq ('|' subexpr)?
func (p *parser) subexpr() (*Node, error) {
	left, err := p.seq()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == token.VBar {
		p.next()
		right, err := p.subexpr()
		if err != nil {
			return nil, err
		}
		return union(left, right), nil
	}
	return left, nil
}

// seq := subseq | ε
func (p *parser) seq() (*Node, error) {
	if startsFactor(p.peek()) {
		return p.subseq()
	}
	return empty(), nil
}

// subseq := star subseq?
func (p *parser) subseq() (*Node, error) {
	left, err := p.star()
	if err != nil {
		return nil, err
	}
	if startsFactor(p.peek()) {
		right, err := p.subseq()
		if err != nil {
			return nil, err
		}
		return concat(left, right), nil
	}
	return left, nil
}

// star := factor '*'?
func (p *parser) star() (*Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == token.Asterisk {
		p.next()
		return repeat(node), nil
	}
	return node, nil
}

// factor := '(' subexpr ')' | CHAR | '[' charset_inner ']'
//
//	| '[' '^' charset_inner_neg ']' | '.'
func (p *parser) factor() (*Node, error) {
	t := p.next()

	switch t.Kind {
	case token.LParen:
		node, err := p.subexpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return node, nil

	case token.Char:
		return char(t.Ch), nil

	case token.LBracket:
		if p.peek().Kind == token.Hat {
			p.next()
			excluded, err := p.charsetInnerNeg()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			return negChar(excluded), nil
		}
		node, err := p.charsetInner()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		return node, nil

	case token.Dot:
		return negChar(nil), nil

	default:
		return nil, errf(t.Pos, "unexpected token %q", t)
	}
}

// charsetInner := CHAR ('-' CHAR)? charsetInner?
func (p *parser) charsetInner() (*Node, error) {
	t := p.next()
	if t.Kind != token.Char {
		return nil, errf(t.Pos, "unexpected token %q in character class", t)
	}
	c := t.Ch

	switch p.peek().Kind {
	case token.Hyphen:
		p.next()
		hi, err := p.rangeUpperBound()
		if err != nil {
			return nil, err
		}
		lo, hi := orderRange(c, hi)
		node := buildUnionBTree(lo, hi)
		if p.peek().Kind == token.RBracket {
			return node, nil
		}
		rest, err := p.charsetInner()
		if err != nil {
			return nil, err
		}
		return union(node, rest), nil

	case token.RBracket:
		return char(c), nil

	case token.Char:
		rest, err := p.charsetInner()
		if err != nil {
			return nil, err
		}
		return union(char(c), rest), nil

	default:
		return nil, errf(p.peek().Pos, "unexpected token %q in character class", p.peek())
	}
}

// charsetInnerNeg is charsetInner's twin for '[^...]': it accumulates the
// excluded scalars into a set instead of building a Union tree.
func (p *parser) charsetInnerNeg() (map[rune]struct{}, error) {
	t := p.next()
	if t.Kind != token.Char {
		return nil, errf(t.Pos, "unexpected token %q in character class", t)
	}
	c := t.Ch

	switch p.peek().Kind {
	case token.Hyphen:
		p.next()
		hi, err := p.rangeUpperBound()
		if err != nil {
			return nil, err
		}
		lo, hi := orderRange(c, hi)
		set := rangeSet(lo, hi)
		if p.peek().Kind == token.RBracket {
			return set, nil
		}
		rest, err := p.charsetInnerNeg()
		if err != nil {
			return nil, err
		}
		return mergeSets(set, rest), nil

	case token.RBracket:
		return map[rune]struct{}{c: {}}, nil

	case token.Char:
		rest, err := p.charsetInnerNeg()
		if err != nil {
			return nil, err
		}
		rest[c] = struct{}{}
		return rest, nil

	default:
		return nil, errf(p.peek().Pos, "unexpected token %q in character class", p.peek())
	}
}

// rangeUpperBound consumes the CHAR that must follow a '-' inside a class.
func (p *parser) rangeUpperBound() (rune, error) {
	t := p.next()
	if t.Kind != token.Char {
		return 0, errf(t.Pos, "range is missing its upper bound")
	}
	return t.Ch, nil
}

func orderRange(a, b rune) (lo, hi rune) {
	if a <= b {
		return a, b
	}
	return b, a
}

func rangeSet(lo, hi rune) map[rune]struct{} {
	set := make(map[rune]struct{}, hi-lo+1)
	for c := lo; c <= hi; c++ {
		set[c] = struct{}{}
	}
	return set
}

func mergeSets(a, b map[rune]struct{}) map[rune]struct{} {
	for c := range b {
		a[c] = struct{}{}
	}
	return a
}
