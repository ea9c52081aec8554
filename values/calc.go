package values

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"cssv/printer"
	"cssv/tokens"
)

// calcLeaf is the contract a value type must satisfy to appear as a leaf of
// a Calc tree: it folds with its peers, distributes a scalar, compares
// structurally and serializes itself.
type calcLeaf[V any] interface {
	Add(V) V
	Scale(float32) V
	Equal(V) bool
	ToCSS(*printer.Printer) error
}

// Calc is one node of a calc() expression tree: either a single wrapped
// leaf or a symbolic sum of two sub-trees. Exactly one field is non-nil.
// Nodes exclusively own their children and are never mutated after
// construction; combining trees always builds new nodes.
type Calc[V calcLeaf[V]] struct {
	Leaf *V
	Sum  *Sum[V]
}

// Sum is a retained two-operand addition whose operands could not be folded
// into one literal.
type Sum[V calcLeaf[V]] struct {
	Left  Calc[V]
	Right Calc[V]
}

func newLeaf[V calcLeaf[V]](v V) Calc[V] {
	return Calc[V]{Leaf: &v}
}

func newSum[V calcLeaf[V]](left, right Calc[V]) Calc[V] {
	return Calc[V]{Sum: &Sum[V]{Left: left, Right: right}}
}

// Add concatenates two trees into a symbolic sum. Fold attempts happen at
// the value level before this is reached.
func (c Calc[V]) Add(other Calc[V]) Calc[V] {
	return newSum(c, other)
}

// Scale distributes a scalar multiply over the tree, preserving its shape.
func (c Calc[V]) Scale(s float32) Calc[V] {
	if c.Leaf != nil {
		return newLeaf((*c.Leaf).Scale(s))
	}
	return newSum(c.Sum.Left.Scale(s), c.Sum.Right.Scale(s))
}

// Equal reports structural equality of two trees.
func (c Calc[V]) Equal(other Calc[V]) bool {
	switch {
	case c.Leaf != nil && other.Leaf != nil:
		return (*c.Leaf).Equal(*other.Leaf)
	case c.Sum != nil && other.Sum != nil:
		return c.Sum.Left.Equal(other.Sum.Left) && c.Sum.Right.Equal(other.Sum.Right)
	}
	return false
}

// ToCSS writes the calc() wrapper around the rendered tree.
func (c Calc[V]) ToCSS(p *printer.Printer) error {
	if err := p.WriteString("calc("); err != nil {
		return err
	}
	if err := c.render(p); err != nil {
		return err
	}
	return p.WriteByte(')')
}

func (c Calc[V]) render(p *printer.Printer) error {
	if c.Leaf != nil {
		return (*c.Leaf).ToCSS(p)
	}
	if err := c.Sum.Left.render(p); err != nil {
		return err
	}
	if err := p.WriteString(" + "); err != nil {
		return err
	}
	return c.Sum.Right.render(p)
}

// tryParse runs fn and rolls all consumed input back when it fails, so the
// caller can attempt the next grammar alternative.
func tryParse[T any](c *tokens.Cursor, fn func(*tokens.Cursor) (T, error)) (T, error) {
	mark := c.Mark()
	v, err := fn(c)
	if err != nil {
		c.Restore(mark)
	}
	return v, err
}

// calcParser parses the calc() grammar for one leaf type. The hooks tie the
// generic tree to the concrete value union: leaf parses one literal, number
// lifts a unitless coefficient-only product into a leaf, and into/from
// convert between the value union and its tree form.
type calcParser[V calcLeaf[V]] struct {
	leaf   func(*tokens.Cursor) (V, error)
	number func(float32) V
	into   func(V) Calc[V]
	from   func(Calc[V]) V
}

// parse consumes "calc(" <sum> ")". Sums are combined through the value
// type's own Add, so the returned tree is already folded into canonical
// shape; a degenerate single-literal result comes back as a lone Leaf.
func (cp calcParser[V]) parse(c *tokens.Cursor) (Calc[V], error) {
	tok, err := c.Next()
	if err != nil {
		return Calc[V]{}, err
	}
	if tok.Type != css.FunctionToken || !strings.EqualFold(tok.Data, "calc(") {
		return Calc[V]{}, c.Unexpected(tok)
	}
	sum, err := cp.parseSum(c)
	if err != nil {
		return Calc[V]{}, err
	}
	tok, err = c.Next()
	if err != nil {
		return Calc[V]{}, err
	}
	if tok.Type != css.RightParenthesisToken {
		return Calc[V]{}, c.Unexpected(tok)
	}
	return sum, nil
}

func (cp calcParser[V]) parseSum(c *tokens.Cursor) (Calc[V], error) {
	left, err := cp.parseProduct(c)
	if err != nil {
		return Calc[V]{}, err
	}
	for {
		mark := c.Mark()
		tok, err := c.Next()
		if err != nil {
			c.Restore(mark)
			break
		}
		if tok.Type != css.DelimToken || (tok.Data != "+" && tok.Data != "-") {
			c.Restore(mark)
			break
		}
		right, err := cp.parseProduct(c)
		if err != nil {
			return Calc[V]{}, err
		}
		if tok.Data == "-" {
			right = right.Scale(-1)
		}
		left = cp.into(cp.from(left).Add(cp.from(right)))
	}
	return left, nil
}

// parseProduct accumulates numeric coefficients around at most one
// dimensional operand; two dimensional operands cannot be multiplied.
func (cp calcParser[V]) parseProduct(c *tokens.Cursor) (Calc[V], error) {
	coef := float32(1)
	var node *Calc[V]

	for first := true; ; first = false {
		mark := c.Mark()
		if !first {
			tok, err := c.Next()
			if err != nil {
				c.Restore(mark)
				break
			}
			if tok.Type != css.DelimToken || tok.Data != "*" {
				c.Restore(mark)
				break
			}
		}
		operand, isNumber, opTok, err := cp.parseOperand(c)
		if err != nil {
			return Calc[V]{}, err
		}
		if isNumber {
			f, err := parseFloat32(c, opTok, opTok.Data)
			if err != nil {
				return Calc[V]{}, err
			}
			coef *= f
			continue
		}
		if node != nil {
			return Calc[V]{}, c.Unexpected(opTok)
		}
		n := operand
		node = &n
	}

	if node == nil {
		return newLeaf(cp.number(coef)), nil
	}
	if coef != 1 {
		return node.Scale(coef), nil
	}
	return *node, nil
}

// parseOperand returns either a numeric coefficient token, a parenthesized
// sub-sum, or a leaf literal. The token of a non-numeric operand is also
// returned for error reporting.
func (cp calcParser[V]) parseOperand(c *tokens.Cursor) (Calc[V], bool, tokens.Token, error) {
	mark := c.Mark()
	tok, err := c.Next()
	if err != nil {
		return Calc[V]{}, false, tok, err
	}
	switch tok.Type {
	case css.NumberToken:
		return Calc[V]{}, true, tok, nil
	case css.LeftParenthesisToken:
		sum, err := cp.parseSum(c)
		if err != nil {
			return Calc[V]{}, false, tok, err
		}
		closing, err := c.Next()
		if err != nil {
			return Calc[V]{}, false, tok, err
		}
		if closing.Type != css.RightParenthesisToken {
			return Calc[V]{}, false, tok, c.Unexpected(closing)
		}
		return sum, false, tok, nil
	}
	c.Restore(mark)
	v, err := cp.leaf(c)
	if err != nil {
		return Calc[V]{}, false, tok, err
	}
	return cp.into(v), false, tok, nil
}
