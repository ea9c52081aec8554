package values

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"cssv/printer"
	"cssv/tokens"
)

// Percentage is a ratio value: 1.0 means 100%. Two percentages are always
// commensurable and fold by direct summation.
type Percentage struct {
	V float32
}

func (p Percentage) Add(o Percentage) Percentage {
	return Percentage{V: p.V + o.V}
}

func (p Percentage) Scale(s float32) Percentage {
	return Percentage{V: p.V * s}
}

// ParsePercentage consumes a percentage token into a ratio.
func ParsePercentage(c *tokens.Cursor) (Percentage, error) {
	tok, err := c.Next()
	if err != nil {
		return Percentage{}, err
	}
	if tok.Type != css.PercentageToken {
		return Percentage{}, c.Unexpected(tok)
	}
	v, err := parseFloat32(c, tok, strings.TrimSuffix(tok.Data, "%"))
	if err != nil {
		return Percentage{}, err
	}
	return Percentage{V: v / 100}, nil
}

func (p Percentage) ToCSS(pr *printer.Printer) error {
	if err := serializeNumber(p.V*100, pr); err != nil {
		return err
	}
	return pr.WriteByte('%')
}

func (p Percentage) String() string {
	return printer.String(p)
}

// LengthPercentage is a tagged union over <length>, <percentage> and calc()
// trees, structurally mirroring Length one level up. Exactly one field is
// non-nil; the zero value renders as a zero length.
type LengthPercentage struct {
	Length     *Length
	Percentage *Percentage
	Calc       *Calc[LengthPercentage]
}

// FromLength wraps a length into the composite union.
func FromLength(l Length) LengthPercentage {
	return LengthPercentage{Length: &l}
}

// FromPercentage wraps a percentage into the composite union.
func FromPercentage(p Percentage) LengthPercentage {
	return LengthPercentage{Percentage: &p}
}

// Add runs the same fold-then-build algorithm as Length.Add, lifted over
// the {length, percentage} literal alternatives.
func (lp LengthPercentage) Add(other LengthPercentage) LengthPercentage {
	if sum, ok := lp.addRecursive(other); ok {
		return sum
	}
	return lp.addSymbolic(other)
}

func (lp LengthPercentage) addRecursive(other LengthPercentage) (LengthPercentage, bool) {
	switch {
	case lp.Length != nil && other.Length != nil:
		// Lengths fold through their own recursive fold, not a flat unit
		// compare, so px+em correctly refuses here.
		if sum, ok := lp.Length.addRecursive(*other.Length); ok {
			return FromLength(sum), true
		}
		return LengthPercentage{}, false

	case lp.Percentage != nil && other.Percentage != nil:
		return FromPercentage(lp.Percentage.Add(*other.Percentage)), true

	case lp.Calc != nil && lp.Calc.Leaf != nil:
		return (*lp.Calc.Leaf).addRecursive(other)

	case other.Calc != nil && other.Calc.Leaf != nil:
		return lp.addRecursive(*other.Calc.Leaf)

	case lp.Calc != nil && lp.Calc.Sum != nil:
		if res, ok := (LengthPercentage{Calc: &lp.Calc.Sum.Left}).addRecursive(other); ok {
			return res.Add(LengthPercentage{Calc: &lp.Calc.Sum.Right}), true
		}
		if res, ok := (LengthPercentage{Calc: &lp.Calc.Sum.Right}).addRecursive(other); ok {
			return (LengthPercentage{Calc: &lp.Calc.Sum.Left}).Add(res), true
		}
		return LengthPercentage{}, false

	case other.Calc != nil && other.Calc.Sum != nil:
		if res, ok := lp.addRecursive(LengthPercentage{Calc: &other.Calc.Sum.Left}); ok {
			return res.Add(LengthPercentage{Calc: &other.Calc.Sum.Right}), true
		}
		if res, ok := lp.addRecursive(LengthPercentage{Calc: &other.Calc.Sum.Right}); ok {
			return (LengthPercentage{Calc: &other.Calc.Sum.Left}).Add(res), true
		}
		return LengthPercentage{}, false
	}
	return LengthPercentage{}, false
}

func (lp LengthPercentage) addSymbolic(other LengthPercentage) LengthPercentage {
	a, b := lp, other

	if a.Equals(0) {
		return b
	}
	if b.Equals(0) {
		return a
	}

	if cmpA, okA := a.Compare(0); okA && cmpA < 0 {
		if cmpB, okB := b.Compare(0); okB && cmpB >= 0 {
			a, b = b, a
		}
	}

	switch {
	case a.Calc != nil && b.Calc != nil:
		merged := a.Calc.Add(*b.Calc)
		return LengthPercentage{Calc: &merged}
	case a.Calc != nil && a.Calc.Leaf != nil:
		return (*a.Calc.Leaf).Add(b)
	case b.Calc != nil && b.Calc.Leaf != nil:
		return a.Add(*b.Calc.Leaf)
	default:
		sum := newSum(a.intoCalc(), b.intoCalc())
		return LengthPercentage{Calc: &sum}
	}
}

// Scale multiplies by a scalar, distributing over every variant.
func (lp LengthPercentage) Scale(s float32) LengthPercentage {
	switch {
	case lp.Length != nil:
		return FromLength(lp.Length.Scale(s))
	case lp.Percentage != nil:
		return FromPercentage(lp.Percentage.Scale(s))
	case lp.Calc != nil:
		scaled := lp.Calc.Scale(s)
		return LengthPercentage{Calc: &scaled}
	}
	return lp
}

// Equals compares a literal against a plain number; calc expressions never
// compare equal. The all-nil union is the zero length.
func (lp LengthPercentage) Equals(v float32) bool {
	switch {
	case lp.Length != nil:
		return lp.Length.Equals(v)
	case lp.Percentage != nil:
		return lp.Percentage.V == v
	case lp.Calc != nil:
		return false
	}
	return v == 0
}

// Compare orders a literal against a plain number; ok is false for calc
// expressions.
func (lp LengthPercentage) Compare(v float32) (int, bool) {
	switch {
	case lp.Length != nil:
		return lp.Length.Compare(v)
	case lp.Percentage != nil:
		return cmpFloat(lp.Percentage.V, v), true
	case lp.Calc != nil:
		return 0, false
	}
	return cmpFloat(0, v), true
}

// Equal reports structural equality.
func (lp LengthPercentage) Equal(other LengthPercentage) bool {
	switch {
	case lp.Length != nil && other.Length != nil:
		return lp.Length.Equal(*other.Length)
	case lp.Percentage != nil && other.Percentage != nil:
		return *lp.Percentage == *other.Percentage
	case lp.Calc != nil && other.Calc != nil:
		return lp.Calc.Equal(*other.Calc)
	}
	return false
}

func (lp LengthPercentage) intoCalc() Calc[LengthPercentage] {
	if lp.Calc != nil {
		return *lp.Calc
	}
	return newLeaf(lp)
}

func lengthPercentageCalcParser() calcParser[LengthPercentage] {
	return calcParser[LengthPercentage]{
		leaf:   ParseLengthPercentage,
		number: func(v float32) LengthPercentage { return FromLength(Px(v)) },
		into:   LengthPercentage.intoCalc,
		from:   func(c Calc[LengthPercentage]) LengthPercentage { return LengthPercentage{Calc: &c} },
	}
}

// ParseLengthPercentage parses a <length-percentage>: calc() first with
// rollback, then a length literal, then a percentage token.
func ParseLengthPercentage(c *tokens.Cursor) (LengthPercentage, error) {
	if calc, err := tryParse(c, lengthPercentageCalcParser().parse); err == nil {
		if calc.Leaf != nil {
			return *calc.Leaf, nil
		}
		return LengthPercentage{Calc: &calc}, nil
	}

	if l, err := tryParse(c, ParseLength); err == nil {
		return FromLength(l), nil
	}

	if p, err := tryParse(c, ParsePercentage); err == nil {
		return FromPercentage(p), nil
	}

	return LengthPercentage{}, c.NoMatch()
}

func (lp LengthPercentage) ToCSS(p *printer.Printer) error {
	switch {
	case lp.Length != nil:
		return lp.Length.ToCSS(p)
	case lp.Percentage != nil:
		return lp.Percentage.ToCSS(p)
	case lp.Calc != nil:
		return lp.Calc.ToCSS(p)
	}
	return p.WriteByte('0')
}

func (lp LengthPercentage) String() string {
	return printer.String(lp)
}

// LengthPercentageOrAuto is `<length-percentage> | auto`.
type LengthPercentageOrAuto struct {
	Auto  bool
	Value *LengthPercentage
}

// ParseLengthPercentageOrAuto parses a <length-percentage> or the auto
// keyword, value alternatives first.
func ParseLengthPercentageOrAuto(c *tokens.Cursor) (LengthPercentageOrAuto, error) {
	if lp, err := tryParse(c, ParseLengthPercentage); err == nil {
		return LengthPercentageOrAuto{Value: &lp}, nil
	}

	mark := c.Mark()
	if tok, err := c.Next(); err == nil {
		if tok.Type == css.IdentToken && strings.EqualFold(tok.Data, "auto") {
			return LengthPercentageOrAuto{Auto: true}, nil
		}
	}
	c.Restore(mark)

	return LengthPercentageOrAuto{}, c.NoMatch()
}

func (la LengthPercentageOrAuto) ToCSS(p *printer.Printer) error {
	if la.Auto {
		return p.WriteString("auto")
	}
	if la.Value != nil {
		return la.Value.ToCSS(p)
	}
	return p.WriteByte('0')
}

func (la LengthPercentageOrAuto) String() string {
	return printer.String(la)
}

// Equal reports structural equality.
func (la LengthPercentageOrAuto) Equal(other LengthPercentageOrAuto) bool {
	if la.Auto || other.Auto {
		return la.Auto == other.Auto
	}
	if la.Value != nil && other.Value != nil {
		return la.Value.Equal(*other.Value)
	}
	return false
}
