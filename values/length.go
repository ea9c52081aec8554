// Package values implements the dimensional-value core of the engine:
// typed CSS lengths, percentages and calc() expression trees, their
// unit-aware fold/build arithmetic, and their canonical serialization.
//
// All value types are immutable; arithmetic always returns a new value and
// never mutates its operands, so independent computations can run in
// parallel without coordination.
package values

import (
	"github.com/tdewolff/parse/v2/css"

	"cssv/printer"
	"cssv/tokens"
)

// Conversion multipliers from each absolute unit to canonical pixels.
// https://www.w3.org/TR/css-values-3/#absolute-lengths
const (
	pxPerIn = 96.0
	pxPerCm = pxPerIn / 2.54
	pxPerMm = pxPerCm / 10.0
	pxPerQ  = pxPerCm / 40.0
	pxPerPt = pxPerIn / 72.0
	pxPerPc = pxPerIn / 6.0
)

// AbsoluteUnit tags a length whose conversion to pixels is
// context-independent.
type AbsoluteUnit uint8

const (
	UnitPx AbsoluteUnit = iota
	UnitIn
	UnitCm
	UnitMm
	UnitQ
	UnitPt
	UnitPc
)

var absoluteUnitNames = [...]string{"px", "in", "cm", "mm", "q", "pt", "pc"}

func (u AbsoluteUnit) String() string {
	return absoluteUnitNames[u]
}

// RelativeUnit tags a length whose real magnitude depends on external
// context (font metrics, viewport) and is not convertible here.
type RelativeUnit uint8

const (
	UnitEm RelativeUnit = iota
	UnitEx
	UnitCh
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
)

var relativeUnitNames = [...]string{"em", "ex", "ch", "rem", "vw", "vh", "vmin", "vmax"}

func (u RelativeUnit) String() string {
	return relativeUnitNames[u]
}

var absoluteUnits = map[string]AbsoluteUnit{
	"px": UnitPx, "in": UnitIn, "cm": UnitCm, "mm": UnitMm,
	"q": UnitQ, "pt": UnitPt, "pc": UnitPc,
}

var relativeUnits = map[string]RelativeUnit{
	"em": UnitEm, "ex": UnitEx, "ch": UnitCh, "rem": UnitRem,
	"vw": UnitVw, "vh": UnitVh, "vmin": UnitVmin, "vmax": UnitVmax,
}

// AbsoluteLength is an absolute unit tag with its magnitude.
type AbsoluteLength struct {
	Unit  AbsoluteUnit
	Value float32
}

// ToPx converts to canonical pixels via the fixed multiplier for the unit.
func (a AbsoluteLength) ToPx() float32 {
	switch a.Unit {
	case UnitIn:
		return a.Value * pxPerIn
	case UnitCm:
		return a.Value * pxPerCm
	case UnitMm:
		return a.Value * pxPerMm
	case UnitQ:
		return a.Value * pxPerQ
	case UnitPt:
		return a.Value * pxPerPt
	case UnitPc:
		return a.Value * pxPerPc
	default:
		return a.Value
	}
}

// Add folds two absolute lengths into one literal. Identical units add
// directly; differing units are always commensurable through pixels.
func (a AbsoluteLength) Add(b AbsoluteLength) AbsoluteLength {
	if a.Unit == b.Unit {
		return AbsoluteLength{Unit: a.Unit, Value: a.Value + b.Value}
	}
	return AbsoluteLength{Unit: UnitPx, Value: a.ToPx() + b.ToPx()}
}

func (a AbsoluteLength) Scale(s float32) AbsoluteLength {
	return AbsoluteLength{Unit: a.Unit, Value: a.Value * s}
}

// RelativeLength is a relative unit tag with its magnitude.
type RelativeLength struct {
	Unit  RelativeUnit
	Value float32
}

// Add folds two relative lengths only when their unit tags match exactly;
// different relative units carry incompatible, context-dependent scale.
func (r RelativeLength) Add(o RelativeLength) (RelativeLength, bool) {
	if r.Unit != o.Unit {
		return RelativeLength{}, false
	}
	return RelativeLength{Unit: r.Unit, Value: r.Value + o.Value}, true
}

func (r RelativeLength) Scale(s float32) RelativeLength {
	return RelativeLength{Unit: r.Unit, Value: r.Value * s}
}

// Length is a tagged union over absolute and relative literals and calc()
// expression trees. Exactly one field is non-nil; the zero value renders
// as a zero length.
type Length struct {
	Absolute *AbsoluteLength
	Relative *RelativeLength
	Calc     *Calc[Length]
}

// Zero returns the zero pixel length.
func Zero() Length {
	return Px(0)
}

// Px returns an absolute pixel length.
func Px(v float32) Length {
	return Absolute(UnitPx, v)
}

// Absolute returns an absolute length literal.
func Absolute(u AbsoluteUnit, v float32) Length {
	return Length{Absolute: &AbsoluteLength{Unit: u, Value: v}}
}

// Relative returns a relative length literal.
func Relative(u RelativeUnit, v float32) Length {
	return Length{Relative: &RelativeLength{Unit: u, Value: v}}
}

// ToPx converts an absolute literal to canonical pixels. Relative and
// calc values have no context-free conversion.
func (l Length) ToPx() (float32, bool) {
	if l.Absolute != nil {
		return l.Absolute.ToPx(), true
	}
	return 0, false
}

// Add combines two lengths: first a recursive fold attempt unifying the
// operands into a single literal, and only when no fold is possible the
// symbolic build fallback with identity elision and canonical ordering.
func (l Length) Add(other Length) Length {
	if sum, ok := l.addRecursive(other); ok {
		return sum
	}
	return l.addSymbolic(other)
}

func (l Length) addRecursive(other Length) (Length, bool) {
	switch {
	case l.Absolute != nil && other.Absolute != nil:
		sum := l.Absolute.Add(*other.Absolute)
		return Length{Absolute: &sum}, true

	case l.Relative != nil && other.Relative != nil:
		if sum, ok := l.Relative.Add(*other.Relative); ok {
			return Length{Relative: &sum}, true
		}
		return Length{}, false

	case l.Calc != nil && l.Calc.Leaf != nil:
		return (*l.Calc.Leaf).addRecursive(other)

	case other.Calc != nil && other.Calc.Leaf != nil:
		return l.addRecursive(*other.Calc.Leaf)

	case l.Calc != nil && l.Calc.Sum != nil:
		// Try folding the other operand into either child; the unfolded
		// sibling is reattached through Add so elision and ordering
		// re-apply to the rebuilt sum.
		if res, ok := (Length{Calc: &l.Calc.Sum.Left}).addRecursive(other); ok {
			return res.Add(Length{Calc: &l.Calc.Sum.Right}), true
		}
		if res, ok := (Length{Calc: &l.Calc.Sum.Right}).addRecursive(other); ok {
			return (Length{Calc: &l.Calc.Sum.Left}).Add(res), true
		}
		return Length{}, false

	case other.Calc != nil && other.Calc.Sum != nil:
		if res, ok := l.addRecursive(Length{Calc: &other.Calc.Sum.Left}); ok {
			return res.Add(Length{Calc: &other.Calc.Sum.Right}), true
		}
		if res, ok := l.addRecursive(Length{Calc: &other.Calc.Sum.Right}); ok {
			return (Length{Calc: &other.Calc.Sum.Left}).Add(res), true
		}
		return Length{}, false
	}
	return Length{}, false
}

func (l Length) addSymbolic(other Length) Length {
	a, b := l, other

	// Identity elision works only through literal zeros; a calc expression
	// never compares against a number.
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
		return Length{Calc: &merged}
	case a.Calc != nil && a.Calc.Leaf != nil:
		return (*a.Calc.Leaf).Add(b)
	case b.Calc != nil && b.Calc.Leaf != nil:
		return a.Add(*b.Calc.Leaf)
	default:
		sum := newSum(a.intoCalc(), b.intoCalc())
		return Length{Calc: &sum}
	}
}

// Scale multiplies by a scalar, distributing over calc trees.
func (l Length) Scale(s float32) Length {
	switch {
	case l.Absolute != nil:
		scaled := l.Absolute.Scale(s)
		return Length{Absolute: &scaled}
	case l.Relative != nil:
		scaled := l.Relative.Scale(s)
		return Length{Relative: &scaled}
	case l.Calc != nil:
		scaled := l.Calc.Scale(s)
		return Length{Calc: &scaled}
	}
	return l
}

// Equals compares a literal's magnitude against a plain number. A calc
// expression never equals a number: its value is unresolved. The all-nil
// union is the zero length.
func (l Length) Equals(v float32) bool {
	switch {
	case l.Absolute != nil:
		return l.Absolute.Value == v
	case l.Relative != nil:
		return l.Relative.Value == v
	case l.Calc != nil:
		return false
	}
	return v == 0
}

// Compare orders a literal's magnitude against a plain number; ok is false
// for calc expressions, which are unordered against numbers.
func (l Length) Compare(v float32) (int, bool) {
	switch {
	case l.Absolute != nil:
		return cmpFloat(l.Absolute.Value, v), true
	case l.Relative != nil:
		return cmpFloat(l.Relative.Value, v), true
	case l.Calc != nil:
		return 0, false
	}
	return cmpFloat(0, v), true
}

func cmpFloat(a, b float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports structural equality.
func (l Length) Equal(other Length) bool {
	switch {
	case l.Absolute != nil && other.Absolute != nil:
		return *l.Absolute == *other.Absolute
	case l.Relative != nil && other.Relative != nil:
		return *l.Relative == *other.Relative
	case l.Calc != nil && other.Calc != nil:
		return l.Calc.Equal(*other.Calc)
	}
	return false
}

func (l Length) intoCalc() Calc[Length] {
	if l.Calc != nil {
		return *l.Calc
	}
	return newLeaf(l)
}

func lengthCalcParser() calcParser[Length] {
	return calcParser[Length]{
		leaf:   ParseLength,
		number: Px,
		into:   Length.intoCalc,
		from:   func(c Calc[Length]) Length { return Length{Calc: &c} },
	}
}

// ParseLength parses a <length>. The calc() grammar is attempted first with
// full rollback, since a bare literal may appear as the sole content of a
// calc() wrapper; a degenerate single-literal tree unwraps to the literal.
// Bare numbers are accepted as pixel lengths (quirks-mode unitless length).
func ParseLength(c *tokens.Cursor) (Length, error) {
	if calc, err := tryParse(c, lengthCalcParser().parse); err == nil {
		if calc.Leaf != nil {
			return *calc.Leaf, nil
		}
		return Length{Calc: &calc}, nil
	}
	return parseLengthLiteral(c)
}

func parseLengthLiteral(c *tokens.Cursor) (Length, error) {
	tok, err := c.Next()
	if err != nil {
		return Length{}, err
	}
	switch tok.Type {
	case css.DimensionToken:
		num, unit := tokens.SplitDimension(tok.Data)
		v, err := parseFloat32(c, tok, num)
		if err != nil {
			return Length{}, err
		}
		if u, ok := absoluteUnits[unit]; ok {
			return Absolute(u, v), nil
		}
		if u, ok := relativeUnits[unit]; ok {
			return Relative(u, v), nil
		}
		return Length{}, c.Unexpected(tok)
	case css.NumberToken:
		v, err := parseFloat32(c, tok, tok.Data)
		if err != nil {
			return Length{}, err
		}
		return Px(v), nil
	}
	return Length{}, c.Unexpected(tok)
}

// ToCSS renders the canonical serialization: bare 0 for zero literals,
// minimal-digit dimension tokens otherwise, calc(...) for trees.
func (l Length) ToCSS(p *printer.Printer) error {
	switch {
	case l.Absolute != nil:
		return serializeDimension(l.Absolute.Value, l.Absolute.Unit.String(), p)
	case l.Relative != nil:
		return serializeDimension(l.Relative.Value, l.Relative.Unit.String(), p)
	case l.Calc != nil:
		return l.Calc.ToCSS(p)
	}
	return p.WriteByte('0')
}

func (l Length) String() string {
	return printer.String(l)
}

// LengthOrNumber is a flat parse/print union of <length> and <number>.
type LengthOrNumber struct {
	Length *Length
	Number *float32
}

// ParseLengthOrNumber tries the number alternative first so numeric
// literals are never mis-parsed as unitless lengths.
func ParseLengthOrNumber(c *tokens.Cursor) (LengthOrNumber, error) {
	if n, err := tryParse(c, parseNumber); err == nil {
		return LengthOrNumber{Number: &n}, nil
	}
	l, err := ParseLength(c)
	if err != nil {
		return LengthOrNumber{}, err
	}
	return LengthOrNumber{Length: &l}, nil
}

func (ln LengthOrNumber) ToCSS(p *printer.Printer) error {
	if ln.Number != nil {
		return serializeNumber(*ln.Number, p)
	}
	if ln.Length != nil {
		return ln.Length.ToCSS(p)
	}
	return p.WriteByte('0')
}

func (ln LengthOrNumber) String() string {
	return printer.String(ln)
}
