package css

import (
	"io"
	"strings"

	"cssv/values"
)

// Declaration is a single property declaration. Dimensional properties are
// typed through the values package; anything else is passed through raw.
type Declaration struct {
	Property string
	Value    values.LengthPercentageOrAuto // valid only when Typed
	Raw      string                        // original value text for untyped declarations
	Typed    bool
}

// Block is a parsed declaration list, e.g. the contents of an inline style
// attribute or a single rule body.
type Block struct {
	Declarations []Declaration
	Warnings     []string // rejected declarations, one entry each
}

// Get returns the winning (last) declaration for a property.
func (b *Block) Get(property string) (Declaration, bool) {
	for i := len(b.Declarations) - 1; i >= 0; i-- {
		if b.Declarations[i].Property == property {
			return b.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// BoxEdge holds typed values for the four sides of a box.
type BoxEdge struct {
	Top    values.LengthPercentage
	Right  values.LengthPercentage
	Bottom values.LengthPercentage
	Left   values.LengthPercentage
}

// Horizontal returns the combined left and right edge. Incommensurable
// sides stay symbolic as a calc() sum.
func (e BoxEdge) Horizontal() values.LengthPercentage {
	return e.Left.Add(e.Right)
}

// Vertical returns the combined top and bottom edge.
func (e BoxEdge) Vertical() values.LengthPercentage {
	return e.Top.Add(e.Bottom)
}

// Margin returns the four margin values; missing or auto sides contribute
// zero.
func (b *Block) Margin() BoxEdge {
	return b.edge("margin")
}

// Padding returns the four padding values; missing sides contribute zero.
func (b *Block) Padding() BoxEdge {
	return b.edge("padding")
}

func (b *Block) edge(prefix string) BoxEdge {
	return BoxEdge{
		Top:    b.sideOrZero(prefix + "-top"),
		Right:  b.sideOrZero(prefix + "-right"),
		Bottom: b.sideOrZero(prefix + "-bottom"),
		Left:   b.sideOrZero(prefix + "-left"),
	}
}

func (b *Block) sideOrZero(property string) values.LengthPercentage {
	d, ok := b.Get(property)
	if !ok || !d.Typed || d.Value.Auto || d.Value.Value == nil {
		return values.FromLength(values.Zero())
	}
	return *d.Value.Value
}

// WriteTo writes the block minified ("prop:value;prop:value"), typed values
// in their canonical serialization, implementing io.WriterTo.
func (b *Block) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, d := range b.Declarations {
		text := d.Property + ":" + d.Raw
		if d.Typed {
			text = d.Property + ":" + d.Value.String()
		}
		if i < len(b.Declarations)-1 {
			text += ";"
		}
		n, err := io.WriteString(w, text)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the minified CSS text of the block.
func (b *Block) String() string {
	var sb strings.Builder
	b.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
