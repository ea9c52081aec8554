package values

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"cssv/printer"
	"cssv/tokens"
)

// parseFloat32 converts the numeric text of tok into a finite float32.
// Values whose conversion overflows or otherwise fails to produce a finite
// number are rejected at the token's source location; arithmetic and
// serialization downstream never see NaN or infinities.
func parseFloat32(c *tokens.Cursor, tok tokens.Token, s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, c.Unexpected(tok)
	}
	return float32(f), nil
}

// parseNumber consumes a bare number token.
func parseNumber(c *tokens.Cursor) (float32, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	if tok.Type != css.NumberToken {
		return 0, c.Unexpected(tok)
	}
	return parseFloat32(c, tok, tok.Data)
}

// serializeNumber writes v with the minimal digits that round-trip a
// float32: no decimal point for integral values and no redundant leading
// zero ahead of the point (".5", "-.5").
func serializeNumber(v float32, p *printer.Printer) error {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	switch {
	case strings.HasPrefix(s, "0."):
		s = s[1:]
	case strings.HasPrefix(s, "-0."):
		s = "-" + s[2:]
	}
	return p.WriteString(s)
}

// serializeDimension writes a dimension token for v with the given unit
// suffix. An exact zero renders as a bare "0" regardless of unit.
func serializeDimension(v float32, unit string, p *printer.Printer) error {
	if v == 0 {
		return p.WriteByte('0')
	}
	if err := serializeNumber(v, p); err != nil {
		return err
	}
	return p.WriteString(unit)
}
