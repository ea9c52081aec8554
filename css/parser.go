// Package css is the declaration-level layer over the dimensional-value
// core: it parses declaration lists, types dimensional properties through
// the values package, expands margin/padding shorthands and renders
// minified output. An invalid value rejects only its own declaration,
// never the whole block.
package css

import (
	"bytes"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssv/tokens"
	"cssv/values"
)

// dimensionalProperties are the properties whose values go through the
// typed <length-percentage>|auto grammar. Everything else passes through
// untouched.
var dimensionalProperties = map[string]bool{
	"margin-top": true, "margin-right": true, "margin-bottom": true, "margin-left": true,
	"padding-top": true, "padding-right": true, "padding-bottom": true, "padding-left": true,
	"width": true, "height": true,
	"min-width": true, "min-height": true,
	"max-width": true, "max-height": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"border-top-width": true, "border-right-width": true,
	"border-bottom-width": true, "border-left-width": true,
	"font-size": true, "line-height": true, "text-indent": true,
}

// shorthandSides maps the value count of a margin/padding shorthand to the
// longhand side order top, right, bottom, left.
var shorthandSides = [5][4]int{
	1: {0, 0, 0, 0},
	2: {0, 1, 0, 1},
	3: {0, 1, 2, 1},
	4: {0, 1, 2, 3},
}

var sideSuffixes = [4]string{"-top", "-right", "-bottom", "-left"}

// Parser parses CSS declaration lists into typed blocks.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses an inline-style declaration list. The returned
// block always holds everything that parsed; the error aggregates the
// failures of rejected declarations.
func (p *Parser) ParseDeclarations(data []byte) (*Block, error) {
	block := &Block{}
	var errs error

	p.log.Debug("Parsing declarations", zap.Int("bytes", len(data)))

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, true)

	for {
		gt, _, propData := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("Declaration parse error", zap.Error(err))
			}
			return block, errs

		case css.DeclarationGrammar:
			property := strings.ToLower(string(propData))
			raw := rawValueText(parser.Values())
			if err := p.appendDeclaration(block, property, raw); err != nil {
				block.Warnings = append(block.Warnings, fmt.Sprintf("%s: %v", property, err))
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", property, err))
			}

		case css.CustomPropertyGrammar:
			// custom properties (--var) are opaque, keep them raw
			property := string(propData)
			raw := rawValueText(parser.Values())
			block.Declarations = append(block.Declarations, Declaration{Property: property, Raw: raw})
		}
	}
}

func (p *Parser) appendDeclaration(block *Block, property, raw string) error {
	switch {
	case property == "margin" || property == "padding":
		sides, err := parseEdgeValues(raw)
		if err != nil {
			p.log.Debug("Rejecting shorthand", zap.String("property", property), zap.Error(err))
			return err
		}
		order := shorthandSides[len(sides)]
		for i, suffix := range sideSuffixes {
			v := sides[order[i]]
			block.Declarations = append(block.Declarations, Declaration{
				Property: property + suffix,
				Value:    v,
				Typed:    true,
			})
		}
		return nil

	case dimensionalProperties[property]:
		v, err := ParseValueOrAuto(raw)
		if err != nil {
			p.log.Debug("Rejecting declaration", zap.String("property", property), zap.Error(err))
			return err
		}
		block.Declarations = append(block.Declarations, Declaration{Property: property, Value: v, Typed: true})
		return nil

	default:
		block.Declarations = append(block.Declarations, Declaration{Property: property, Raw: raw})
		return nil
	}
}

// parseEdgeValues parses the 1-4 values of a margin/padding shorthand.
func parseEdgeValues(raw string) ([]values.LengthPercentageOrAuto, error) {
	c := tokens.NewCursor(raw)
	var sides []values.LengthPercentageOrAuto
	for !c.Done() {
		if len(sides) == 4 {
			return nil, c.NoMatch()
		}
		v, err := values.ParseLengthPercentageOrAuto(c)
		if err != nil {
			return nil, err
		}
		sides = append(sides, v)
	}
	if len(sides) == 0 {
		return nil, c.NoMatch()
	}
	return sides, nil
}

// ParseValue parses a complete <length-percentage> from value text,
// requiring all input to be consumed.
func ParseValue(raw string) (values.LengthPercentage, error) {
	c := tokens.NewCursor(raw)
	v, err := values.ParseLengthPercentage(c)
	if err != nil {
		return values.LengthPercentage{}, err
	}
	if !c.Done() {
		return values.LengthPercentage{}, c.NoMatch()
	}
	return v, nil
}

// ParseValueOrAuto parses a complete <length-percentage>|auto from value
// text, requiring all input to be consumed.
func ParseValueOrAuto(raw string) (values.LengthPercentageOrAuto, error) {
	c := tokens.NewCursor(raw)
	v, err := values.ParseLengthPercentageOrAuto(c)
	if err != nil {
		return values.LengthPercentageOrAuto{}, err
	}
	if !c.Done() {
		return values.LengthPercentageOrAuto{}, c.NoMatch()
	}
	return v, nil
}

// rawValueText joins value tokens back into the declaration's value text,
// collapsing whitespace runs to single spaces.
func rawValueText(toks []css.Token) string {
	var parts []string
	for _, t := range toks {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
