package command

import (
	"strings"
)

// A SyntaxShape tells the parser how to read an argument.
type SyntaxShape uint8

const (
	// ShapeAny reads a single value.
	ShapeAny SyntaxShape = iota
	// ShapeInt reads a single value which must evaluate to an integer.
	ShapeInt
	// ShapeMath reads either a block or the rest of the command call
	// as a single expression wrapped in a block.
	ShapeMath
	// ShapeBlock reads a block literal.
	ShapeBlock
)

func (s SyntaxShape) String() string {
	switch s {
	case ShapeAny:
		return "any"
	case ShapeInt:
		return "int"
	case ShapeMath:
		return "condition"
	case ShapeBlock:
		return "block"
	}

	panic("unknown shape")
}

// A PositionalArg describes one positional argument of a command.
type PositionalArg struct {
	Name        string
	Shape       SyntaxShape
	Description string
	Required    bool
}

// A Signature describes the arguments accepted by a command.
type Signature struct {
	Name       string
	Positional []PositionalArg
	Rest       *PositionalArg
	// IsFilter is true if the command consumes its input.
	IsFilter bool
}

// NewSignature returns a signature without arguments.
func NewSignature(name string) *Signature {
	return &Signature{Name: name}
}

// Required adds a required positional argument.
func (s *Signature) Required(name string, shape SyntaxShape, desc string) *Signature {
	s.Positional = append(s.Positional, PositionalArg{Name: name, Shape: shape, Description: desc, Required: true})
	return s
}

// Optional adds an optional positional argument.
func (s *Signature) Optional(name string, shape SyntaxShape, desc string) *Signature {
	s.Positional = append(s.Positional, PositionalArg{Name: name, Shape: shape, Description: desc})
	return s
}

// RestArgs accepts any number of trailing arguments.
func (s *Signature) RestArgs(name string, shape SyntaxShape, desc string) *Signature {
	s.Rest = &PositionalArg{Name: name, Shape: shape, Description: desc}
	return s
}

// Filter marks the command as consuming its input.
func (s *Signature) Filter() *Signature {
	s.IsFilter = true
	return s
}

// String returns the usage line of the command, e.g. "skip-while <condition>".
func (s *Signature) String() string {
	var sb strings.Builder

	sb.WriteString(s.Name)
	for _, p := range s.Positional {
		sb.WriteByte(' ')
		if p.Required {
			sb.WriteString("<" + p.Name + ">")
		} else {
			sb.WriteString("[" + p.Name + "]")
		}
	}
	if s.Rest != nil {
		sb.WriteString(" ..." + s.Rest.Name)
	}

	return sb.String()
}
