package ast

import "strings"

// Program is the root node of a top-level source file.
type Program struct {
	attrs
	Body []Node
}

// NewProgram creates a new Program node.
func NewProgram(body ...Node) *Program {
	return &Program{Body: body}
}

func (p *Program) String() string {
	parts := make([]string, len(p.Body))
	for i, n := range p.Body {
		parts[i] = n.String()
	}
	return strings.Join(parts, "\n")
}
