package value

import (
	"strings"

	"github.com/minilisp/minilisp/internal/lerrors"
)

// Write produces the canonical printed form of v: () for the empty list,
// decimal for Integer, #t/#f for Boolean, the bare name for Symbol, and
// (e1 e2 ... en) or (e1 ... en . tail) for a Pair chain. Closures and
// Builtins are not serializable and yield a RuntimeError.
func Write(v Value) (string, error) {
	var b strings.Builder
	if err := write(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, v Value) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("()")
		return nil
	case *Integer:
		b.WriteString(t.String())
		return nil
	case *Boolean:
		b.WriteString(t.String())
		return nil
	case *Symbol:
		b.WriteString(t.Name)
		return nil
	case *Pair:
		return writePair(b, t)
	default:
		return lerrors.Runtime()
	}
}

func writePair(b *strings.Builder, p *Pair) error {
	b.WriteByte('(')
	if err := write(b, p.First); err != nil {
		return err
	}
	rest := p.Second
	for {
		switch t := rest.(type) {
		case nil:
			b.WriteByte(')')
			return nil
		case *Pair:
			b.WriteByte(' ')
			if err := write(b, t.First); err != nil {
				return err
			}
			rest = t.Second
		default:
			b.WriteString(" . ")
			if err := write(b, rest); err != nil {
				return err
			}
			b.WriteByte(')')
			return nil
		}
	}
}
