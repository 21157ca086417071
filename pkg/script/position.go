package script

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spicery/fwdlist/pkg/fwdlist"
)

type PositionKind int

const (
	PositionBegin PositionKind = iota
	PositionEnd
	PositionFind
	PositionIndex
)

// Position names an iterator position to be resolved against a list when the
// step runs.
type Position struct {
	Kind  PositionKind
	Value string
	Index int
}

// ErrPositionNotFound is returned when a position cannot be resolved.
var ErrPositionNotFound = errors.New("position not found")

// Resolve returns the iterator that p denotes in l. A find that matches
// nothing resolves to End, exactly as Find does; an index past the last
// element is an error.
func (p Position) Resolve(l *fwdlist.List[string]) (fwdlist.Iterator[string], error) {
	switch p.Kind {
	case PositionBegin:
		return l.Begin(), nil
	case PositionEnd:
		return l.End(), nil
	case PositionFind:
		return l.Find(p.Value), nil
	case PositionIndex:
		it := l.Begin()
		for i := 0; i < p.Index; i++ {
			if it.IsEnd() {
				break
			}
			it.Next()
		}
		if it.IsEnd() {
			return it, errors.Wrapf(ErrPositionNotFound, "index %d in list of size %d", p.Index, l.Size())
		}
		return it, nil
	}
	return l.End(), errors.Errorf("unknown position kind %d", p.Kind)
}

func (p Position) String() string {
	switch p.Kind {
	case PositionBegin:
		return "begin"
	case PositionEnd:
		return "end"
	case PositionFind:
		return fmt.Sprintf("find %q", p.Value)
	case PositionIndex:
		return fmt.Sprintf("index %d", p.Index)
	}
	return "unknown"
}
