package script

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/spicery/fwdlist/pkg/fwdlist"
)

// Op is one compiled step. It is applied to the list named target.
type Op interface {
	Apply(env *Env, target string) error
}

// ErrExpectationFailed is returned by an expect step whose assertions do not
// hold.
var ErrExpectationFailed = errors.New("expectation failed")

////////////////////////////////////////////////////////////////////////////////
/// Ops
////////////////////////////////////////////////////////////////////////////////

type PushFrontOp struct {
	Value string
}

func (o *PushFrontOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	l.PushFront(o.Value)
	return nil
}

type PopFrontOp struct {
}

func (o *PopFrontOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	return l.PopFront()
}

// SetFrontOp overwrites the first element in place.
type SetFrontOp struct {
	Value string
}

func (o *SetFrontOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	front, err := l.Front()
	if err != nil {
		return err
	}
	*front = o.Value
	return nil
}

type InsertAfterOp struct {
	At    Position
	Value string
}

func (o *InsertAfterOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	pos, err := o.At.Resolve(l)
	if err != nil {
		return err
	}
	l.InsertAfter(pos, o.Value)
	return nil
}

type EraseAfterOp struct {
	At Position
}

func (o *EraseAfterOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	pos, err := o.At.Resolve(l)
	if err != nil {
		return err
	}
	return l.EraseAfter(pos)
}

type ClearOp struct {
}

func (o *ClearOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	l.Clear()
	return nil
}

type SwapOp struct {
	With string
}

func (o *SwapOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	other, err := env.Lookup(o.With)
	if err != nil {
		return err
	}
	fwdlist.Swap(l, other)
	return nil
}

// CopyToOp assigns a deep copy of the target into the list named To,
// declaring that list first if needed.
type CopyToOp struct {
	To string
}

func (o *CopyToOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	dst, ok := env.lists[o.To]
	if !ok {
		env.Declare(o.To, l.Clone())
		return nil
	}
	dst.Assign(l)
	return nil
}

type ExpectOp struct {
	Expect ExpectConfig
}

func (o *ExpectOp) Apply(env *Env, target string) error {
	l, err := env.Lookup(target)
	if err != nil {
		return err
	}
	e := o.Expect
	if e.Size != nil && l.Size() != *e.Size {
		return errors.Wrapf(ErrExpectationFailed, "size is %d, want %d", l.Size(), *e.Size)
	}
	if e.Empty != nil && l.IsEmpty() != *e.Empty {
		return errors.Wrapf(ErrExpectationFailed, "empty is %t, want %t", l.IsEmpty(), *e.Empty)
	}
	if e.Front != nil {
		front, err := l.Front()
		if err != nil {
			return errors.Wrapf(ErrExpectationFailed, "front: %v", err)
		}
		if *front != *e.Front {
			return errors.Wrapf(ErrExpectationFailed, "front is %q, want %q", *front, *e.Front)
		}
	}
	if e.Values != nil && !slices.Equal(l.Values(), e.Values) {
		return errors.Wrapf(ErrExpectationFailed, "values are %v, want %v", l.Values(), e.Values)
	}
	if e.Contains != nil && l.Find(*e.Contains).IsEnd() {
		return errors.Wrapf(ErrExpectationFailed, "%q not found", *e.Contains)
	}
	if e.Missing != nil && !l.Find(*e.Missing).IsEnd() {
		return errors.Wrapf(ErrExpectationFailed, "%q unexpectedly found", *e.Missing)
	}
	return nil
}
