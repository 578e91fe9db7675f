package kaitai

import "weak"

// Unit is the distinguished empty type parameter used where a node has no
// parent, or where a tree's root type parameter is otherwise vacuous.
type Unit struct{}

// Ref is a back-reference to a value of type T that does not keep it alive.
// It wraps weak.Pointer[T] (§3.1, §9): the original's Rc/Weak pair relies on
// reference counting to let a child's reference to its parent or root not
// prevent that parent's collection once the caller drops the tree; Go has no
// refcounting GC, so a weak pointer is the native equivalent — Value reports
// whether the referent is still alive instead of asserting that it is.
type Ref[T any] struct {
	w weak.Pointer[T]
}

// NewRef returns a Ref pointing at v. NewRef(nil) returns the zero Ref, whose
// Value always reports false — the representation for "no parent"/"no root".
func NewRef[T any](v *T) Ref[T] {
	if v == nil {
		return Ref[T]{}
	}
	return Ref[T]{w: weak.Make(v)}
}

// Value resolves the reference. It reports false if the referent has since
// been garbage collected, or if the Ref was never set.
func (r Ref[T]) Value() (*T, bool) {
	p := r.w.Value()
	return p, p != nil
}

// KaitaiStruct is the contract every parsed-tree node implements: given a
// stream positioned at the node's start, a reference to its immediate
// parent, and a reference to the tree's root, populate the node's fields.
// R and P are the concrete types of the tree's root and this node's parent;
// a node with no parent uses Unit for P, and the root node uses its own type
// for R (see ReadRootInto).
type KaitaiStruct[R, P any] interface {
	Read(s *Stream, parent Ref[P], root Ref[R]) error
}

// ReadInto allocates a zero T, reads it from s with the given parent and
// root references, and returns it. PT pins down that *T implements
// KaitaiStruct[R, P], following the usual Go substitute for associated
// types: the original's KStruct trait carries Root/Parent as associated
// types, which Go generics express as explicit type parameters instead
// (§4.4, §9).
func ReadInto[R, P, T any, PT interface {
	*T
	KaitaiStruct[R, P]
}](s *Stream, parent Ref[P], root Ref[R]) (*T, error) {
	t := new(T)
	var pt PT = t
	if err := pt.Read(s, parent, root); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadIntoWithInit is ReadInto, but first runs init against the freshly
// allocated, not-yet-read value. Generated code uses this when a node needs
// constructor-style parameters — a declared size, an enum discriminant
// carried down from the caller — set before Read consumes the stream.
func ReadIntoWithInit[R, P, T any, PT interface {
	*T
	KaitaiStruct[R, P]
}](s *Stream, parent Ref[P], root Ref[R], init func(*T)) (*T, error) {
	t := new(T)
	if init != nil {
		init(t)
	}
	var pt PT = t
	if err := pt.Read(s, parent, root); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadRootInto allocates a zero T and reads it as the root of its own tree:
// R is T itself, so the root reference has to exist before Read runs, in
// case Read hands it down to children it reads along the way. There is no
// parent, so Unit is used for P.
func ReadRootInto[T any, PT interface {
	*T
	KaitaiStruct[T, Unit]
}](s *Stream) (*T, error) {
	t := new(T)
	root := NewRef[T](t)
	var pt PT = t
	if err := pt.Read(s, Ref[Unit]{}, root); err != nil {
		return nil, err
	}
	return t, nil
}
