// Package uistate keeps the little bits of widget state that must survive
// from one frame to the next in an interface that is re-declared every frame.
//
// Cells are addressed by an ID derived from caller supplied labels and hold
// exactly one kind of value. Asking for a cell with a different kind than it
// was created with is reported as ErrKindMismatch instead of silently
// reinterpreting the value.
package uistate

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a widget or one of its state cells.
type ID uint64

// Hash derives an ID from a label.
func Hash(label string) ID {
	return ID(xxhash.Sum64String(label))
}

// Child derives the ID of a sub-element, for example a slider inside a
// colour picker, from its parent's ID.
func (id ID) Child(label string) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(label)
	return ID(d.Sum64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Kind is the type tag of a cell.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt
	KindFloat
	KindOptional
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindOptional:
		return "optional"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ErrKindMismatch is returned when a cell is accessed as a different kind
// than it holds.
var ErrKindMismatch = errors.New("uistate: cell kind mismatch")

// Optional is an optional 64-bit value, used for drag locks.
type Optional struct {
	Value uint64
	Valid bool
}

// Some wraps v.
func Some(v uint64) Optional { return Optional{Value: v, Valid: true} }

// None is the empty Optional.
var None = Optional{}

type cell struct {
	kind Kind
	b    bool
	i    int
	f    float64
	opt  Optional
}

// Store maps IDs to cells. Cells are created lazily with their zero value
// and live for the lifetime of the store. The zero value is not usable;
// call NewStore.
//
// A Store is meant to be driven by a single UI pass at a time and does no
// locking.
type Store struct {
	cells map[ID]*cell
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[ID]*cell)}
}

func (s *Store) get(id ID, kind Kind) (*cell, error) {
	c, ok := s.cells[id]
	if !ok {
		c = &cell{kind: kind}
		s.cells[id] = c
		return c, nil
	}
	if c.kind != kind {
		return nil, fmt.Errorf("%w: cell %s holds %s, requested %s", ErrKindMismatch, id, c.kind, kind)
	}
	return c, nil
}

// Bool returns the bool cell for id, creating it as false.
func (s *Store) Bool(id ID) (*bool, error) {
	c, err := s.get(id, KindBool)
	if err != nil {
		return nil, err
	}
	return &c.b, nil
}

// Int returns the int cell for id, creating it as 0.
func (s *Store) Int(id ID) (*int, error) {
	c, err := s.get(id, KindInt)
	if err != nil {
		return nil, err
	}
	return &c.i, nil
}

// Float returns the float cell for id, creating it as 0.
func (s *Store) Float(id ID) (*float64, error) {
	c, err := s.get(id, KindFloat)
	if err != nil {
		return nil, err
	}
	return &c.f, nil
}

// Optional returns the optional cell for id, creating it empty.
func (s *Store) Optional(id ID) (*Optional, error) {
	c, err := s.get(id, KindOptional)
	if err != nil {
		return nil, err
	}
	return &c.opt, nil
}

// Kind reports the kind of the cell at id, if any.
func (s *Store) Kind(id ID) (Kind, bool) {
	c, ok := s.cells[id]
	if !ok {
		return 0, false
	}
	return c.kind, true
}

// Delete drops the cell at id.
func (s *Store) Delete(id ID) {
	delete(s.cells, id)
}

// Len returns the number of cells.
func (s *Store) Len() int {
	return len(s.cells)
}
