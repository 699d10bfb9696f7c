//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package lispy

import (
	"io"
	"strings"
)

// cells is the ordered backing store shared by SExpr and QExpr. Both
// containers are slices of Values; the only difference between them is how
// the evaluator treats them (spec.md §3.1): an SExpr reduces under
// evaluation, a QExpr is returned unchanged.
type cells struct {
	elems []Value
}

func (c *cells) Len() int { return len(c.elems) }

// Pop removes and returns the i-th element.
func (c *cells) Pop(i int) Value {
	v := c.elems[i]
	c.elems = append(c.elems[:i], c.elems[i+1:]...)
	return v
}

// Add appends v to the end of the container.
func (c *cells) Add(v Value) { c.elems = append(c.elems, v) }

// AddFront prepends v to the container.
func (c *cells) AddFront(v Value) {
	c.elems = append([]Value{v}, c.elems...)
}

func (c *cells) isEqual(other *cells) bool {
	if len(c.elems) != len(other.elems) {
		return false
	}
	for i, v := range c.elems {
		if !v.IsEqual(other.elems[i]) {
			return false
		}
	}
	return true
}

func (c *cells) copyElems() []Value {
	out := make([]Value, len(c.elems))
	for i, v := range c.elems {
		out[i] = Copy(v)
	}
	return out
}

func printCells(w io.Writer, open, close byte, elems []Value) (int, error) {
	length := 0
	n, err := w.Write([]byte{open})
	length += n
	if err != nil {
		return length, err
	}
	for i, v := range elems {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			length += n
			if err != nil {
				return length, err
			}
		}
		n, err = Print(w, v)
		length += n
		if err != nil {
			return length, err
		}
	}
	n, err = w.Write([]byte{close})
	length += n
	return length, err
}

// SExpr is an evaluable ordered sequence of Values. Evaluating an SExpr
// applies its head (after evaluating every child) to the rest.
type SExpr struct{ cells }

// MakeSExpr builds an SExpr from the given Values.
func MakeSExpr(vs ...Value) *SExpr { return &SExpr{cells{elems: vs}} }

func (s *SExpr) IsAtom() bool { return s == nil || len(s.elems) == 0 }

func (s *SExpr) IsEqual(other Value) bool {
	o, ok := other.(*SExpr)
	if !ok {
		return false
	}
	if s == nil || o == nil {
		return (s == nil || len(s.elems) == 0) && (o == nil || len(o.elems) == 0)
	}
	return s.cells.isEqual(&o.cells)
}

func (s *SExpr) String() string { return printString(s) }

func (s *SExpr) Print(w io.Writer) (int, error) {
	if s == nil {
		return printCells(w, '(', ')', nil)
	}
	return printCells(w, '(', ')', s.elems)
}

func (s *SExpr) copy() *SExpr {
	if s == nil {
		return nil
	}
	return &SExpr{cells{elems: s.copyElems()}}
}

// Elements returns the container's elements. The returned slice must not be
// mutated by the caller.
func (s *SExpr) Elements() []Value {
	if s == nil {
		return nil
	}
	return s.elems
}

// QExpr is a quoted ordered sequence of Values: evaluating a QExpr returns
// it unchanged. It is the system's literal list type and the data type
// manipulated by the list builtins.
type QExpr struct{ cells }

// MakeQExpr builds a QExpr from the given Values.
func MakeQExpr(vs ...Value) *QExpr { return &QExpr{cells{elems: vs}} }

func (q *QExpr) IsAtom() bool { return q == nil || len(q.elems) == 0 }

func (q *QExpr) IsEqual(other Value) bool {
	o, ok := other.(*QExpr)
	if !ok {
		return false
	}
	if q == nil || o == nil {
		return (q == nil || len(q.elems) == 0) && (o == nil || len(o.elems) == 0)
	}
	return q.cells.isEqual(&o.cells)
}

func (q *QExpr) String() string { return printString(q) }

func (q *QExpr) Print(w io.Writer) (int, error) {
	if q == nil {
		return printCells(w, '{', '}', nil)
	}
	return printCells(w, '{', '}', q.elems)
}

func (q *QExpr) copy() *QExpr {
	if q == nil {
		return nil
	}
	return &QExpr{cells{elems: q.copyElems()}}
}

// Elements returns the container's elements. The returned slice must not be
// mutated by the caller.
func (q *QExpr) Elements() []Value {
	if q == nil {
		return nil
	}
	return q.elems
}

// ToSExpr retypes a QExpr in place as an SExpr, consuming q. Used by the
// `eval` builtin (spec.md §4.5).
func (q *QExpr) ToSExpr() *SExpr {
	if q == nil {
		return MakeSExpr()
	}
	return &SExpr{cells{elems: q.elems}}
}

func (*SExpr) TypeName() string { return "S-Expression" }
func (*QExpr) TypeName() string { return "Q-Expression" }

func printString(v Printable) string {
	var sb strings.Builder
	_, err := v.Print(&sb)
	if err != nil {
		return err.Error()
	}
	return sb.String()
}
