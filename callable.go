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

import "fmt"

// BuiltinFn is the signature every host-implemented primitive must have:
// it receives the calling environment and the (already evaluated) argument
// list as an SExpr, and returns a result Value or a Go error describing a
// failure. The evaluator turns a non-nil error into an Err value.
type BuiltinFn func(env *Environment, args *SExpr) (Value, error)

// Builtin wraps a host function so it can be bound as a callable value.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// IsAtom always returns true: a builtin reference is atomic.
func (*Builtin) IsAtom() bool { return true }

// IsEqual returns true iff both builtins reference the very same primitive.
func (b *Builtin) IsEqual(other Value) bool {
	o, ok := other.(*Builtin)
	return ok && b == o
}

func (b *Builtin) String() string   { return "<builtin function>" }
func (*Builtin) TypeName() string   { return "Function" }

// Lambda is a first-class function value: a captured environment plus
// formals and body (spec.md §3.1, §4.4).
type Lambda struct {
	// Env is the lambda's own captured environment, holding the arguments
	// already bound by partial application. The evaluator never mutates it:
	// each application binds into a fork of Env, and on full application
	// sets that fork's parent to the caller's environment for the duration
	// of the call (spec.md §4.4, §9).
	Env     *Environment
	Formals *QExpr
	Body    *QExpr
}

// IsAtom always returns true: a lambda reference is atomic.
func (*Lambda) IsAtom() bool { return true }

// IsEqual compares formals and body structurally; the captured environment
// is ignored (see DESIGN.md, "Open Question: lambda equality").
func (l *Lambda) IsEqual(other Value) bool {
	o, ok := other.(*Lambda)
	if !ok {
		return false
	}
	return l.Formals.IsEqual(o.Formals) && l.Body.IsEqual(o.Body)
}

func (l *Lambda) String() string {
	return fmt.Sprintf("(\\ %s %s)", l.Formals.String(), l.Body.String())
}
func (*Lambda) TypeName() string { return "Function" }
