//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package builtin registers Lispy's primitive operations: list
// manipulation, arithmetic, relational/equality/logic, binding, lambda
// construction, conditionals, strings, and the I/O-ish primitives (spec.md
// §4.5). Every entry here has the signature lispy.BuiltinFn.
package builtin

import (
	"fmt"

	"github.com/lispy-lang/lispy"
)

// checkArity returns an Err matching spec.md §7's arity message unless args
// has exactly n elements.
func checkArity(name string, args []lispy.Value, n int) error {
	if len(args) != n {
		return lispy.MakeErr("'%s' expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// checkMinArity returns an Err unless args has at least n elements.
func checkMinArity(name string, args []lispy.Value, n int) error {
	if len(args) < n {
		return lispy.MakeErr("'%s' expects at least %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// getQExpr returns args[i] as a *QExpr or an Err naming the offending
// argument position (1-based, matching spec.md §7's "argument i").
func getQExpr(name string, args []lispy.Value, i int) (*lispy.QExpr, error) {
	q, ok := args[i].(*lispy.QExpr)
	if !ok {
		return nil, lispy.MakeErr("'%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i+1, args[i].TypeName(), "Q-Expression")
	}
	return q, nil
}

// getStr returns args[i] as a Str or a type-mismatch Err.
func getStr(name string, args []lispy.Value, i int) (lispy.Str, error) {
	s, ok := args[i].(lispy.Str)
	if !ok {
		return "", lispy.MakeErr("'%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i+1, args[i].TypeName(), "String")
	}
	return s, nil
}

// requireNonEmpty returns an Err of the form "'name' passed {}!" when q has
// no elements (spec.md §7).
func requireNonEmpty(name string, q *lispy.QExpr) error {
	if q.Len() == 0 {
		return lispy.MakeErr("'%s' passed {}!", name)
	}
	return nil
}

var errNotANumber = fmt.Errorf("cannot operate on non-number!")
