//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builtin

import "github.com/lispy-lang/lispy"

func cmpBuiltin(name string, test func(int) bool) lispy.BuiltinFn {
	return func(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
		elems := args.Elements()
		if err := checkArity(name, elems, 2); err != nil {
			return nil, err
		}
		x, err := numArg(name, elems, 0)
		if err != nil {
			return nil, err
		}
		y, err := numArg(name, elems, 1)
		if err != nil {
			return nil, err
		}
		return lispy.Bool(test(lispy.NumCmp(x, y))), nil
	}
}

// Lt implements `<`.
var Lt = cmpBuiltin("<", func(c int) bool { return c < 0 })

// Le implements `<=`.
var Le = cmpBuiltin("<=", func(c int) bool { return c <= 0 })

// Gt implements `>`.
var Gt = cmpBuiltin(">", func(c int) bool { return c > 0 })

// Ge implements `>=`.
var Ge = cmpBuiltin(">=", func(c int) bool { return c >= 0 })

// Eq implements `==`: strictly binary structural equality (spec.md §4.2).
func Eq(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("==", elems, 2); err != nil {
		return nil, err
	}
	return lispy.Bool(elems[0].IsEqual(elems[1])), nil
}

// Neq implements `!=`.
func Neq(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("!=", elems, 2); err != nil {
		return nil, err
	}
	return lispy.Bool(!elems[0].IsEqual(elems[1])), nil
}
