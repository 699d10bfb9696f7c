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

import (
	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
)

// If implements `if cond {then} {else}`: coerces cond to Bool, retypes and
// evaluates the chosen QExpr branch as an SExpr (spec.md §4.5).
func If(env *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("if", elems, 3); err != nil {
		return nil, err
	}
	cond, err := lispy.Truthy(elems[0])
	if err != nil {
		return nil, err
	}
	thenQ, err := getQExpr("if", elems, 1)
	if err != nil {
		return nil, err
	}
	elseQ, err := getQExpr("if", elems, 2)
	if err != nil {
		return nil, err
	}
	if cond {
		return eval.Eval(env, thenQ.ToSExpr())
	}
	return eval.Eval(env, elseQ.ToSExpr())
}
