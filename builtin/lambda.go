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

// Lambda implements `\`: constructs a Lambda with a freshly allocated,
// initially empty captured environment (spec.md §4.5).
func Lambda(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("\\", elems, 2); err != nil {
		return nil, err
	}
	formals, err := getQExpr("\\", elems, 0)
	if err != nil {
		return nil, err
	}
	body, err := getQExpr("\\", elems, 1)
	if err != nil {
		return nil, err
	}
	for i, f := range formals.Elements() {
		if _, ok := f.(lispy.Sym); !ok {
			return lispy.MakeErr("'%s' passed incorrect type for argument %d. Got %s, Expected %s.", "\\", i+1, f.TypeName(), "Symbol"), nil
		}
	}
	return &lispy.Lambda{
		Env:     lispy.NewChildEnvironment(nil),
		Formals: formals,
		Body:    body,
	}, nil
}
