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

// bindNames checks that args[0] is a QExpr of Symbols matching args[1:] in
// count, then calls assign for each pair (spec.md §4.5, `def`/`=`).
func bindNames(name string, args []lispy.Value, assign func(sym string, v lispy.Value)) (lispy.Value, error) {
	if err := checkMinArity(name, args, 1); err != nil {
		return nil, err
	}
	names, err := getQExpr(name, args, 0)
	if err != nil {
		return nil, err
	}
	values := args[1:]
	symbols := names.Elements()
	if len(symbols) != len(values) {
		return lispy.MakeErr("'%s' expects %d arguments, got %d", name, len(symbols), len(values)), nil
	}
	for i, s := range symbols {
		sym, ok := s.(lispy.Sym)
		if !ok {
			return lispy.MakeErr("'%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i+1, s.TypeName(), "Symbol"), nil
		}
		assign(string(sym), values[i])
	}
	return lispy.MakeSExpr(), nil
}

// Def implements `def`: assigns in the root environment.
func Def(env *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return bindNames("def", args.Elements(), func(sym string, v lispy.Value) { env.Def(sym, v) })
}

// Put implements `=`: assigns in the current environment.
func Put(env *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return bindNames("=", args.Elements(), func(sym string, v lispy.Value) { env.Put(sym, v) })
}
