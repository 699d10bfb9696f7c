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

// entry pairs a symbol name with the Go function implementing it.
type entry struct {
	name string
	fn   lispy.BuiltinFn
}

// registry lists every primitive of spec.md §4.5 bound into the root
// environment by BindAll. Grouped the way the teacher's sxbuiltins package
// splits its own registrations by concern (one file per family).
var registry = []entry{
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"init", Init},
	{"join", Join},
	{"cons", Cons},
	{"len", Len},
	{"eval", Eval},

	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"%", Mod},
	{"^", Pow},
	{"min", Min},
	{"max", Max},

	{"<", Lt},
	{"<=", Le},
	{">", Gt},
	{">=", Ge},

	{"==", Eq},
	{"!=", Neq},

	{"!", Not},
	{"&&", And},
	{"||", Or},

	{"def", Def},
	{"=", Put},
	{"\\", Lambda},
	{"if", If},

	{"strhead", StrHead},
	{"strtail", StrTail},
	{"strjoin", StrJoin},

	{"print", Print},
	{"show", Show},
	{"error", Error},
	{"read", Read},
	{"load", Load},
	{"exit", ExitBuiltin},
}

// BindAll registers every builtin primitive, plus the `true`/`false`
// literals, into env (meant to be the root environment).
func BindAll(env *lispy.Environment) {
	for _, e := range registry {
		name := e.name
		env.Put(name, &lispy.Builtin{Name: name, Fn: e.fn})
	}
	env.Put("true", lispy.Bool(true))
	env.Put("false", lispy.Bool(false))
}
