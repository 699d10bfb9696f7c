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
	"fmt"
	"io"
	"os"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/reader"
)

// Stdout is where Print and Show write; overridable for tests.
var Stdout io.Writer = os.Stdout

// Exit terminates the process with the given status. It is a variable so
// tests can observe an `(exit n)` call instead of killing the test binary.
var Exit func(code int) = os.Exit

// Print implements `print`: writes each argument separated by spaces,
// terminated by a newline.
func Print(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	for i, v := range elems {
		if i > 0 {
			fmt.Fprint(Stdout, " ")
		}
		lispy.Print(Stdout, v)
	}
	fmt.Fprintln(Stdout)
	return lispy.MakeSExpr(), nil
}

// Show implements `show`: writes a Str's contents without quotes or a
// trailing newline.
func Show(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("show", elems, 1); err != nil {
		return nil, err
	}
	s, err := getStr("show", elems, 0)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(Stdout, string(s))
	return lispy.MakeSExpr(), nil
}

// Error implements `error`: constructs an Err(s).
func Error(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("error", elems, 1); err != nil {
		return nil, err
	}
	s, err := getStr("error", elems, 0)
	if err != nil {
		return nil, err
	}
	return lispy.MakeErr("%s", string(s)), nil
}

// Read implements `read`: parses the contents of s through the external
// parser and returns a QExpr of the parsed forms.
func Read(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("read", elems, 1); err != nil {
		return nil, err
	}
	s, err := getStr("read", elems, 0)
	if err != nil {
		return nil, err
	}
	forms, err := reader.ReadString("read", string(s))
	if err != nil {
		return lispy.MakeErr("%s", err.Error()), nil
	}
	return lispy.MakeQExpr(forms...), nil
}

// Load implements `load`: parses the named file and evaluates each
// top-level form in the current environment, printing any resulting Err
// but continuing with the next form (spec.md §4.5, §7).
func Load(env *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("load", elems, 1); err != nil {
		return nil, err
	}
	path, err := getStr("load", elems, 0)
	if err != nil {
		return nil, err
	}
	forms, err := reader.ReadFile(string(path))
	if err != nil {
		return lispy.MakeErr("could not load %s: %s", string(path), err.Error()), nil
	}
	for _, form := range forms {
		result, err := eval.Eval(env, form)
		if err != nil {
			return nil, err
		}
		if errVal, ok := result.(lispy.Err); ok {
			fmt.Fprintln(Stdout, errVal.String())
		}
	}
	return lispy.MakeSExpr(), nil
}

// ExitBuiltin implements `exit`: terminates the process with the given
// integer status.
func ExitBuiltin(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	code := 0
	if len(elems) > 0 {
		n, ok := elems[0].(lispy.Int)
		if !ok {
			return nil, lispy.MakeErr("'exit' passed incorrect type for argument 1. Got %s, Expected %s.", elems[0].TypeName(), "Number")
		}
		code = int(n)
	}
	Exit(code)
	return lispy.MakeSExpr(), nil
}
