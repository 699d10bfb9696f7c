//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package lispy

// Truthy maps a value to a boolean following spec.md §4.5's truthy
// coercion rule: Bool is itself; numbers are nonzero; strings/symbols are
// nonempty; containers are nonempty; anything else cannot be coerced.
func Truthy(v Value) (bool, error) {
	switch val := v.(type) {
	case Bool:
		return bool(val), nil
	case Int:
		return val != 0, nil
	case Float:
		return val != 0, nil
	case Str:
		return len(val) > 0, nil
	case Sym:
		return len(val) > 0, nil
	case *QExpr:
		return val.Len() > 0, nil
	case *SExpr:
		return val.Len() > 0, nil
	default:
		return false, MakeErr("cannot convert %s to bool", v.TypeName())
	}
}
