//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package lispy_test

import (
	"testing"

	"github.com/lispy-lang/lispy"
)

func TestNumAddPromotion(t *testing.T) {
	t.Parallel()

	if got := lispy.NumAdd(lispy.Int(2), lispy.Int(3)); got != lispy.Int(5) {
		t.Errorf("Int+Int = %v, want Int(5)", got)
	}
	if got := lispy.NumAdd(lispy.Int(2), lispy.Float(0.5)); got != lispy.Float(2.5) {
		t.Errorf("Int+Float = %v, want Float(2.5)", got)
	}
}

func TestNumCmp(t *testing.T) {
	t.Parallel()

	if lispy.NumCmp(lispy.Int(1), lispy.Int(2)) >= 0 {
		t.Error("1 should compare less than 2")
	}
	if lispy.NumCmp(lispy.Float(2.0), lispy.Int(2)) != 0 {
		t.Error("2.0 should compare equal to 2")
	}
}
