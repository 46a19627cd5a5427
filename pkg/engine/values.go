package engine

import (
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/samber/lo"
)

// toValue converts an evaluation result to a plain Go value. Lists and
// arrays become []any; anything without a Go counterpart becomes its
// printed form.
func toValue(s zygo.Sexp) any {
	switch v := s.(type) {
	case nil:
		return nil
	case *zygo.SexpInt:
		return v.Val
	case *zygo.SexpFloat:
		return v.Val
	case *zygo.SexpBool:
		return v.Val
	case *zygo.SexpStr:
		return v.S
	case *sexpVec3:
		return v.vec
	case *sexpFrame:
		return v.frame
	case *sexpBox:
		return v.box
	case *sexpPlane:
		return v.plane
	case *sexpGeometry:
		return v.geometry
	case *zygo.SexpPair:
		items, err := zygo.ListToArray(v)
		if err != nil {
			return v.SexpString(nil)
		}
		return lo.Map(items, func(item zygo.Sexp, _ int) any { return toValue(item) })
	case *zygo.SexpArray:
		return lo.Map(v.Val, func(item zygo.Sexp, _ int) any { return toValue(item) })
	}
	if s == zygo.SexpNull {
		return nil
	}
	return s.SexpString(nil)
}
