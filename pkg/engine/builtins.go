package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/geokernel/pkg/bbox"
	"github.com/chazu/geokernel/pkg/curve"
	"github.com/chazu/geokernel/pkg/equality"
	"github.com/chazu/geokernel/pkg/fit"
	"github.com/chazu/geokernel/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing kernel values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpFrame struct {
	frame geom.Transform
}

func (f *sexpFrame) SexpString(ps *zygo.PrintState) string {
	o := f.frame.Origin
	return fmt.Sprintf("(frame :origin (vec3 %g %g %g))", o.X, o.Y, o.Z)
}
func (f *sexpFrame) Type() *zygo.RegisteredType { return nil }

// sexpBox holds a box that no builtin mutates; union and intersection
// return new boxes.
type sexpBox struct {
	box *bbox.Box3
}

func (b *sexpBox) SexpString(ps *zygo.PrintState) string {
	switch {
	case b.box.IsEmpty():
		return "(empty-box)"
	case b.box.IsUniverse():
		return "(universe-box)"
	}
	return "(" + b.box.String() + ")"
}
func (b *sexpBox) Type() *zygo.RegisteredType { return nil }

type sexpPlane struct {
	plane geom.PlaneEquation
}

func (p *sexpPlane) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(plane %g %g %g %g)", p.plane.A(), p.plane.B(), p.plane.C(), p.plane.D())
}
func (p *sexpPlane) Type() *zygo.RegisteredType { return nil }

type sexpGeometry struct {
	geometry curve.Geometry
}

func (g *sexpGeometry) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s)", g.geometry.Kind())
}
func (g *sexpGeometry) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// A keyword consumes the argument after it, unless it comes last.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

func (a kwArgs) require(name string, n int) error {
	if len(a.positional) != n {
		return errors.Errorf("%s requires %d positional arguments, got %d", name, n, len(a.positional))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, errors.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", errors.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toAxis converts :x, :y or :z to a bbox axis.
func toAxis(s zygo.Sexp) (int, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, errors.Wrap(err, "expected axis keyword (:x, :y, :z)")
	}
	switch name {
	case "x":
		return bbox.AxisX, nil
	case "y":
		return bbox.AxisY, nil
	case "z":
		return bbox.AxisZ, nil
	}
	return 0, errors.Errorf("invalid axis %q, expected x, y, or z", name)
}

// toSide converts :min or :max to a bound index.
func toSide(s zygo.Sexp) (int, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, errors.Wrap(err, "expected :min or :max")
	}
	switch name {
	case "min":
		return 0, nil
	case "max":
		return 1, nil
	}
	return 0, errors.Errorf("invalid side %q, expected min or max", name)
}

func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, errors.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toFrame(s zygo.Sexp) (geom.Transform, error) {
	if f, ok := s.(*sexpFrame); ok {
		return f.frame, nil
	}
	return geom.Transform{}, errors.Errorf("expected frame, got %T (%s)", s, s.SexpString(nil))
}

func toBox(s zygo.Sexp) (*bbox.Box3, error) {
	if b, ok := s.(*sexpBox); ok {
		return b.box, nil
	}
	return nil, errors.Errorf("expected box, got %T (%s)", s, s.SexpString(nil))
}

func toPlane(s zygo.Sexp) (geom.PlaneEquation, error) {
	if p, ok := s.(*sexpPlane); ok {
		return p.plane, nil
	}
	return geom.PlaneEquation{}, errors.Errorf("expected plane, got %T (%s)", s, s.SexpString(nil))
}

func toGeometry(s zygo.Sexp) (curve.Geometry, error) {
	if g, ok := s.(*sexpGeometry); ok {
		return g.geometry, nil
	}
	return nil, errors.Errorf("expected geometry, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, errors.Errorf("expected list or array, got %T", s)
}

// toPoints reads a list of vec3.
func toPoints(s zygo.Sexp) ([]v3.Vec, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	points := make([]v3.Vec, len(items))
	for i, item := range items {
		if points[i], err = toVec3(item); err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
	}
	return points, nil
}

// floatKW reads an optional numeric keyword argument.
func floatKW(a kwArgs, name string, fallback float64) (float64, error) {
	v, ok := a.kw[name]
	if !ok {
		return fallback, nil
	}
	f, err := toFloat64(v)
	return f, errors.Wrap(err, name)
}

func vecList(vs []v3.Vec) zygo.Sexp {
	return zygo.MakeList(lo.Map(vs, func(v v3.Vec, _ int) zygo.Sexp { return &sexpVec3{vec: v} }))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type builtin func(args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs the kernel builtins into a zygomys environment.
// tolerance is the default for builtins that compare or iterate.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens and kebab-case names match what is registered here.
func registerBuiltins(env *zygo.Zlisp, tolerance float64) {
	comparer := equality.NewComparer(tolerance)

	builtins := map[string]builtin{
		// (vec3 1 2 3)
		"vec3": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 3 {
				return zygo.SexpNull, errors.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
			}
			var xyz [3]float64
			for i, arg := range args {
				f, err := toFloat64(arg)
				if err != nil {
					return zygo.SexpNull, errors.Wrapf(err, "vec3: %c", "xyz"[i])
				}
				xyz[i] = f
			}
			return &sexpVec3{vec: v3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
		},

		// (frame :origin (vec3 ...) :x (vec3 ...) :y (vec3 ...) :z (vec3 ...))
		// Missing axes default to the world axes; when :z is missing and
		// :x or :y is given, z is x × y.
		"frame": func(args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			frame := geom.Identity()
			fields := []struct {
				key string
				dst *v3.Vec
			}{
				{"origin", &frame.Origin},
				{"x", &frame.BasisX},
				{"y", &frame.BasisY},
				{"z", &frame.BasisZ},
			}
			for _, f := range fields {
				v, ok := pa.kw[f.key]
				if !ok {
					continue
				}
				vec, err := toVec3(v)
				if err != nil {
					return zygo.SexpNull, errors.Wrapf(err, "frame: %s", f.key)
				}
				*f.dst = vec
			}
			_, hasX := pa.kw["x"]
			_, hasY := pa.kw["y"]
			if _, hasZ := pa.kw["z"]; !hasZ && (hasX || hasY) {
				frame.BasisZ = frame.BasisX.Cross(frame.BasisY)
			}
			return &sexpFrame{frame: frame}, nil
		},

		// (box (vec3 0 0 0) (vec3 1 1 1) :frame f)
		"box": func(args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if err := pa.require("box", 2); err != nil {
				return zygo.SexpNull, err
			}
			min, err := toVec3(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "box: min")
			}
			max, err := toVec3(pa.positional[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "box: max")
			}
			frame := geom.Identity()
			if v, ok := pa.kw["frame"]; ok {
				if frame, err = toFrame(v); err != nil {
					return zygo.SexpNull, errors.Wrap(err, "box: frame")
				}
			}
			return &sexpBox{box: bbox.New3(min, max, frame)}, nil
		},

		"empty_box": func(args []zygo.Sexp) (zygo.Sexp, error) {
			return &sexpBox{box: bbox.Empty3()}, nil
		},

		"universe_box": func(args []zygo.Sexp) (zygo.Sexp, error) {
			return &sexpBox{box: bbox.Universe3()}, nil
		},

		// (disable-bound b :max :z) returns a copy of b without that bound.
		"disable_bound": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 3 {
				return zygo.SexpNull, errors.Errorf("disable-bound requires a box, a side and an axis")
			}
			b, err := toBox(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "disable-bound")
			}
			side, err := toSide(args[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "disable-bound")
			}
			axis, err := toAxis(args[2])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "disable-bound")
			}
			clone := b.Clone()
			clone.SetBoundEnabled(side, axis, false)
			return &sexpBox{box: clone}, nil
		},

		"union":        boxOp("union", bbox.Union),
		"intersection": boxOp("intersection", bbox.Intersection),

		"is_empty": boxQuery("is-empty", func(b *bbox.Box3) (zygo.Sexp, error) {
			return &zygo.SexpBool{Val: b.IsEmpty()}, nil
		}),
		"is_universe": boxQuery("is-universe", func(b *bbox.Box3) (zygo.Sexp, error) {
			return &zygo.SexpBool{Val: b.IsUniverse()}, nil
		}),
		"volume": boxQuery("volume", func(b *bbox.Box3) (zygo.Sexp, error) {
			return &zygo.SexpFloat{Val: b.Volume()}, nil
		}),
		"corners": boxQuery("corners", func(b *bbox.Box3) (zygo.Sexp, error) {
			corners := b.Corners()
			return vecList(corners[:]), nil
		}),

		// (inside b (vec3 ...))
		"inside": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, errors.Errorf("inside requires a box and a point")
			}
			b, err := toBox(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "inside")
			}
			p, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "inside")
			}
			in, err := b.IsInside(p)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "inside")
			}
			return &zygo.SexpBool{Val: in}, nil
		},

		// (planes b :offset 0.5)
		"planes": func(args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if err := pa.require("planes", 1); err != nil {
				return zygo.SexpNull, err
			}
			b, err := toBox(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "planes")
			}
			offset, err := floatKW(pa, "offset", 0)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "planes")
			}
			axes, err := b.PlaneEquations(offset)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "planes")
			}
			planes := lo.Map(bbox.Planes(axes[:]), func(p geom.PlaneEquation, _ int) zygo.Sexp {
				return &sexpPlane{plane: p}
			})
			return zygo.MakeList(planes), nil
		},

		// (plane (vec3 point) (vec3 normal))
		"plane": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, errors.Errorf("plane requires a point and a normal")
			}
			p, err := toVec3(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "plane: point")
			}
			n, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "plane: normal")
			}
			normal := geom.ToUnit(n)
			if !normal.IsValid() {
				return zygo.SexpNull, errors.New("plane: zero normal")
			}
			return &sexpPlane{plane: geom.NewPlaneEquation(p, normal)}, nil
		},

		"distance": planePoint("distance", func(p geom.PlaneEquation, v v3.Vec) zygo.Sexp {
			return &zygo.SexpFloat{Val: p.SignedDistanceTo(v)}
		}),
		"project": planePoint("project", func(p geom.PlaneEquation, v v3.Vec) zygo.Sexp {
			return &sexpVec3{vec: p.Project(v)}
		}),

		"above_outline": planeOutline("above-outline", geom.PlaneEquation.IsAboveOutline),
		"below_outline": planeOutline("below-outline", geom.PlaneEquation.IsBelowOutline),

		// (principal-axis (list (vec3 ...) ...))
		"principal_axis": pointsOp("principal-axis", func(points []v3.Vec) zygo.Sexp {
			cov, _ := fit.ComputeCovariance(points)
			return &sexpVec3{vec: fit.PrincipalComponent(cov, tolerance)}
		}),
		"best_fit_normal": pointsOp("best-fit-normal", func(points []v3.Vec) zygo.Sexp {
			return &sexpVec3{vec: fit.EstimateNormal(points, tolerance).Direction()}
		}),

		"point": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, errors.Errorf("point requires a vec3")
			}
			p, err := toVec3(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "point")
			}
			return &sexpGeometry{geometry: curve.Point{Coord: p}}, nil
		},

		"line": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, errors.Errorf("line requires a start and an end")
			}
			start, err := toVec3(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "line: start")
			}
			end, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "line: end")
			}
			return &sexpGeometry{geometry: curve.Line{Start: start, End: end}}, nil
		},

		// (arc center radius start-angle end-angle :normal (vec3 0 0 1))
		"arc": func(args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if err := pa.require("arc", 4); err != nil {
				return zygo.SexpNull, err
			}
			circle, err := circleArgs("arc", pa)
			if err != nil {
				return zygo.SexpNull, err
			}
			var angles [2]float64
			for i := range angles {
				if angles[i], err = toFloat64(pa.positional[2+i]); err != nil {
					return zygo.SexpNull, errors.Wrap(err, "arc: angle")
				}
			}
			circle.StartAngle, circle.EndAngle = angles[0], angles[1]
			return &sexpGeometry{geometry: circle}, nil
		},

		// (circle center radius :normal (vec3 0 0 1))
		"circle": func(args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if err := pa.require("circle", 2); err != nil {
				return zygo.SexpNull, err
			}
			circle, err := circleArgs("circle", pa)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpGeometry{geometry: circle}, nil
		},

		"same_geometry": func(args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, errors.Errorf("same-geometry requires two geometries")
			}
			a, err := toGeometry(args[0])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "same-geometry")
			}
			b, err := toGeometry(args[1])
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "same-geometry")
			}
			eq, err := comparer.Equals(a, b)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "same-geometry")
			}
			return &zygo.SexpBool{Val: eq}, nil
		},

		"geometry_hash": geometryOp("geometry-hash", func(g curve.Geometry) (zygo.Sexp, error) {
			h, err := comparer.Hash(g)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &zygo.SexpInt{Val: int64(h)}, nil
		}),

		"location": geometryOp("location", func(g curve.Geometry) (zygo.Sexp, error) {
			frame, err := fit.Location(g)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpFrame{frame: frame}, nil
		}),
	}

	for name, fn := range builtins {
		fn := fn
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return fn(args)
		})
	}
}

func boxOp(name string, op func(a, b *bbox.Box3) (*bbox.Box3, error)) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.Errorf("%s requires two boxes", name)
		}
		a, err := toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		b, err := toBox(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		result, err := op(a, b)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return &sexpBox{box: result}, nil
	}
}

func boxQuery(name string, query func(b *bbox.Box3) (zygo.Sexp, error)) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, errors.Errorf("%s requires one box", name)
		}
		b, err := toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return query(b)
	}
}

func planePoint(name string, op func(p geom.PlaneEquation, v v3.Vec) zygo.Sexp) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.Errorf("%s requires a plane and a point", name)
		}
		p, err := toPlane(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		v, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return op(p, v), nil
	}
}

func planeOutline(name string, test func(p geom.PlaneEquation, min, max v3.Vec) bool) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, errors.Errorf("%s requires a plane, a min and a max", name)
		}
		p, err := toPlane(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		min, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrapf(err, "%s: min", name)
		}
		max, err := toVec3(args[2])
		if err != nil {
			return zygo.SexpNull, errors.Wrapf(err, "%s: max", name)
		}
		return &zygo.SexpBool{Val: test(p, min, max)}, nil
	}
}

func pointsOp(name string, op func(points []v3.Vec) zygo.Sexp) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, errors.Errorf("%s requires a list of points", name)
		}
		points, err := toPoints(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		if len(points) == 0 {
			return zygo.SexpNull, errors.Errorf("%s: no points", name)
		}
		return op(points), nil
	}
}

func geometryOp(name string, op func(g curve.Geometry) (zygo.Sexp, error)) builtin {
	return func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, errors.Errorf("%s requires one geometry", name)
		}
		g, err := toGeometry(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		result, err := op(g)
		return result, errors.Wrap(err, name)
	}
}

// circleArgs reads the center, radius and :normal shared by arc and circle.
func circleArgs(name string, pa kwArgs) (curve.Arc, error) {
	center, err := toVec3(pa.positional[0])
	if err != nil {
		return curve.Arc{}, errors.Wrapf(err, "%s: center", name)
	}
	radius, err := toFloat64(pa.positional[1])
	if err != nil {
		return curve.Arc{}, errors.Wrapf(err, "%s: radius", name)
	}
	normal := geom.UnitZ
	if v, ok := pa.kw["normal"]; ok {
		n, err := toVec3(v)
		if err != nil {
			return curve.Arc{}, errors.Wrapf(err, "%s: normal", name)
		}
		if normal = geom.ToUnit(n); !normal.IsValid() {
			return curve.Arc{}, errors.Errorf("%s: zero normal", name)
		}
	}
	return curve.NewCircle(center, normal, radius), nil
}
