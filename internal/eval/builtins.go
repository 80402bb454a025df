package eval

import (
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/cwbudde/go-xpr/internal/xerr"
)

// Builtins returns the fixed C7 registry: min, max, len, is_empty, array.
// Ported from original_source/src/builtin/mod.rs's create_builtins, which
// flattens one level of array arguments for min/max and special-cases
// string/array/object/null for len and is_empty.
func Builtins() map[string]Function {
	one := 1
	return map[string]Function{
		"min":      compareFn(false),
		"max":      compareFn(true),
		"len":      {MinArgs: &one, MaxArgs: &one, Call: builtinLen},
		"is_empty": {MinArgs: &one, MaxArgs: &one, Call: builtinIsEmpty},
		"array":    {Call: builtinArray},
	}
}

// compareFn builds min (wantMax=false) or max (wantMax=true): scans every
// argument, descending into array arguments one level, keeping whichever
// candidate wins the </> comparison against the running best.
func compareFn(wantMax bool) Function {
	one := 1
	return Function{
		MinArgs: &one,
		Call: func(args []*value.Value) (*value.Value, error) {
			var best *value.Value
			consider := func(v *value.Value) error {
				if best == nil {
					best = v
					return nil
				}
				var winner *value.Value
				if wantMax {
					gt, err := v.Gt(best)
					if err != nil {
						return err
					}
					winner = v
					if !gt.Bool() {
						winner = best
					}
				} else {
					lt, err := v.Lt(best)
					if err != nil {
						return err
					}
					winner = v
					if !lt.Bool() {
						winner = best
					}
				}
				best = winner
				return nil
			}

			for _, arg := range args {
				if arg.Kind() == value.KindArray {
					for _, elem := range arg.ArrayElements() {
						if err := consider(elem); err != nil {
							return nil, err
						}
					}
					continue
				}
				if err := consider(arg); err != nil {
					return nil, err
				}
			}

			if best == nil {
				return nil, xerr.NewCustom("can't find min value.")
			}
			return best, nil
		},
	}
}

func builtinLen(args []*value.Value) (*value.Value, error) {
	v := args[0]
	switch v.Kind() {
	case value.KindString:
		return value.Int64(int64(len(v.Str()))), nil
	case value.KindArray:
		return value.Int64(int64(v.ArrayLen())), nil
	case value.KindObject:
		return value.Int64(int64(v.ObjectLen())), nil
	case value.KindNull:
		return value.Int64(0), nil
	default:
		return nil, xerr.NewCustom("len() only accepts string, array, object and null")
	}
}

func builtinIsEmpty(args []*value.Value) (*value.Value, error) {
	v := args[0]
	switch v.Kind() {
	case value.KindString:
		return value.Bool(v.Str() == ""), nil
	case value.KindArray:
		return value.Bool(v.ArrayLen() == 0), nil
	case value.KindObject:
		return value.Bool(v.ObjectLen() == 0), nil
	case value.KindNull:
		return value.Bool(true), nil
	default:
		return value.Bool(false), nil
	}
}

func builtinArray(args []*value.Value) (*value.Value, error) {
	elems := make([]*value.Value, len(args))
	copy(elems, args)
	return value.NewArray(elems), nil
}
