package parity

import (
	"errors"
	"fmt"

	"github.com/scalecode-solutions/basicops"
)

// ErrUnknownOp reports an operation identifier no implementation provides.
var ErrUnknownOp = errors.New("unknown operation")

// Operations returns the operation identifiers understood by Evaluate, in
// the order the specification lists them. Harness authors for the other
// language implementations use this as the shared vocabulary.
func Operations() []string {
	return []string{
		"concat", "length", "substring", "index_of", "contains",
		"starts_with", "ends_with", "to_uppercase", "to_lowercase",
		"trim", "split", "join", "replace", "is_empty",
		"add", "subtract", "multiply", "divide", "divide_int", "modulo",
		"less_than", "greater_than", "equal", "not_equal",
		"less_equal", "greater_equal",
		"logical_and", "logical_or", "logical_not",
	}
}

// Evaluate runs one operation of the basicops surface against its
// positional arguments. The returned error reports harness-level problems
// (unknown operation, malformed arguments) and, for the integer division
// operations, the arithmetic-error condition; the string operations are
// total and only ever fail on malformed arguments.
func Evaluate(op string, args []any) (any, error) {
	switch op {
	case "concat":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.Concat(a, b), nil

	case "length":
		s, err := oneString(args)
		if err != nil {
			return nil, err
		}
		return basicops.Length(s), nil

	case "substring":
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		start, err := argInt(args, 1)
		if err != nil {
			return nil, err
		}
		end, err := argInt(args, 2)
		if err != nil {
			return nil, err
		}
		return basicops.Substring(s, start, end), nil

	case "index_of":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.IndexOf(a, b), nil

	case "contains":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.Contains(a, b), nil

	case "starts_with":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.HasPrefix(a, b), nil

	case "ends_with":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.HasSuffix(a, b), nil

	case "to_uppercase":
		s, err := oneString(args)
		if err != nil {
			return nil, err
		}
		return basicops.ToUpper(s), nil

	case "to_lowercase":
		s, err := oneString(args)
		if err != nil {
			return nil, err
		}
		return basicops.ToLower(s), nil

	case "trim":
		s, err := oneString(args)
		if err != nil {
			return nil, err
		}
		return basicops.TrimSpace(s), nil

	case "split":
		a, b, err := twoStrings(args)
		if err != nil {
			return nil, err
		}
		return basicops.Split(a, b), nil

	case "join":
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		parts, err := argStrings(args, 0)
		if err != nil {
			return nil, err
		}
		sep, err := argString(args, 1)
		if err != nil {
			return nil, err
		}
		return basicops.Join(parts, sep), nil

	case "replace":
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		old, err := argString(args, 1)
		if err != nil {
			return nil, err
		}
		new, err := argString(args, 2)
		if err != nil {
			return nil, err
		}
		return basicops.ReplaceAll(s, old, new), nil

	case "is_empty":
		s, err := oneString(args)
		if err != nil {
			return nil, err
		}
		return basicops.IsEmpty(s), nil

	case "add":
		return numericBinary(args,
			func(a, b int64) int64 { return basicops.Add(a, b) },
			func(a, b float64) float64 { return basicops.Add(a, b) })

	case "subtract":
		return numericBinary(args,
			func(a, b int64) int64 { return basicops.Subtract(a, b) },
			func(a, b float64) float64 { return basicops.Subtract(a, b) })

	case "multiply":
		return numericBinary(args,
			func(a, b int64) int64 { return basicops.Multiply(a, b) },
			func(a, b float64) float64 { return basicops.Multiply(a, b) })

	case "divide":
		a, b, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return basicops.Divide(a, b), nil

	case "divide_int":
		a, b, err := twoInt64s(args)
		if err != nil {
			return nil, err
		}
		return basicops.DivideInt(a, b)

	case "modulo":
		a, b, err := twoInt64s(args)
		if err != nil {
			return nil, err
		}
		return basicops.Modulo(a, b)

	case "less_than":
		return comparison(args, basicops.LessThan[float64])
	case "greater_than":
		return comparison(args, basicops.GreaterThan[float64])
	case "equal":
		return comparison(args, basicops.Equal[float64])
	case "not_equal":
		return comparison(args, basicops.NotEqual[float64])
	case "less_equal":
		return comparison(args, basicops.LessEqual[float64])
	case "greater_equal":
		return comparison(args, basicops.GreaterEqual[float64])

	case "logical_and":
		a, b, err := twoBools(args)
		if err != nil {
			return nil, err
		}
		return basicops.And(a, b), nil

	case "logical_or":
		a, b, err := twoBools(args)
		if err != nil {
			return nil, err
		}
		return basicops.Or(a, b), nil

	case "logical_not":
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := argBool(args, 0)
		if err != nil {
			return nil, err
		}
		return basicops.Not(a), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

// numericBinary dispatches a binary arithmetic case to the integer
// implementation when both operands are integers, and to the float
// implementation otherwise, mirroring how the vector files distinguish the
// two numeric domains.
func numericBinary(args []any, ints func(a, b int64) int64, floats func(a, b float64) float64) (any, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	if a, aok := asInt64(args[0]); aok {
		if b, bok := asInt64(args[1]); bok {
			return ints(a, b), nil
		}
	}
	a, err := argFloat(args, 0)
	if err != nil {
		return nil, err
	}
	b, err := argFloat(args, 1)
	if err != nil {
		return nil, err
	}
	return floats(a, b), nil
}

func comparison(args []any, pred func(a, b float64) bool) (any, error) {
	a, b, err := twoFloats(args)
	if err != nil {
		return nil, err
	}
	return pred(a, b), nil
}

func arity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("want %d args, got %d", want, len(args))
	}
	return nil
}

func oneString(args []any) (string, error) {
	if err := arity(args, 1); err != nil {
		return "", err
	}
	return argString(args, 0)
}

func twoStrings(args []any) (string, string, error) {
	if err := arity(args, 2); err != nil {
		return "", "", err
	}
	a, err := argString(args, 0)
	if err != nil {
		return "", "", err
	}
	b, err := argString(args, 1)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func twoFloats(args []any) (float64, float64, error) {
	if err := arity(args, 2); err != nil {
		return 0, 0, err
	}
	a, err := argFloat(args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := argFloat(args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func twoInt64s(args []any) (int64, int64, error) {
	if err := arity(args, 2); err != nil {
		return 0, 0, err
	}
	a, ok := asInt64(args[0])
	if !ok {
		return 0, 0, fmt.Errorf("arg 0: want integer, got %T", args[0])
	}
	b, ok := asInt64(args[1])
	if !ok {
		return 0, 0, fmt.Errorf("arg 1: want integer, got %T", args[1])
	}
	return a, b, nil
}

func twoBools(args []any) (bool, bool, error) {
	if err := arity(args, 2); err != nil {
		return false, false, err
	}
	a, err := argBool(args, 0)
	if err != nil {
		return false, false, err
	}
	b, err := argBool(args, 1)
	if err != nil {
		return false, false, err
	}
	return a, b, nil
}

func argString(args []any, i int) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("arg %d: want string, got %T", i, args[i])
	}
	return s, nil
}

func argInt(args []any, i int) (int, error) {
	n, ok := asInt64(args[i])
	if !ok {
		return 0, fmt.Errorf("arg %d: want integer, got %T", i, args[i])
	}
	return int(n), nil
}

func argFloat(args []any, i int) (float64, error) {
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("arg %d: want number, got %T", i, args[i])
	}
}

func argBool(args []any, i int) (bool, error) {
	b, ok := args[i].(bool)
	if !ok {
		return false, fmt.Errorf("arg %d: want bool, got %T", i, args[i])
	}
	return b, nil
}

func argStrings(args []any, i int) ([]string, error) {
	seq, ok := args[i].([]any)
	if !ok {
		return nil, fmt.Errorf("arg %d: want sequence of strings, got %T", i, args[i])
	}
	parts := make([]string, 0, len(seq))
	for j, e := range seq {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("arg %d: element %d: want string, got %T", i, j, e)
		}
		parts = append(parts, s)
	}
	return parts, nil
}

// asInt64 widens any YAML-decoded integer to int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
