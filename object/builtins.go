/*
File    : lumen/object/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "fmt"

// newError is the shared constructor for runtime-fault values, mirroring
// the format-string convention used throughout this package's builtins.
func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// Builtins is the fixed table of host-implemented functions resolved
// during identifier lookup when a name is not bound in the environment.
// Keyed by name so the evaluator's identifier rule can look one up
// directly after an environment miss.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to 'len' not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *Array:
		if len(arg.Elements) > 0 {
			return arg.Elements[0]
		}
		return NULL
	case *String:
		if len(arg.Value) > 0 {
			return &String{Value: arg.Value[:1]}
		}
		return NULL
	default:
		return newError("argument to 'first' not supported, got %s", args[0].Type())
	}
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *Array:
		n := len(arg.Elements)
		if n > 0 {
			return arg.Elements[n-1]
		}
		return NULL
	case *String:
		n := len(arg.Value)
		if n > 0 {
			return &String{Value: arg.Value[n-1:]}
		}
		return NULL
	default:
		return newError("argument to 'last' not supported, got %s", args[0].Type())
	}
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *Array:
		n := len(arg.Elements)
		if n == 0 {
			return NULL
		}
		rest := make([]Object, n-1)
		copy(rest, arg.Elements[1:])
		return &Array{Elements: rest}
	case *String:
		if len(arg.Value) == 0 {
			return NULL
		}
		return &String{Value: arg.Value[1:]}
	default:
		return newError("argument to 'rest' not supported, got %s", args[0].Type())
	}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	switch arg := args[0].(type) {
	case *Array:
		n := len(arg.Elements)
		newElements := make([]Object, n+1)
		copy(newElements, arg.Elements)
		newElements[n] = args[1]
		return &Array{Elements: newElements}
	case *String:
		str, ok := args[1].(*String)
		if !ok {
			return newError("argument to 'push' not supported, got %s", args[1].Type())
		}
		return &String{Value: arg.Value + str.Value}
	default:
		return newError("argument to 'push' not supported, got %s", args[0].Type())
	}
}
