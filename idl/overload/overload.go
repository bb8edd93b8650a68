// Package overload lowers IDL operations into monomorphic binding signatures.
//
// Each operation's arguments are resolved, expanded with
// idltype.ExpandArguments, and every resulting possibility becomes one
// Signature with its own binding name and Rust parameter types. Possibilities
// that cannot be represented are dropped with a warning; operations that
// cannot be resolved are skipped without stopping the pass.
package overload

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
	"github.com/teranos/webidl/idl/idltype"
	"github.com/teranos/webidl/idl/resolve"
	"github.com/teranos/webidl/idl/util"
	"github.com/teranos/webidl/logger"
)

// Param is one concrete parameter of a Signature.
type Param struct {
	Name string
	Type idltype.Type
	Rust string
}

// Signature is one union-free, optionality-free call shape of an operation.
type Signature struct {
	Binding string
	Params  []Param
	// Return is the Rust return type; empty for void.
	Return string
}

// Skip records a possibility or operation that produced no binding.
type Skip struct {
	Binding string
	Reason  error
}

// Result is the outcome of lowering one operation.
type Result struct {
	Interface  string
	Operation  string
	Static     bool
	ReturnType idltype.Type
	Signatures []Signature
	Skipped    []Skip
	// Err is set when the whole operation was skipped.
	Err error
}

// Lowerer lowers operations against one symbol table.
type Lowerer struct {
	Resolver *resolve.Resolver
	Logger   *zap.SugaredLogger
	// Workers bounds LowerAll concurrency; values <= 0 mean no limit.
	Workers int
}

// NewLowerer creates a Lowerer. A nil logger falls back to the global logger.
func NewLowerer(table resolve.SymbolTable, log *zap.SugaredLogger, workers int) *Lowerer {
	return &Lowerer{
		Resolver: resolve.New(table, log),
		Logger:   log,
		Workers:  workers,
	}
}

// Lower lowers a single operation. overloaded forces argument-qualified
// binding names even when the operation expands to one signature, which is
// needed when several declarations share the operation name. Use LowerAll to
// name overloads consistently across sibling declarations.
func (l *Lowerer) Lower(op ast.Operation, overloaded bool) Result {
	shapes, err := l.expand(op)
	return l.lower(op, shapes, err, overloaded, arities(shapes))
}

// expand resolves op's arguments and returns every concrete call shape.
func (l *Lowerer) expand(op ast.Operation) ([][]idltype.Type, error) {
	args, err := l.Resolver.ResolveArguments(op.Arguments)
	if err != nil {
		return nil, err
	}
	return idltype.ExpandArguments(args), nil
}

// arities counts call shapes per argument count.
func arities(shapes [][]idltype.Type) map[int]int {
	counts := make(map[int]int, len(shapes))
	for _, shape := range shapes {
		counts[len(shape)]++
	}
	return counts
}

// lower names and maps the expanded shapes of op. perArity counts shapes
// across every declaration named like op; a part is named by type whenever
// another shape in that group has the same arity.
func (l *Lowerer) lower(op ast.Operation, shapes [][]idltype.Type, argErr error, overloaded bool, perArity map[int]int) Result {
	log := logger.ChildLogger(l.log(),
		logger.FieldInterface, op.Interface,
		logger.FieldOperation, op.Name)

	result := Result{Interface: op.Interface, Operation: op.Name, Static: op.Static}
	if argErr != nil {
		return skipOperation(log, result, argErr)
	}

	returnType, rustReturn, err := l.resolveReturn(op.Return)
	if err != nil {
		return skipOperation(log, result, err)
	}
	result.ReturnType = returnType

	qualify := overloaded || len(shapes) > 1
	for _, types := range shapes {
		binding := bindingName(op, types, qualify, perArity[len(types)] > 1)

		params, err := rustParams(op.Arguments, types)
		if err != nil {
			log.Warnw("skipping signature",
				logger.FieldBinding, binding,
				logger.FieldError, err.Error())
			result.Skipped = append(result.Skipped, Skip{Binding: binding, Reason: err})
			continue
		}

		log.Debugw("lowered signature", logger.FieldBinding, binding)
		result.Signatures = append(result.Signatures, Signature{
			Binding: binding,
			Params:  params,
			Return:  rustReturn,
		})
	}

	return result
}

// resolveReturn resolves the return type; a nil node means void.
func (l *Lowerer) resolveReturn(node ast.Type) (idltype.Type, string, error) {
	if node == nil {
		return idltype.Void, "", nil
	}
	t, err := l.Resolver.Resolve(node)
	if err != nil {
		return nil, "", errors.Wrap(err, "return type")
	}
	if t == idltype.Void {
		return t, "", nil
	}
	rust, ok := idltype.RustType(t, idltype.ReturnPosition)
	if !ok {
		return nil, "", errors.Wrapf(errors.ErrUnrepresentable, "return type %s", idltype.String(t))
	}
	return t, rust, nil
}

func rustParams(args []ast.Argument, types []idltype.Type) ([]Param, error) {
	params := make([]Param, len(types))
	for i, t := range types {
		rust, ok := idltype.RustType(t, idltype.ArgumentPosition)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnrepresentable, "argument %q of type %s", args[i].Name, idltype.String(t))
		}
		params[i] = Param{Name: args[i].Name, Type: t, Rust: rust}
	}
	return params, nil
}

// bindingName derives the generated function name. Unqualified names are the
// snake cased operation name. Qualified names append "_with_" and one part per
// argument joined by "_and_": the argument's type name when another
// possibility has the same arity, otherwise the argument name.
func bindingName(op ast.Operation, types []idltype.Type, qualify, byType bool) string {
	var sb strings.Builder
	sb.WriteString(util.ToSnakeCase(op.Name))
	if !qualify {
		return sb.String()
	}
	for i, t := range types {
		if i == 0 {
			sb.WriteString("_with_")
		} else {
			sb.WriteString("_and_")
		}
		if byType {
			idltype.AppendTypeName(&sb, t)
		} else {
			sb.WriteString(util.ToSnakeCase(op.Arguments[i].Name))
		}
	}
	return sb.String()
}

func skipOperation(log *zap.SugaredLogger, result Result, err error) Result {
	log.Warnw("skipping operation", logger.FieldError, err.Error())
	result.Err = err
	return result
}

func (l *Lowerer) log() *zap.SugaredLogger {
	return logger.OrGlobal(l.Logger)
}
