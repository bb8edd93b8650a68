package overload

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/webidl/idl/ast"
	"github.com/teranos/webidl/idl/idltype"
	"github.com/teranos/webidl/logger"
)

// LowerAll lowers every operation, at most Workers at a time, and returns the
// results in input order. Operations sharing an interface and name are
// overloads of each other: their call shapes are counted together, so two
// shapes of equal arity from sibling declarations are named by argument type.
// The only error is cancellation of ctx.
func (l *Lowerer) LowerAll(ctx context.Context, ops []ast.Operation) ([]Result, error) {
	start := time.Now()

	shapes := make([][][]idltype.Type, len(ops))
	argErrs := make([]error, len(ops))
	if err := l.each(ctx, len(ops), func(i int) {
		shapes[i], argErrs[i] = l.expand(ops[i])
	}); err != nil {
		return nil, err
	}

	declarations := make(map[string]int, len(ops))
	groups := make(map[string]map[int]int, len(ops))
	for i, op := range ops {
		key := overloadKey(op)
		declarations[key]++
		if groups[key] == nil {
			groups[key] = make(map[int]int)
		}
		for _, shape := range shapes[i] {
			groups[key][len(shape)]++
		}
	}

	results := make([]Result, len(ops))
	if err := l.each(ctx, len(ops), func(i int) {
		key := overloadKey(ops[i])
		results[i] = l.lower(ops[i], shapes[i], argErrs[i], declarations[key] > 1, groups[key])
	}); err != nil {
		return nil, err
	}

	l.warnDuplicateBindings(results)

	stats := Summarize(results)
	l.log().Infow("lowered operations",
		logger.FieldCount, stats.Operations,
		logger.FieldSignature, stats.Signatures,
		logger.FieldSkipped, stats.SkippedOperations+stats.SkippedSignatures,
		logger.FieldWorkers, l.Workers,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return results, nil
}

// Stats counts what a lowering pass produced.
type Stats struct {
	Operations        int
	Signatures        int
	SkippedOperations int
	SkippedSignatures int
}

// Summarize totals a set of results.
func Summarize(results []Result) Stats {
	var s Stats
	for _, r := range results {
		s.Operations++
		s.Signatures += len(r.Signatures)
		s.SkippedSignatures += len(r.Skipped)
		if r.Err != nil {
			s.SkippedOperations++
		}
	}
	return s
}

func overloadKey(op ast.Operation) string {
	return op.Interface + "\x00" + op.Name
}

// each runs fn for every index in [0, n), at most Workers at a time.
func (l *Lowerer) each(ctx context.Context, n int, fn func(i int)) error {
	g, ctx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		g.SetLimit(l.Workers)
	}
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}

// warnDuplicateBindings reports binding names still generated more than once
// on the same interface, which happens when distinct types share a
// descriptive name.
func (l *Lowerer) warnDuplicateBindings(results []Result) {
	seen := make(map[string]string)
	for _, r := range results {
		for _, sig := range r.Signatures {
			key := r.Interface + "\x00" + sig.Binding
			if first, dup := seen[key]; dup {
				l.log().Warnw("duplicate binding name",
					logger.FieldInterface, r.Interface,
					logger.FieldBinding, sig.Binding,
					logger.FieldOperation, r.Operation,
					"first_operation", first)
				continue
			}
			seen[key] = r.Operation
		}
	}
}
