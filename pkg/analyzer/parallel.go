package analyzer

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/panbanda/xsdscope/pkg/config"
	"github.com/panbanda/xsdscope/pkg/schema"
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// MapDocuments calls fn for each document on a bounded pool and returns the
// successful results in document order. Failed documents are reported
// together as *ProcessingErrors. Once ctx is done, remaining documents are
// skipped and ctx's error is returned.
//
// A Progress attached to ctx (see WithProgress) is told about every
// document that runs.
// If workers is <= 0, DefaultWorkers is used.
func MapDocuments[T any](ctx context.Context, docs []*schema.Document, workers int, fn func(context.Context, *schema.Document) (T, error)) ([]T, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	progress := ProgressFromContext(ctx)
	if progress != nil {
		progress.Expect(len(docs))
	}

	results := make([]T, len(docs))
	ok := make([]bool, len(docs))
	errs := &ProcessingErrors{}

	p := pool.New().WithMaxGoroutines(workers)
	for i, doc := range docs {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			result, err := fn(ctx, doc)
			if progress != nil {
				progress.Done(doc, err)
			}
			if err != nil {
				errs.Add(doc.String(), err)
				return
			}
			results[i] = result
			ok[i] = true
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for i := range results {
		if ok[i] {
			out = append(out, results[i])
		}
	}
	if errs.HasErrors() {
		// Completion order is arbitrary; report in document order.
		order := make(map[string]int, len(docs))
		for i, doc := range docs {
			order[doc.String()] = i
		}
		slices.SortFunc(errs.Errors, func(a, b ProcessingError) int {
			return cmp.Compare(order[a.Document], order[b.Document])
		})
		return out, errs
	}
	return out, nil
}

// AnalyzeEach runs a fresh analyzer on every document concurrently. Each
// analyzer sees a single document and is closed when it is done.
func AnalyzeEach[T any](ctx context.Context, docs []*schema.Document, workers int, newAnalyzer func() DocumentAnalyzer[T]) ([]T, error) {
	return MapDocuments(ctx, docs, workers, func(ctx context.Context, doc *schema.Document) (T, error) {
		a := newAnalyzer()
		defer a.Close()
		return a.Analyze(ctx, []*schema.Document{doc})
	})
}

// AnalyzeConfigured is AnalyzeEach with the worker count taken from
// cfg.Analysis.Workers. A nil cfg uses the defaults.
func AnalyzeConfigured[T any](ctx context.Context, cfg *config.Config, docs []*schema.Document, newAnalyzer func() DocumentAnalyzer[T]) ([]T, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return AnalyzeEach(ctx, docs, cfg.Analysis.Workers, newAnalyzer)
}
