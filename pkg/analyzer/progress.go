package analyzer

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/panbanda/xsdscope/pkg/schema"
)

// ProgressReport describes one finished document of a batch run.
type ProgressReport struct {
	Document *schema.Document
	Err      error // nil when the document was analyzed

	Finished int // documents finished so far, this one included
	Failed   int // finished documents that returned an error
	Expected int
}

// ProgressFunc receives a report each time a document finishes. Reports
// from concurrent workers may arrive out of order.
type ProgressFunc func(ProgressReport)

// Progress counts the documents of a batch run. It may be shared by
// concurrent workers.
type Progress struct {
	expected atomic.Int64
	finished atomic.Int64
	failed   atomic.Int64
	report   ProgressFunc
}

// NewProgress creates a counter reporting to fn. A nil fn only counts.
func NewProgress(fn ProgressFunc) *Progress {
	return &Progress{report: fn}
}

// Expect announces n more documents.
func (p *Progress) Expect(n int) {
	p.expected.Add(int64(n))
}

// Done records that doc finished with err.
func (p *Progress) Done(doc *schema.Document, err error) {
	failed := p.failed.Load()
	if err != nil {
		failed = p.failed.Add(1)
	}
	finished := p.finished.Add(1)
	if p.report == nil {
		return
	}
	p.report(ProgressReport{
		Document: doc,
		Err:      err,
		Finished: int(finished),
		Failed:   int(failed),
		Expected: int(p.expected.Load()),
	})
}

// Finished returns the number of finished documents.
func (p *Progress) Finished() int { return int(p.finished.Load()) }

// Failed returns the number of documents that finished with an error.
func (p *Progress) Failed() int { return int(p.failed.Load()) }

// Expected returns the number of announced documents.
func (p *Progress) Expected() int { return int(p.expected.Load()) }

// LogProgress logs analyzed documents at debug level and failed ones as
// warnings.
func LogProgress(logger *slog.Logger) ProgressFunc {
	return func(r ProgressReport) {
		attrs := []any{
			"document", r.Document.String(),
			"finished", r.Finished,
			"expected", r.Expected,
		}
		if r.Err != nil {
			logger.Warn("document analysis failed", append(attrs, "error", r.Err)...)
			return
		}
		logger.Debug("analyzed document", attrs...)
	}
}

type progressKey struct{}

// WithProgress attaches p to ctx for MapDocuments.
func WithProgress(ctx context.Context, p *Progress) context.Context {
	return context.WithValue(ctx, progressKey{}, p)
}

// ProgressFromContext returns the Progress attached to ctx, or nil.
func ProgressFromContext(ctx context.Context) *Progress {
	p, _ := ctx.Value(progressKey{}).(*Progress)
	return p
}
