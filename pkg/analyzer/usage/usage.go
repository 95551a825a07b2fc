// Package usage computes the reference closure of global schema definitions:
// how often each reachable definition is referenced, and which ones are
// referenced at least once where zero or several occurrences are allowed.
//
// Code generators use the counts to decide whether a definition needs a
// named target type, and the non-singleton set to decide whether a field is
// scalar or collection-shaped.
package usage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/panbanda/xsdscope/internal/refcount"
	"github.com/panbanda/xsdscope/pkg/analyzer"
	"github.com/panbanda/xsdscope/pkg/config"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/tracker"
	"github.com/panbanda/xsdscope/pkg/walk"
)

// DefaultCapacity is the initial size of the count table.
const DefaultCapacity = 256

// Analyzer accumulates usage counts over one or more closure runs until
// Reset. An Analyzer is not safe for concurrent use.
type Analyzer struct {
	refs            ReferenceKind
	skipAnnotations bool
	logger          *slog.Logger

	counts        *refcount.Table[schema.Node]
	nonSingletons *DefinitionSet
	// expanded holds global definitions whose subtree has been walked.
	expanded *DefinitionSet
	frontier []schema.Node
	swept    int

	tracker *tracker.Tracker
	walker  *walk.Walker
	counter *counter

	configErr error
}

// Compile-time check that Analyzer implements analyzer.DocumentAnalyzer[*Result]
var _ analyzer.DocumentAnalyzer[*Result] = (*Analyzer)(nil)

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithReferences restricts the followed reference kinds. The default is RefAll.
func WithReferences(refs ReferenceKind) Option {
	return func(a *Analyzer) {
		a.refs = refs
	}
}

// WithSkipAnnotations prunes annotations from every walk.
func WithSkipAnnotations() Option {
	return func(a *Analyzer) {
		a.skipAnnotations = true
	}
}

// WithCapacity sets the initial count table capacity.
func WithCapacity(capacity int) Option {
	return func(a *Analyzer) {
		if capacity > 0 {
			a.counts = newTable(capacity)
		}
	}
}

// WithLogger sets the logger receiving per-sweep debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithConfig applies the analysis section of cfg. A reference list that
// does not parse keeps the current selection and is logged as a warning;
// use NewFromConfig to get the error instead.
func WithConfig(cfg *config.Config) Option {
	return func(a *Analyzer) {
		if cfg == nil {
			return
		}
		refs, err := ParseReferenceKinds(cfg.Analysis.References)
		if err != nil {
			a.configErr = fmt.Errorf("analysis.references: %w", err)
		} else {
			a.refs = refs
		}
		a.skipAnnotations = cfg.Analysis.SkipAnnotations
		if cfg.Analysis.Capacity > 0 {
			a.counts = newTable(cfg.Analysis.Capacity)
		}
	}
}

func newTable(capacity int) *refcount.Table[schema.Node] {
	return refcount.New(func(n schema.Node) uint64 { return refcount.HashUint64(n.Key()) }, capacity)
}

// New creates a usage analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		refs:          RefAll,
		logger:        slog.New(slog.DiscardHandler),
		counts:        newTable(DefaultCapacity),
		nonSingletons: NewDefinitionSet(),
		expanded:      NewDefinitionSet(),
		tracker:       tracker.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.configErr != nil {
		a.logger.Warn("ignoring invalid configuration", "error", a.configErr, "references", a.refs.String())
	}

	prune := walk.Predicate(a.isExpanded)
	if a.skipAnnotations {
		prune = walk.Any(walk.SkipAnnotations, prune)
	}
	a.walker = walk.New(prune, a.tracker)
	a.counter = newCounter(a)
	return a
}

// NewFromConfig validates cfg and creates an analyzer from it. opts are
// applied after the configuration.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("usage config: %w", err)
	}
	a := New(append([]Option{WithConfig(cfg)}, opts...)...)
	if a.configErr != nil {
		return nil, a.configErr
	}
	return a, nil
}

// References returns the followed reference kinds.
func (a *Analyzer) References() ReferenceKind {
	return a.refs
}

func (a *Analyzer) isExpanded(n schema.Node) bool {
	return n.IsGlobal() && a.expanded.Contains(n)
}

// CountDefinitions counts each of defs once and then everything they
// reference, transitively. It panics if a definition is not global.
func (a *Analyzer) CountDefinitions(defs ...schema.Node) error {
	for _, def := range defs {
		a.count(def)
	}
	return a.sweep()
}

// CountDocument counts every reference made from doc and from the documents
// it includes, imports or redefines, then everything those references reach.
// The definitions of doc are not counted themselves.
func (a *Analyzer) CountDocument(doc *schema.Document) error {
	a.tracker.ClearVisited()
	if err := a.walker.WalkDocument(doc, a.counter); err != nil {
		return fmt.Errorf("count %s: %w", doc, err)
	}
	return a.sweep()
}

// count increments the count of def, queueing it for expansion when it is
// seen for the first time.
func (a *Analyzer) count(def schema.Node) {
	if !def.IsGlobal() {
		panic(fmt.Sprintf("usage: counting %s which is not a global definition", def))
	}
	if a.counts.Increment(def) == 1 {
		a.frontier = append(a.frontier, def)
	}
}

// reference counts the target of one reference site. Built-in and
// unresolved targets are ignored.
func (a *Analyzer) reference(target schema.Node, found, singleton bool) {
	if !found || target.IsBuiltin() {
		return
	}
	a.count(target)
	if !singleton {
		a.nonSingletons.Add(target)
	}
}

// sweep expands frontier definitions until a sweep adds nothing new.
func (a *Analyzer) sweep() error {
	for round := 1; a.swept < len(a.frontier); round++ {
		start, end := a.swept, len(a.frontier)
		for _, def := range a.frontier[start:end] {
			if err := a.expand(def); err != nil {
				return fmt.Errorf("expand %s: %w", def, err)
			}
		}
		a.swept = end
		a.logger.Debug("usage sweep",
			"sweep", round,
			"frontier", end-start,
			"added", len(a.frontier)-end,
		)
	}
	return nil
}

func (a *Analyzer) expand(def schema.Node) error {
	a.tracker.Push(def.Document())
	defer a.tracker.Pop()
	return a.walker.Walk(def, a.counter)
}

// Count returns the number of references to def.
func (a *Analyzer) Count(def schema.Node) int {
	return a.counts.Count(def)
}

// IsNonSingleton reports whether def is referenced at least once where it
// may occur other than exactly once.
func (a *Analyzer) IsNonSingleton(def schema.Node) bool {
	return a.nonSingletons.Contains(def)
}

// Counted returns every counted definition in first-seen order.
func (a *Analyzer) Counted() []schema.Node {
	return a.counts.Keys()
}

// NonSingletons returns the non-singleton definitions in the order they
// were flagged.
func (a *Analyzer) NonSingletons() []schema.Node {
	return a.nonSingletons.Nodes()
}

// Reset discards all counts so the analyzer can be reused, including after
// a walk that panicked part way through.
func (a *Analyzer) Reset() {
	a.counts.Reset()
	a.nonSingletons.Reset()
	a.expanded.Reset()
	clear(a.frontier)
	a.frontier = a.frontier[:0]
	a.swept = 0
	a.tracker.Reset()
}

// Analyze counts every document in docs and returns the accumulated result.
func (a *Analyzer) Analyze(ctx context.Context, docs []*schema.Document) (*Result, error) {
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.CountDocument(doc); err != nil {
			return nil, err
		}
	}
	return a.Result(), nil
}

// Close releases any resources held by the analyzer.
func (a *Analyzer) Close() {}
