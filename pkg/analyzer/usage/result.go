package usage

import "github.com/panbanda/xsdscope/pkg/schema"

// Usage is the count of one definition.
type Usage struct {
	Definition   schema.Node
	Count        int
	NonSingleton bool
}

// Result is a snapshot of an analyzer's counts.
type Result struct {
	Usages        []Usage
	Definitions   int // distinct definitions counted
	References    int // sum of all counts
	NonSingletons int
}

// Result returns the current counts in first-seen order.
func (a *Analyzer) Result() *Result {
	r := &Result{
		Usages:        make([]Usage, 0, a.counts.Len()),
		NonSingletons: a.nonSingletons.Len(),
	}
	for def, n := range a.counts.All() {
		r.Usages = append(r.Usages, Usage{
			Definition:   def,
			Count:        n,
			NonSingleton: a.nonSingletons.Contains(def),
		})
		r.References += n
	}
	r.Definitions = len(r.Usages)
	return r
}

// Lookup returns the usage of def.
func (r *Result) Lookup(def schema.Node) (Usage, bool) {
	for _, u := range r.Usages {
		if u.Definition == def {
			return u, true
		}
	}
	return Usage{}, false
}
