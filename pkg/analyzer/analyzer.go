// Package analyzer defines the contract shared by schema analyzers and runs
// independent per-document analyses concurrently.
package analyzer

import (
	"context"

	"github.com/panbanda/xsdscope/pkg/schema"
)

// DocumentAnalyzer is the interface that all document-based analyzers must implement.
// It provides a standard way to analyze schema documents with context support.
type DocumentAnalyzer[T any] interface {
	// Analyze processes a collection of documents and returns the analysis result.
	// The context can be used for cancellation and progress reporting.
	Analyze(ctx context.Context, docs []*schema.Document) (T, error)

	// Close releases any resources held by the analyzer.
	Close()
}
