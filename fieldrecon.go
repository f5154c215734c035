// Package fieldrecon reconciles structured fields extracted from
// financial and legal documents.
//
// Two independently produced field maps - one submitted by a client
// system, one extracted from a scanned document by the OCR+LLM pipeline -
// are compared field by field with type-aware equivalence semantics:
// locale-ambiguous amounts, multi-format dates, list-vs-string values,
// organization aliases, and Cyrillic full-name forms all reduce to
// canonical forms before comparison. The engine reports identical or
// different per field; it never repairs values and never persists
// results.
//
//	engine, err := fieldrecon.New()
//	if err != nil {
//	    return err
//	}
//	verdicts, err := engine.Compare(claimed, extracted)
package fieldrecon

import (
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/reconcile"
)

// Engine is the public entry point for field reconciliation. An Engine
// is immutable after New and safe for concurrent use; every Compare call
// is an independent pure function of its two inputs.
type Engine interface {
	// Compare judges every field in the union of both maps' keys and
	// returns one verdict per field in a stable order.
	Compare(claimed, extracted map[string]any) (reconcile.Verdicts, error)

	// Kind reports the comparator kind a field name resolves to.
	Kind(name string) reconcile.FieldKind
}

// engine is the internal implementation of the Engine interface.
type engine struct {
	comparer reconcile.Comparer
}

// New creates an Engine with the given options.
func New(opts ...Option) (Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	comparer, err := reconcile.New(cfg.comparerOptions...)
	if err != nil {
		return nil, err
	}
	return &engine{comparer: comparer}, nil
}

// Compare judges every field in the union of both maps' keys.
func (e *engine) Compare(claimed, extracted map[string]any) (reconcile.Verdicts, error) {
	return e.comparer.Compare(claimed, extracted)
}

// Kind reports the comparator kind a field name resolves to.
func (e *engine) Kind(name string) reconcile.FieldKind {
	return e.comparer.Kind(name)
}
