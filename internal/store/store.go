package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

// LoadState tells callers how a document was obtained, so "nothing stored
// yet" and "stored content was unusable" are distinguishable.
type LoadState int

const (
	// LoadStateFresh means nothing has been persisted yet
	LoadStateFresh LoadState = iota
	// LoadStateLoaded means the persisted document decoded cleanly
	LoadStateLoaded
	// LoadStateRecovered means persisted content was unreadable or malformed
	// and an empty document was substituted
	LoadStateRecovered
)

func (s LoadState) String() string {
	switch s {
	case LoadStateFresh:
		return "fresh"
	case LoadStateLoaded:
		return "loaded"
	case LoadStateRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Store persists the whole inventory document.
//
// Load never fails on bad content: a missing document yields LoadStateFresh
// and a corrupt one LoadStateRecovered, both with an empty document. The
// returned error is reserved for an unreachable backend.
//
// Save normalizes doc in place and replaces the persisted document as a
// whole. Stores do no locking; callers serialize load-mutate-save.
type Store interface {
	Load(ctx context.Context) (domain.Document, LoadState, error)
	Save(ctx context.Context, doc domain.Document) error
	Ping(ctx context.Context) error
}

// decodeDocument parses persisted bytes and normalizes quantities
func decodeDocument(data []byte) (domain.Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: not a JSON object", domain.ErrCorruptDocument)
	}

	var doc domain.Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptDocument, err)
	}
	if doc == nil {
		doc = domain.NewDocument()
	}
	doc.Normalize()
	return doc, nil
}

// encodeDocument normalizes and serializes doc as indented UTF-8 JSON,
// leaving emoji and accents unescaped.
func encodeDocument(doc domain.Document) ([]byte, error) {
	if doc == nil {
		doc = domain.NewDocument()
	}
	doc.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode inventory document: %w", err)
	}
	return buf.Bytes(), nil
}
