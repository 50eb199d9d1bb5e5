package store

import (
	"context"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

// countingStore is an in-memory Store that records how often it is hit
type countingStore struct {
	doc     domain.Document
	state   LoadState
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (s *countingStore) Load(ctx context.Context) (domain.Document, LoadState, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, LoadStateFresh, s.loadErr
	}
	if s.doc == nil {
		return domain.NewDocument(), s.state, nil
	}
	return s.doc.Clone(), s.state, nil
}

func (s *countingStore) Save(ctx context.Context, doc domain.Document) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.doc = doc.Clone()
	return nil
}

func (s *countingStore) Ping(ctx context.Context) error {
	return nil
}
