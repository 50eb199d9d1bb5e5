package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/InventarioBot_Go/internal/concurrency"
	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/logger"
	"github.com/osse101/InventarioBot_Go/internal/metrics"
	"github.com/osse101/InventarioBot_Go/internal/store"
)

// Service defines the interface for inventory operations
type Service interface {
	Handle(ctx context.Context, req domain.Request) (*domain.Result, error)
	CheckHealth(ctx context.Context) error
}

// service implements the Service interface. It is the only writer of the
// document: every load, mutate and save cycle runs under the document lock.
type service struct {
	docs    store.Store
	engine  *Engine
	locks   *concurrency.LockManager
	lockKey string
}

// NewService creates an inventory service over docs. lockKey names the
// document being guarded; services sharing a LockManager and key serialize
// with each other.
func NewService(docs store.Store, engine *Engine, locks *concurrency.LockManager, lockKey string) Service {
	if engine == nil {
		engine = NewEngine()
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		docs:    docs,
		engine:  engine,
		locks:   locks,
		lockKey: lockKey,
	}
}

// Handle validates req, then loads the document, applies the operation and
// saves the document when it changed. A failed save is returned as an error
// wrapping domain.ErrStoreSave and the caller never sees a success result.
func (s *service) Handle(ctx context.Context, req domain.Request) (*domain.Result, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	opType := operationLabel(req.Type)
	log.Debug(LogMsgHandleCalled, "type", req.Type, "botID", req.BotID, "userID", req.UserID)

	result, err := s.handle(ctx, req)

	metrics.OperationDuration.WithLabelValues(opType).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OperationsTotal.WithLabelValues(opType, metrics.StatusError).Inc()
		if isClientError(err) {
			log.Info(LogMsgOperationRejected, "type", req.Type, "reason", err)
		}
		return nil, err
	}

	metrics.OperationsTotal.WithLabelValues(opType, metrics.StatusSuccess).Inc()
	log.Info(LogMsgOperationCompleted, "type", req.Type, "botID", req.BotID, "userID", req.UserID, "message", result.Message)
	return result, nil
}

func (s *service) handle(ctx context.Context, req domain.Request) (*domain.Result, error) {
	if err := s.engine.Validate(req); err != nil {
		return nil, err
	}

	var result *domain.Result
	err := s.locks.WithLock(s.lockKey, func() error {
		var err error
		result, err = s.apply(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// apply runs one load, execute and save cycle. The caller holds the document lock.
func (s *service) apply(ctx context.Context, req domain.Request) (*domain.Result, error) {
	log := logger.FromContext(ctx)

	doc, state, err := s.docs.Load(ctx)
	if err != nil {
		log.Error(LogMsgLoadFailed, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	log.Debug(LogMsgDocumentLoaded, "document", s.lockKey, "state", state)

	botID, userID := req.BotID.String(), req.UserID.String()
	before := doc.UserItems(botID, userID).TotalQuantity()

	result, mutated, err := s.engine.Execute(doc, req)
	if err != nil {
		return nil, err
	}
	if !mutated {
		return result, nil
	}

	if err := s.docs.Save(ctx, doc); err != nil {
		metrics.DocumentSaves.WithLabelValues(metrics.StatusError).Inc()
		log.Error(LogMsgSaveFailed, "error", err, "type", req.Type)
		return nil, domain.NewInventoryError(fmt.Errorf("%w: %w", domain.ErrStoreSave, err), domain.ErrMsgStoreSave)
	}
	metrics.DocumentSaves.WithLabelValues(metrics.StatusSuccess).Inc()

	recordItemDelta(before, doc.UserItems(botID, userID).TotalQuantity())
	return result, nil
}

// CheckHealth reports whether the document backend is reachable
func (s *service) CheckHealth(ctx context.Context) error {
	return s.docs.Ping(ctx)
}

func recordItemDelta(before, after int) {
	switch {
	case after > before:
		metrics.ItemsAdded.Add(float64(after - before))
	case after < before:
		metrics.ItemsRemoved.Add(float64(before - after))
	}
}

func operationLabel(opType string) string {
	switch opType {
	case domain.OperationAdd, domain.OperationGet, domain.OperationDelete, domain.OperationClear:
		return opType
	default:
		return operationUnknown
	}
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrMissingField) ||
		errors.Is(err, domain.ErrUnknownOperation) ||
		errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrCategoryNotFound)
}
