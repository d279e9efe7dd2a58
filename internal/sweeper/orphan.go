package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/store"
)

// OrphanSweeperConfig holds configuration for the orphan ownership sweeper
type OrphanSweeperConfig struct {
	Interval       time.Duration // Sleep between sweep cycles
	BatchSize      int           // Bindings reconciled per cycle
	WorkerPoolSize int
	QueueSize      int
	// ListMaxElapsed bounds the retries of the binding listing, 0 disables retries
	ListMaxElapsed time.Duration
}

type orphanSweeper struct {
	config     *OrphanSweeperConfig
	store      store.Store
	reconciler ownership.OrphanReconciler
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewOrphanSweeper creates a sweeper that links orphaned ownership records to
// the profiles whose bound wallet owns them
func NewOrphanSweeper(
	config *OrphanSweeperConfig,
	st store.Store,
	reconciler ownership.OrphanReconciler,
	clock adapter.Clock,
) Sweeper {
	return &orphanSweeper{
		config:     config,
		store:      st,
		reconciler: reconciler,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

func (s *orphanSweeper) Name() string {
	return "orphan-sweeper"
}

func (s *orphanSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting orphan sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Orphan sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Orphan sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			s.sleep(ctx, s.config.Interval)
		}
	}
}

func (s *orphanSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping orphan sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Orphan sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Orphan sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *orphanSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	bindings, err := s.listBindings(ctx)
	if err != nil {
		return err
	}
	if len(bindings) == 0 {
		logger.DebugCtx(ctx, "No orphaned ownership records")
		return nil
	}

	var reassociated, walletsUpdated, failures atomic.Int64

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)
	for _, binding := range bindings {
		pool.Submit(func() {
			result, err := s.reconciler.Reconcile(ctx, binding.UserID, binding.WalletAddress)
			if err != nil {
				failures.Add(1)
				logger.ErrorCtx(ctx, err, logger.UserID(binding.UserID), logger.Wallet(binding.WalletAddress))
				return
			}
			reassociated.Add(result.Reassociated)
			if result.UpdatedWallet {
				walletsUpdated.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("bindings", len(bindings)),
		zap.Int64("reassociated", reassociated.Load()),
		zap.Int64("wallets_updated", walletsUpdated.Load()),
		zap.Int64("failures", failures.Load()),
	)
	return nil
}

// listBindings retries transient listing failures with exponential backoff
func (s *orphanSweeper) listBindings(ctx context.Context) ([]store.OrphanBinding, error) {
	var bindings []store.OrphanBinding
	operation := func() error {
		var err error
		bindings, err = s.store.ListOrphanBindings(ctx, s.config.BatchSize)
		return err
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if s.config.ListMaxElapsed > 0 {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = time.Second
		b.MaxInterval = 30 * time.Second
		b.MaxElapsedTime = s.config.ListMaxElapsed
		policy = b
	}

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Listing orphan bindings failed, retrying", zap.Error(err), zap.Duration("next_retry_in", next))
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to list orphan bindings: %w", err)
	}
	return bindings, nil
}

// sleep is interrupted by cancellation or Stop
func (s *orphanSweeper) sleep(ctx context.Context, duration time.Duration) {
	select {
	case <-s.clock.After(duration):
	case <-ctx.Done():
	case <-s.stopChan:
	}
}
