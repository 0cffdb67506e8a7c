package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"MarginEngine/internal/observability"
)

// Output is one unit of work for the persistence worker: a committed
// account update, newly ingested fills, or both. The orchestrator
// (cmd/marginengine) bridges engine updates and parsed fills into this.
type Output struct {
	Update *UpdateRow
	Trades []TradeRow
}

// Worker drains the persist channel and batch-writes to Postgres. The
// persist channel uses BLOCKING sends from the engine, so if this worker
// falls behind, the engine stalls — guaranteeing no committed update is
// lost.
type Worker struct {
	writer       *Writer
	inputChan    <-chan Output
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
}

func NewWorker(
	db *sql.DB,
	inputChan <-chan Output,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *Worker {
	return &Worker{
		writer:       NewWriter(db),
		inputChan:    inputChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
	}
}

// Run starts the persistence worker loop. It batches incoming outputs
// and flushes either when the batch is full or the flush timeout expires.
// Blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	updateBatch := make([]UpdateRow, 0, w.batchSize)
	tradeBatch := make([]TradeRow, 0, w.batchSize)

	timer := time.NewTimer(w.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			// Graceful shutdown: flush remaining
			if len(updateBatch) > 0 || len(tradeBatch) > 0 {
				if err := w.flush(context.Background(), updateBatch, tradeBatch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case output, ok := <-w.inputChan:
			if !ok {
				if len(updateBatch) > 0 || len(tradeBatch) > 0 {
					if err := w.flush(context.Background(), updateBatch, tradeBatch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
					}
				}
				return nil
			}

			if output.Update != nil {
				updateBatch = append(updateBatch, *output.Update)
			}
			tradeBatch = append(tradeBatch, output.Trades...)

			if len(updateBatch) >= w.batchSize || len(tradeBatch) >= w.batchSize {
				if err := w.flushWithRetry(ctx, updateBatch, tradeBatch); err != nil {
					log.Printf("ERROR: batch flush failed after retries: %v", err)
				}
				updateBatch = updateBatch[:0]
				tradeBatch = tradeBatch[:0]
				timer.Reset(w.flushTimeout)
			}

		case <-timer.C:
			if len(updateBatch) > 0 || len(tradeBatch) > 0 {
				if err := w.flushWithRetry(ctx, updateBatch, tradeBatch); err != nil {
					log.Printf("ERROR: timeout flush failed after retries: %v", err)
				}
				updateBatch = updateBatch[:0]
				tradeBatch = tradeBatch[:0]
			}
			timer.Reset(w.flushTimeout)
		}
	}
}

// flushWithRetry attempts to flush with exponential backoff. The worker
// never drops a batch — it retries until the write succeeds or the
// context is cancelled (graceful shutdown gets one final attempt).
func (w *Worker) flushWithRetry(ctx context.Context, updates []UpdateRow, trades []TradeRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: persistence retry attempt %d (backoff=%v, updates=%d, trades=%d)",
				attempt, backoff, len(updates), len(trades))
			select {
			case <-ctx.Done():
				finalErr := w.flush(context.Background(), updates, trades)
				if finalErr != nil {
					return fmt.Errorf("final flush on shutdown failed: %w", finalErr)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		err := w.flush(ctx, updates, trades)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: persistence flush succeeded after %d retries", attempt)
			}
			return nil
		}

		if w.metrics != nil {
			w.metrics.PersistRetry.Inc()
		}
	}
}

func (w *Worker) flush(ctx context.Context, updates []UpdateRow, trades []TradeRow) error {
	start := time.Now()

	tx, err := w.writer.db.BeginTx(ctx, nil)
	if err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_begin").Inc()
		}
		return err
	}
	defer tx.Rollback()

	if err := w.writer.WriteUpdateBatch(ctx, tx, updates); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("write_updates").Inc()
		}
		return err
	}

	if err := w.writer.WriteTradeBatch(ctx, tx, trades); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("write_trades").Inc()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_commit").Inc()
		}
		return err
	}

	if w.metrics != nil {
		w.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		w.metrics.PersistBatchSize.Observe(float64(len(updates) + len(trades)))
		w.metrics.PersistUpdatesWritten.Add(float64(len(updates)))
		w.metrics.PersistTradesWritten.Add(float64(len(trades)))
	}

	return nil
}

// GetWriter returns the underlying writer.
func (w *Worker) GetWriter() *Writer {
	return w.writer
}
