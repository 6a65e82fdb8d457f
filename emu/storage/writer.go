package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"nescore/emu/log"
)

// A Record is a save-RAM write intent.
type Record struct {
	Hash string
	Kind string
	Data []byte
}

// Writer writes save-RAM records in the background.
//
// Records are coalesced: only the latest record of each (hash, kind) pair is
// kept. They're written at most delay after the first pending submission, or
// immediately with Flush.
type Writer struct {
	adapter Adapter
	delay   time.Duration
	log     log.ModLog
	onError func(error)

	mu      sync.Mutex
	pending map[ramKey][]byte
	closed  bool

	flushMu sync.Mutex // flushes are serialized, so that old data never overwrites new

	kick chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewWriter starts a writer on top of adapter. onError, if not nil, is called
// for each failed write, possibly from several goroutines at once.
func NewWriter(adapter Adapter, delay time.Duration, lg log.ModLog, onError func(error)) *Writer {
	w := &Writer{
		adapter: adapter,
		delay:   delay,
		log:     lg,
		onError: onError,
		pending: make(map[ramKey][]byte),
		kick:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// Submit queues rec for writing, replacing any pending record with the same
// hash and kind. It never blocks. rec.Data must not be modified afterwards.
func (w *Writer) Submit(rec Record) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.WarnZ("save-RAM record dropped, writer closed").
			String("hash", rec.Hash).
			String("kind", rec.Kind).
			End()
		return
	}
	w.pending[ramKey{rec.Hash, rec.Kind}] = rec.Data
	w.mu.Unlock()

	w.wake()
}

// wake arms the write timer of the background goroutine.
func (w *Writer) wake() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Pending returns the number of records waiting to be written.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

func (w *Writer) loop() {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-w.kick:
			// The timer isn't pushed back by later submissions, a record
			// never waits more than delay.
			if fire == nil {
				timer = time.NewTimer(w.delay)
				fire = timer.C
			}
		case <-fire:
			fire = nil
			w.Flush(context.Background())
		case <-w.quit:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Flush writes all pending records concurrently and waits for completion.
// Failed records are kept pending, unless a newer record replaced them in
// the meantime. It returns the first error encountered.
func (w *Writer) Flush(ctx context.Context) error {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	batch := w.pending
	w.pending = make(map[ramKey][]byte)
	w.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	var g errgroup.Group
	for key, data := range batch {
		g.Go(func() error {
			err := w.adapter.WriteRAM(ctx, key.hash, key.kind, data)
			if err != nil {
				w.log.ErrorZ("failed to write save-RAM").
					String("hash", key.hash).
					String("kind", key.kind).
					Error("err", err).
					End()
				w.requeue(key, data)
				if w.onError != nil {
					w.onError(err)
				}
			}
			return err
		})
	}
	return g.Wait()
}

// requeue puts back a record that failed to be written, and schedules a new
// attempt.
func (w *Writer) requeue(key ramKey, data []byte) {
	w.mu.Lock()
	if _, ok := w.pending[key]; !ok {
		w.pending[key] = data
	}
	w.mu.Unlock()

	w.wake()
}

// Close stops the background goroutine and writes the pending records.
// Records submitted after Close are dropped.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.quit)
	<-w.done
	return w.Flush(context.Background())
}
