package archive

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/yourorg/listing-api/internal/catalog"
)

// Job is one listing to mirror, with the raw payload it was created from.
type Job struct {
	Property catalog.Property
	Source   string
	Raw      []byte
}

type saver interface {
	SaveProperty(ctx context.Context, p catalog.Property, source string, raw []byte) error
}

// Writer drains archive jobs off the request path. Jobs for a property
// already in flight are dropped, as are jobs that would block when the
// queue is saturated; the catalog stays authoritative either way.
type Writer struct {
	ch      chan Job
	inFly   sync.Map // property id -> struct{}
	store   saver
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewWriter starts workerCount workers. saveTimeout bounds each store write;
// zero or negative means the 15s default.
func NewWriter(store *Store, capacity, workerCount int, saveTimeout time.Duration) *Writer {
	return newWriter(store, capacity, workerCount, saveTimeout)
}

func newWriter(store saver, capacity, workerCount int, saveTimeout time.Duration) *Writer {
	if capacity <= 0 {
		capacity = 256
	}
	if workerCount <= 0 {
		workerCount = 2
	}
	if saveTimeout <= 0 {
		saveTimeout = 15 * time.Second
	}
	w := &Writer{ch: make(chan Job, capacity), store: store, timeout: saveTimeout}
	w.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go w.worker()
	}
	return w
}

func (w *Writer) Enqueue(j Job) {
	if _, exists := w.inFly.LoadOrStore(j.Property.ID, struct{}{}); exists {
		return
	}
	select {
	case w.ch <- j:
	default:
		// drop if saturated
		w.inFly.Delete(j.Property.ID)
	}
}

// Close stops accepting jobs and blocks until the workers have drained
// everything already queued. Enqueue must not be called after Close.
func (w *Writer) Close() {
	close(w.ch)
	w.wg.Wait()
}

func (w *Writer) worker() {
	defer w.wg.Done()
	for j := range w.ch {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		if err := w.store.SaveProperty(ctx, j.Property, j.Source, j.Raw); err != nil {
			slog.Warn("archive: save failed", "id", j.Property.ID, "err", err)
		}
		w.inFly.Delete(j.Property.ID)
		cancel()
	}
}
