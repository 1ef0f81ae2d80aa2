package archive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-api/internal/catalog"
)

type fakeSaver struct {
	mu      sync.Mutex
	saved   []string
	failID  string
	started chan string
	gate    chan struct{}
}

func (f *fakeSaver) SaveProperty(_ context.Context, p catalog.Property, _ string, _ []byte) error {
	if f.started != nil {
		f.started <- p.ID
	}
	if f.gate != nil {
		<-f.gate
	}
	if p.ID == f.failID {
		return errors.New("boom")
	}
	f.mu.Lock()
	f.saved = append(f.saved, p.ID)
	f.mu.Unlock()
	return nil
}

func (f *fakeSaver) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.saved...)
}

func job(id string) Job {
	return Job{Property: catalog.Property{ID: id}, Source: "test", Raw: []byte("{}")}
}

func TestWriter(t *testing.T) {
	t.Run("close drains queued jobs", func(t *testing.T) {
		fs := &fakeSaver{}
		w := newWriter(fs, 8, 2, time.Second)
		w.Enqueue(job("a"))
		w.Enqueue(job("b"))
		w.Enqueue(job("c"))
		w.Close()
		assert.ElementsMatch(t, []string{"a", "b", "c"}, fs.ids())
	})

	t.Run("duplicate in-flight id is dropped", func(t *testing.T) {
		fs := &fakeSaver{started: make(chan string, 1), gate: make(chan struct{})}
		w := newWriter(fs, 8, 1, time.Second)

		w.Enqueue(job("a"))
		require.Equal(t, "a", <-fs.started) // worker holds "a" at the gate
		w.Enqueue(job("a"))                 // still in flight, dropped

		close(fs.gate)
		w.Close()
		assert.Equal(t, []string{"a"}, fs.ids())
	})

	t.Run("same id can be enqueued again after completion", func(t *testing.T) {
		fs := &fakeSaver{}
		w := newWriter(fs, 8, 1, time.Second)
		w.Enqueue(job("a"))
		require.Eventually(t, func() bool { return len(fs.ids()) == 1 }, time.Second, 5*time.Millisecond)
		w.Enqueue(job("a"))
		w.Close()
		assert.Equal(t, []string{"a", "a"}, fs.ids())
	})

	t.Run("saturated queue drops instead of blocking", func(t *testing.T) {
		fs := &fakeSaver{started: make(chan string, 1), gate: make(chan struct{})}
		w := newWriter(fs, 1, 1, time.Second)

		w.Enqueue(job("a"))
		require.Equal(t, "a", <-fs.started) // worker busy
		w.Enqueue(job("b"))                 // fills the buffer
		w.Enqueue(job("c"))                 // dropped, does not block

		close(fs.gate)
		w.Close()
		assert.ElementsMatch(t, []string{"a", "b"}, fs.ids())
	})

	t.Run("a failing save does not stop the worker", func(t *testing.T) {
		fs := &fakeSaver{failID: "bad"}
		w := newWriter(fs, 8, 1, time.Second)
		w.Enqueue(job("bad"))
		w.Enqueue(job("good"))
		w.Close()
		assert.Equal(t, []string{"good"}, fs.ids())
	})
}
