// Package session owns the people list fetch and its load status.
package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/people"
)

// GenericFailure is reported when the fetch error renders as empty text
const GenericFailure = "failed to load people"

// Fetcher produces the full people list
type Fetcher interface {
	FetchAll(ctx context.Context) ([]people.Record, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context) ([]people.Record, error)

// FetchAll calls f
func (f FetcherFunc) FetchAll(ctx context.Context) ([]people.Record, error) {
	return f(ctx)
}

// Holder runs one fetch and exposes its outcome. The status is written only
// when the fetch completes; readers on any goroutine take the read lock.
type Holder struct {
	id      string
	fetcher Fetcher
	log     *logger.Logger

	mu     sync.RWMutex
	status Status

	once sync.Once
	done chan struct{}
}

// New returns a holder in Idle. Nothing is fetched until Load.
func New(fetcher Fetcher, log *logger.Logger) *Holder {
	if log == nil {
		log = logger.Nop()
	}
	return &Holder{
		id:      uuid.NewString(),
		fetcher: fetcher,
		log:     log,
		status:  Idle{},
		done:    make(chan struct{}),
	}
}

// Start creates a holder and begins its fetch
func Start(ctx context.Context, fetcher Fetcher, log *logger.Logger) *Holder {
	h := New(fetcher, log)
	h.Load(ctx)
	return h
}

// Load moves the holder to Loading and runs the fetch in the background.
// Only the first call has an effect; it returns false afterwards.
func (h *Holder) Load(ctx context.Context) bool {
	started := false
	h.once.Do(func() {
		started = true
		h.setStatus(Loading{})
		go h.run(ctx)
	})
	return started
}

func (h *Holder) run(ctx context.Context) {
	defer close(h.done)

	start := time.Now()
	fields := []logger.Field{logger.F("session", h.id)}
	h.log.DebugWithFields("fetch started", fields)

	var (
		records []people.Record
		err     error
		wg      conc.WaitGroup
	)
	wg.Go(func() {
		records, err = h.fetcher.FetchAll(ctx)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		err = fmt.Errorf("fetch panicked: %v", recovered.Value)
	}

	if err != nil {
		message := err.Error()
		if message == "" {
			message = GenericFailure
		}
		h.log.WarnWithFields("fetch failed", append(fields, logger.Error(err), logger.Duration(time.Since(start))))
		h.setStatus(Failed{Message: message})
		return
	}

	if records == nil {
		records = []people.Record{}
	}
	h.log.InfoWithFields("fetch finished", append(fields, logger.Count(len(records)), logger.Duration(time.Since(start))))
	h.setStatus(Loaded{Records: records})
}

func (h *Holder) setStatus(s Status) {
	h.mu.Lock()
	h.status = s
	h.mu.Unlock()
}

// ID returns the holder's session id
func (h *Holder) ID() string {
	return h.id
}

// Status returns the current load status
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Records returns a copy of the loaded records, empty unless Loaded
func (h *Holder) Records() []people.Record {
	return slices.Clone(RecordsOf(h.Status()))
}

// Lookup finds the first record named name in the current records
func (h *Holder) Lookup(name string) (people.Record, bool) {
	return people.FindByName(RecordsOf(h.Status()), name)
}

// Done is closed once the fetch has settled. It never closes if Load was
// not called.
func (h *Holder) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the fetch settles or ctx ends, and returns the status
func (h *Holder) Wait(ctx context.Context) (Status, error) {
	select {
	case <-h.done:
		return h.Status(), nil
	case <-ctx.Done():
		return h.Status(), ctx.Err()
	}
}
