package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"petgallery/internal/domain/models"

	"github.com/google/uuid"
)

var (
	ErrAlreadyLoading = errors.New("a fetch is already in flight")
	ErrClosed         = errors.New("controller is closed")
)

// DataSource fetches one feed window.
type DataSource interface {
	FetchPage(ctx context.Context, offset, limit int) (models.FeedPage, error)
}

// Notifier surfaces non-terminal fetch failures (the toast analog). May be
// nil.
type Notifier func(err error)

type Options struct {
	// InitialLimit is the first-page size; larger than PageLimit to
	// optimize first paint.
	InitialLimit int
	PageLimit    int
	// Debounce is the minimum interval between sentinel triggers.
	Debounce time.Duration
	Notify   Notifier
}

// Controller owns the item list and pagination cursor for one feed screen.
// The next offset is always len(items); appended pages are de-duplicated by
// id because concurrent inserts shift offsets and cause overlap between
// windows. At most one fetch is in flight: the guard is a synchronous flag
// taken under the mutex before any network I/O starts.
type Controller struct {
	src  DataSource
	opts Options

	mu          sync.Mutex
	items       []models.GalleryItem
	seen        map[uuid.UUID]struct{}
	hasNextPage bool
	loading     bool
	loaded      bool
	fetchErr    error
	closed      bool
	lastTrigger time.Time
}

func NewController(src DataSource, opts Options) *Controller {
	if opts.InitialLimit <= 0 {
		opts.InitialLimit = 16
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = 8
	}
	if opts.Debounce <= 0 {
		opts.Debounce = time.Second
	}

	return &Controller{
		src:  src,
		opts: opts,
		seen: make(map[uuid.UUID]struct{}),
	}
}

// Load performs the initial fetch, replacing any previous state. A failure
// here is terminal: the controller enters a persistent error state distinct
// from "zero items", and triggers stop firing until Load succeeds.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.loading {
		c.mu.Unlock()
		return ErrAlreadyLoading
	}
	c.loading = true
	c.items = nil
	c.seen = make(map[uuid.UUID]struct{})
	c.loaded = false
	c.fetchErr = nil
	c.hasNextPage = false
	limit := c.opts.InitialLimit
	c.mu.Unlock()

	page, err := c.src.FetchPage(ctx, 0, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		// stale completion after teardown: ignore
		return ErrClosed
	}

	c.loading = false

	if err != nil {
		c.fetchErr = err
		return err
	}

	for _, item := range page.Items {
		if _, ok := c.seen[item.ID]; ok {
			continue
		}
		c.seen[item.ID] = struct{}{}
		c.items = append(c.items, item)
	}
	c.loaded = true
	c.hasNextPage = page.Pagination.HasNextPage

	return nil
}

// Trigger is the sentinel-proximity handler: it requests the next page at
// offset=len(items), but only when no fetch is outstanding, more pages
// exist, and the debounce interval has elapsed. It reports whether a fetch
// was actually issued.
func (c *Controller) Trigger(ctx context.Context) bool {
	c.mu.Lock()
	now := time.Now()
	if c.closed || c.loading || !c.loaded || !c.hasNextPage ||
		now.Sub(c.lastTrigger) < c.opts.Debounce {
		c.mu.Unlock()
		return false
	}
	c.loading = true
	c.lastTrigger = now
	offset := len(c.items)
	limit := c.opts.PageLimit
	c.mu.Unlock()

	page, err := c.src.FetchPage(ctx, offset, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	c.loading = false

	if err != nil {
		// load-more failures are retriable: surface and let the next
		// trigger fire again
		if c.opts.Notify != nil {
			c.opts.Notify(err)
		}
		return true
	}

	for _, item := range page.Items {
		if _, ok := c.seen[item.ID]; ok {
			continue
		}
		c.seen[item.ID] = struct{}{}
		c.items = append(c.items, item)
	}
	c.hasNextPage = page.Pagination.HasNextPage

	return true
}

// Items returns a copy of the current item list.
func (c *Controller) Items() []models.GalleryItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.GalleryItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller) HasNextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasNextPage
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the terminal initial-load error, if any. Load-more failures
// never end up here.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchErr
}

// Empty reports whether a successful load yielded zero items, the state
// rendered as "nothing here yet" rather than an error.
func (c *Controller) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded && len(c.items) == 0
}

// Close tears the controller down. In-flight completions after Close are
// discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
