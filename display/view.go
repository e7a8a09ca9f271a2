package display

import (
	"blogfeed/client"
	"blogfeed/storage/models"
	"context"
	"errors"
	"io"
	"log"
	"sync"
)

type Fetcher interface {
	Fetch(ctx context.Context) client.Result
}

type State struct {
	Posts   []models.Post
	Failed  bool
	Pending bool
}

// View holds the post list shown by the display page. Each mount issues
// exactly one fetch; results arriving after Unmount are dropped.
type View struct {
	fetcher  Fetcher
	onChange func()

	mu         sync.RWMutex
	posts      []models.Post
	failure    error
	pending    bool
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewView(fetcher Fetcher, onChange func()) *View {
	return &View{
		fetcher:  fetcher,
		onChange: onChange,
		posts:    []models.Post{},
	}
}

// NewLiveView returns a view whose state changes are pushed to pages
// through the returned reloader.
func NewLiveView(fetcher Fetcher) (*View, *LiveReloader) {
	var view *View
	reloader := NewLiveReloader(func() bool { return view.Settled() })
	view = NewView(fetcher, reloader.BroadcastReload)
	return view, reloader
}

// Mount starts the fetch and returns a channel closed once it has
// finished, whether or not its result was applied. Mounting a mounted
// view returns the running fetch's channel.
func (v *View) Mount(ctx context.Context) <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		return v.done
	}

	ctx, cancel := context.WithCancel(ctx)
	v.generation++
	generation := v.generation
	v.posts = []models.Post{}
	v.failure = nil
	v.pending = true
	v.cancel = cancel
	done := make(chan struct{})
	v.done = done

	go func() {
		defer close(done)
		v.apply(generation, v.fetcher.Fetch(ctx))
	}()
	return done
}

func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel == nil {
		return
	}
	v.cancel()
	v.cancel = nil
	v.pending = false
	v.generation++
}

func (v *View) apply(generation uint64, res client.Result) {
	v.mu.Lock()
	if generation != v.generation {
		v.mu.Unlock()
		return
	}
	switch {
	case res.OK():
		v.posts = res.Posts
	case errors.Is(res.Err, context.Canceled):
		// the mount's parent context went away; not a load failure
	default:
		log.Printf("Failed to load posts: %s", res.Err.Error())
		v.failure = res.Err
	}
	v.pending = false
	v.mu.Unlock()

	if v.onChange != nil {
		v.onChange()
	}
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	posts := make([]models.Post, len(v.posts))
	copy(posts, v.posts)
	return State{
		Posts:   posts,
		Failed:  v.failure != nil,
		Pending: v.pending,
	}
}

// Settled reports whether the view is not waiting on a fetch.
func (v *View) Settled() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.pending
}

func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.failure
}

func (v *View) Render(w io.Writer) error {
	return renderPage(w, v.State())
}
