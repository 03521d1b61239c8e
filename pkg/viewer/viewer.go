// Package viewer models one page view: a single asynchronous load of the
// resume record followed by a pure projection of the outcome to HTML.
package viewer

import (
	"context"
	"sync"

	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/sections"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadingMessage is shown until the load settles.
const LoadingMessage = "Loading..."

// Status is the lifecycle position of a View.
type Status int

const (
	// StatusPending means the record has not arrived yet.
	StatusPending Status = iota
	// StatusLoaded means the record was fetched and decoded.
	StatusLoaded
	// StatusFailed means the fetch or decode failed.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() (name string) {
	switch s {
	case StatusLoaded:
		name = "loaded"
	case StatusFailed:
		name = "failed"
	default:
		name = "pending"
	}
	return name
}

// State is a snapshot of a View.
type State struct {
	Status   Status
	Document cv.Document
	Err      string
}

// Loader fetches a resume record; *cv.Fetcher satisfies it.
type Loader interface {
	Fetch(ctx context.Context, source string) (cv.Document, error)
}

// View holds the outcome of one page load. It settles exactly once.
type View struct {
	loader  Loader
	source  string
	opts    sections.Options
	once    sync.Once
	mu      sync.RWMutex
	state   State
	settled chan struct{}
}

// New creates a pending view that will load source through loader.
func New(loader Loader, source string, opts sections.Options) (view *View) {
	view = &View{
		loader:  loader,
		source:  source,
		opts:    opts,
		settled: make(chan struct{}),
	}
	return view
}

// Load performs the fetch on first call and returns the settled state.
// Concurrent and later calls wait for, and return, that same outcome.
func (v *View) Load(ctx context.Context) (state State) {
	v.once.Do(func() {
		doc, err := v.loader.Fetch(ctx, v.source)

		v.mu.Lock()
		if err != nil {
			v.state = State{Status: StatusFailed, Err: err.Error()}
		} else {
			v.state = State{Status: StatusLoaded, Document: doc}
		}
		v.mu.Unlock()

		close(v.settled)
	})

	state = v.State()
	return state
}

// Settled is closed once the load has finished either way.
func (v *View) Settled() (ch <-chan struct{}) {
	ch = v.settled
	return ch
}

// State returns the current snapshot.
func (v *View) State() (state State) {
	v.mu.RLock()
	state = v.state
	v.mu.RUnlock()
	return state
}

// Render projects the current state to HTML: a loading notice while pending,
// a single error message on failure, the full document otherwise.
func (v *View) Render() (node *html.Node) {
	node = Project(v.State(), v.opts)
	return node
}

// Project is the pure mapping from a state to its HTML.
func Project(state State, opts sections.Options) (node *html.Node) {
	switch state.Status {
	case StatusLoaded:
		node = sections.Page(state.Document, opts)
	case StatusFailed:
		node = message("error", "Error: "+state.Err)
	default:
		node = message("loading", LoadingMessage)
	}
	return node
}

func message(class, text string) (node *html.Node) {
	node = &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return node
}
