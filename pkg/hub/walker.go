package hub

import (
	"context"
	"fmt"
)

// Collection is one published collection as emitted by a walk.
// Records are immutable after creation.
type Collection struct {
	FQCN            string   // fully qualified name, "namespace.name"
	Channel         Channel  // content channel the collection came from
	Downloads       int      // lifetime download count
	RequiresAnsible string   // raw runtime version constraint of the highest version
	Authors         []string // authors of the highest version, in metadata order
}

// walkState tracks where the walker is in its page/item loop.
type walkState int

const (
	stateFetch walkState = iota // about to request the page at cursor
	stateEmit                   // emitting items from the current page
	stateDone                   // cursor chain exhausted or walk aborted
)

// Walker iterates the collection index of a single channel. Pages are
// followed via the server-supplied "next" cursor; for each item the
// walker fetches the highest-version sub-resource to learn the runtime
// constraint and authors before emitting a [Collection].
//
// A walk is finite, ordered (page order, then item order within each
// page) and not restartable. Any client failure puts the walker into
// its terminal state and propagates; there is no per-item skip.
type Walker struct {
	client  *Client
	channel Channel
	cursor  string
	state   walkState
	items   []indexItem
	idx     int
}

// NewWalker creates a walker over the collection index of ch,
// requesting up to limit items per page.
func NewWalker(client *Client, ch Channel, limit int) *Walker {
	return &Walker{
		client:  client,
		channel: ch,
		cursor:  ch.IndexPath(limit),
		state:   stateFetch,
	}
}

// Next returns the next collection in the walk, or (nil, nil) once the
// channel is exhausted. After an error or exhaustion every further
// call returns (nil, nil).
func (w *Walker) Next(ctx context.Context) (*Collection, error) {
	for {
		switch w.state {
		case stateDone:
			return nil, nil

		case stateFetch:
			var page indexPage
			if err := w.client.Get(ctx, w.cursor, &page); err != nil {
				w.state = stateDone
				return nil, fmt.Errorf("walk %s channel: %w", w.channel, err)
			}
			w.items = page.Data
			w.idx = 0
			if page.Links.Next != nil {
				w.cursor = *page.Links.Next
			} else {
				w.cursor = ""
			}
			w.state = stateEmit

		case stateEmit:
			if w.idx >= len(w.items) {
				if w.cursor == "" {
					w.state = stateDone
				} else {
					w.state = stateFetch
				}
				continue
			}
			item := w.items[w.idx]
			w.idx++

			fqcn := item.Namespace + "." + item.Name
			var detail versionDetail
			if err := w.client.Get(ctx, item.HighestVersion.Href, &detail); err != nil {
				w.state = stateDone
				return nil, fmt.Errorf("fetch highest version of %s (%s channel): %w", fqcn, w.channel, err)
			}

			return &Collection{
				FQCN:            fqcn,
				Channel:         w.channel,
				Downloads:       item.DownloadCount,
				RequiresAnsible: detail.RequiresAnsible,
				Authors:         detail.Metadata.Authors,
			}, nil
		}
	}
}

// Done reports whether the walk has reached its terminal state.
func (w *Walker) Done() bool { return w.state == stateDone }

type indexPage struct {
	Data  []indexItem `json:"data"`
	Links struct {
		Next *string `json:"next"`
	} `json:"links"`
}

type indexItem struct {
	Name           string `json:"name"`
	Namespace      string `json:"namespace"`
	DownloadCount  int    `json:"download_count"`
	HighestVersion struct {
		Href string `json:"href"`
	} `json:"highest_version"`
}

type versionDetail struct {
	RequiresAnsible string `json:"requires_ansible"`
	Metadata        struct {
		Authors []string `json:"authors"`
	} `json:"metadata"`
}
