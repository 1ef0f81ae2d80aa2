package events

import (
	"context"
)

// Kind discriminates listing activity events.
type Kind string

const (
	KindPropertyViewed  Kind = "property.viewed"
	KindFavoriteChanged Kind = "favorite.changed"
	KindInquiryCreated  Kind = "inquiry.created"
)

// Activity is a single user interaction with a listing. Favorited is only
// meaningful for favorite.changed events.
type Activity struct {
	Kind       Kind
	PropertyID string
	Favorited  bool
}

type Publisher interface {
	Publish(ctx context.Context, evt Activity)
	Subscribe() <-chan Activity
}

type inMemory struct{ ch chan Activity }

// NewInMemory returns a buffered in-process publisher. Publish never blocks;
// events are dropped when the buffer is saturated.
func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan Activity, buffer)}
}

func (m *inMemory) Publish(_ context.Context, evt Activity) {
	select {
	case m.ch <- evt:
	default:
	}
}

func (m *inMemory) Subscribe() <-chan Activity { return m.ch }
