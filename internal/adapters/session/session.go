package session

import (
	"context"
	"sync"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/logging"
)

// ChannelStore is the process-wide channel collection for the running session.
// It is safe for concurrent use.
type ChannelStore struct {
	mu       sync.RWMutex
	channels []domain.Channel
}

// NewChannelStore creates an empty session.
func NewChannelStore() *ChannelStore {
	return &ChannelStore{}
}

// Add appends channels in order under a single lock, so concurrent readers
// never observe a partially hydrated playlist.
func (c *ChannelStore) Add(ctx context.Context, channels ...domain.Channel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels = append(c.channels, channels...)
	return nil
}

func (c *ChannelStore) List(_ context.Context) ([]domain.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Channel, len(c.channels))
	copy(out, c.channels)
	return out, nil
}

// Navigator records navigation requests. The HTTP layer reports the last
// requested route back to the client.
type Navigator struct {
	mu        sync.Mutex
	lastRoute string
	requests  int
}

// NewNavigator creates a navigator with no recorded requests.
func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) RequestNavigation(route string) {
	n.mu.Lock()
	n.lastRoute = route
	n.requests++
	n.mu.Unlock()

	logging.Debug("[navigation] requested %s", route)
}

// State returns the last requested route and the number of requests so far.
func (n *Navigator) State() domain.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return domain.NavigationState{LastRoute: n.lastRoute, Requests: n.requests}
}
