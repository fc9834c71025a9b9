package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.ChannelSession = (*ChannelStore)(nil)
	_ ports.Navigator      = (*Navigator)(nil)
)

func TestChannelStore_AddKeepsOrder(t *testing.T) {
	store := NewChannelStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.Channel{ID: "1"}, domain.Channel{ID: "2"}))
	require.NoError(t, store.Add(ctx, domain.Channel{ID: "3"}))

	channels, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 3)
	assert.Equal(t, "1", channels[0].ID)
	assert.Equal(t, "2", channels[1].ID)
	assert.Equal(t, "3", channels[2].ID)
}

func TestChannelStore_ListReturnsCopy(t *testing.T) {
	store := NewChannelStore()
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, domain.Channel{ID: "1", Name: "A"}))

	channels, err := store.List(ctx)
	require.NoError(t, err)
	channels[0].Name = "changed"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)
}

func TestChannelStore_CancelledContext(t *testing.T) {
	store := NewChannelStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Add(ctx, domain.Channel{ID: "1"})
	assert.ErrorIs(t, err, context.Canceled)

	channels, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestChannelStore_BatchesAreNotInterleaved(t *testing.T) {
	store := NewChannelStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for b := 0; b < 10; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			batch := make([]domain.Channel, 5)
			for i := range batch {
				batch[i] = domain.Channel{ID: fmt.Sprintf("%d-%d", b, i), SourceList: fmt.Sprintf("%d", b)}
			}
			_ = store.Add(ctx, batch...)
		}(b)
	}
	wg.Wait()

	channels, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 50)
	for i := 0; i < len(channels); i += 5 {
		for j := 1; j < 5; j++ {
			assert.Equal(t, channels[i].SourceList, channels[i+j].SourceList)
		}
	}
}

func TestNavigator(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, domain.NavigationState{}, nav.State())

	nav.RequestNavigation("/iptv")
	nav.RequestNavigation("/player")

	assert.Equal(t, domain.NavigationState{LastRoute: "/player", Requests: 2}, nav.State())
}
