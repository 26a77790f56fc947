package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborhoodCache_NarrowInvalidation(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.Connect(Vertex{ID: "A"}, Vertex{ID: "B"}, 1))
	require.NoError(t, g.Connect(Vertex{ID: "C"}, Vertex{ID: "D"}, 1))

	// warm every neighborhood
	for _, id := range g.VertexIDs() {
		_, err := g.Degree(id)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"A", "B", "C", "D"}, g.cachedNeighborhoods())

	require.NoError(t, g.Connect(Vertex{ID: "A"}, Vertex{ID: "C"}, 2))
	assert.Equal(t, []string{"B", "D"}, g.cachedNeighborhoods(),
		"only the endpoints of the new edge are forgotten")

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d, "refilled neighborhood sees the new edge")
	d, err = g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestNeighborhoodCache_ConcurrentReaders(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Connect(Vertex{ID: "hub"}, Vertex{ID: string(rune('a' + i))}, 1))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				d, err := g.Degree("hub")
				assert.NoError(t, err)
				assert.Equal(t, 20.0, d)
			}
		}()
	}
	wg.Wait()
}
