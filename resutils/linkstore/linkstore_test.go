package linkstore_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/displaypool/resutils"
	"github.com/vkngwrapper/displaypool/resutils/linkstore"
)

type protocol int

const (
	protocolLegacy protocol = iota
	protocolSST
	protocolMST
)

type fakeService struct {
	name      string
	destroyed int
}

func (s *fakeService) Destroy() {
	s.destroyed++
}

func TestAddGetFind(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](2, 3)
	require.Equal(t, 2, store.PathCount())
	require.Equal(t, 3, store.MaxLinks())

	sst := &fakeService{name: "sst"}
	mst := &fakeService{name: "mst"}
	require.NoError(t, store.Add(0, 2, protocolSST, sst))
	require.NoError(t, store.Add(1, 1, protocolMST, mst))

	handle, ok := store.Get(0, 2, protocolSST)
	require.True(t, ok)
	require.Same(t, sst, handle)

	_, ok = store.Get(0, 2, protocolMST)
	require.False(t, ok)
	_, ok = store.Get(0, 1, protocolSST)
	require.False(t, ok)

	link, handle, ok := store.Find(1, protocolMST)
	require.True(t, ok)
	require.Equal(t, 1, link)
	require.Same(t, mst, handle)

	_, _, ok = store.Find(1, protocolLegacy)
	require.False(t, ok)
	require.Equal(t, 1, store.Count(0))
}

func TestFindReturnsFirstLink(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](1, 4)

	far := &fakeService{name: "far"}
	near := &fakeService{name: "near"}
	require.NoError(t, store.Add(0, 3, protocolSST, far))
	require.NoError(t, store.Add(0, 1, protocolSST, near))

	link, handle, ok := store.Find(0, protocolSST)
	require.True(t, ok)
	require.Equal(t, 1, link)
	require.Same(t, near, handle)
}

func TestOutOfRange(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](1, 2)

	err := store.Add(1, 0, protocolSST, &fakeService{})
	require.ErrorIs(t, err, resutils.ErrInvalidPath)

	err = store.Add(0, 2, protocolSST, &fakeService{})
	require.ErrorIs(t, err, resutils.ErrInvalidPath)

	_, ok := store.Get(-1, 0, protocolSST)
	require.False(t, ok)

	require.ErrorIs(t, store.Swap(0, 5), resutils.ErrInvalidPath)
}

func TestAddOccupied(t *testing.T) {
	if resutils.DebugChecks {
		t.Skip("contract violations panic in debug builds")
	}

	store := linkstore.New[protocol, *fakeService](1, 1)
	first := &fakeService{name: "first"}
	require.NoError(t, store.Add(0, 0, protocolSST, first))

	err := store.Add(0, 0, protocolSST, &fakeService{name: "second"})
	require.Error(t, err)
	require.True(t, errors.IsAssertionFailure(err))

	handle, ok := store.Get(0, 0, protocolSST)
	require.True(t, ok)
	require.Same(t, first, handle)
}

func TestSetupPreservesAndTruncates(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](2, 2)

	kept := &fakeService{name: "kept"}
	dropped := &fakeService{name: "dropped"}
	require.NoError(t, store.Add(0, 0, protocolLegacy, kept))
	require.NoError(t, store.Add(1, 1, protocolSST, dropped))

	store.Setup(4)
	require.Equal(t, 4, store.PathCount())
	handle, ok := store.Get(0, 0, protocolLegacy)
	require.True(t, ok)
	require.Same(t, kept, handle)
	handle, ok = store.Get(1, 1, protocolSST)
	require.True(t, ok)
	require.Same(t, dropped, handle)

	store.Setup(1)
	require.Equal(t, 1, store.PathCount())
	require.Equal(t, 1, dropped.destroyed)
	require.Equal(t, 0, kept.destroyed)

	store.Setup(2)
	_, ok = store.Get(1, 1, protocolSST)
	require.False(t, ok)
}

func TestSwap(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](3, 1)

	a := &fakeService{name: "a"}
	c := &fakeService{name: "c"}
	require.NoError(t, store.Add(0, 0, protocolSST, a))
	require.NoError(t, store.Add(2, 0, protocolSST, c))

	require.NoError(t, store.Swap(0, 2))

	handle, ok := store.Get(0, 0, protocolSST)
	require.True(t, ok)
	require.Same(t, c, handle)
	handle, ok = store.Get(2, 0, protocolSST)
	require.True(t, ok)
	require.Same(t, a, handle)
}

func TestVisitAndRelease(t *testing.T) {
	store := linkstore.New[protocol, *fakeService](2, 2)

	services := []*fakeService{{name: "0"}, {name: "1"}, {name: "2"}}
	require.NoError(t, store.Add(0, 0, protocolSST, services[0]))
	require.NoError(t, store.Add(0, 1, protocolMST, services[1]))
	require.NoError(t, store.Add(1, 0, protocolLegacy, services[2]))

	var visitedLinks []int
	store.VisitPath(0, func(link int, _ protocol, _ *fakeService) {
		visitedLinks = append(visitedLinks, link)
	})
	require.Equal(t, []int{0, 1}, visitedLinks)

	total := 0
	store.VisitAll(func(_, _ int, _ protocol, _ *fakeService) {
		total++
	})
	require.Equal(t, 3, total)

	store.ReleasePath(0)
	require.Equal(t, 1, services[0].destroyed)
	require.Equal(t, 1, services[1].destroyed)
	require.Equal(t, 0, services[2].destroyed)
	require.Equal(t, 0, store.Count(0))

	store.ReleaseAll()
	require.Equal(t, 1, services[2].destroyed)
	require.Equal(t, 2, store.PathCount())
}
