package uhash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/uhash"
)

func TestSet_AddHasDelete(t *testing.T) {
	s, err := uhash.NewSet[uint32]()
	require.NoError(t, err)

	added, err := s.Add(42)
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, s.Has(42))
	require.Equal(t, 1, s.Len())

	// Duplicate insertion is a rejected no-op, not an error.
	added, err = s.Add(42)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 1, s.Len())

	require.True(t, s.Delete(42))
	require.False(t, s.Has(42))
	require.Equal(t, 0, s.Len())

	// Deleting an absent key is a rejected no-op.
	require.False(t, s.Delete(42))
}

func TestSet_IterYieldsEachKeyOnce(t *testing.T) {
	s, err := uhash.NewSet[uint32]()
	require.NoError(t, err)

	const n = 500 // several resizes past the initial 128 buckets
	for i := uint32(0); i < n; i++ {
		added, addErr := s.Add(i * 3)
		require.NoError(t, addErr)
		require.True(t, added)
	}
	require.Equal(t, n, s.Len())

	seen := make(map[uint32]int, n)
	it := s.Iter()
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		seen[k]++
	}
	require.Len(t, seen, n)
	for k, count := range seen {
		require.Equal(t, 1, count, "key %d yielded %d times", k, count)
		require.Zero(t, k%3)
	}
}

func TestSet_SurvivesResize(t *testing.T) {
	s, err := uhash.NewSet[uint32]()
	require.NoError(t, err)

	// 3/4 of 128 is 96; inserting 1000 keys forces several doublings.
	for i := uint32(0); i < 1000; i++ {
		_, addErr := s.Add(i)
		require.NoError(t, addErr)
	}
	for i := uint32(0); i < 1000; i++ {
		require.True(t, s.Has(i), "key %d lost across resize", i)
	}
	require.False(t, s.Has(1000))
}

func TestSet_AnyAndRandomReturnLiveKeys(t *testing.T) {
	s, err := uhash.NewSet[uint32](uhash.WithSeed(7))
	require.NoError(t, err)

	members := []uint32{5, 11, 99, 1024}
	for _, k := range members {
		_, addErr := s.Add(k)
		require.NoError(t, addErr)
	}
	require.Contains(t, members, s.Any())
	for i := 0; i < 20; i++ {
		require.Contains(t, members, s.Random())
	}
}

func TestSet_AllocFailureLeavesSetUnchanged(t *testing.T) {
	budget := alloc.NewBudget(-1)
	s, err := uhash.NewSet[uint32](uhash.WithAllocator(budget))
	require.NoError(t, err)

	_, err = s.Add(1)
	require.NoError(t, err)

	// Force the next allocation (a fresh bucket for key 2) to fail.
	budget.SetLimit(0)
	_, err = s.Add(2)
	if err == nil {
		// Key 2 landed in an existing bucket with spare capacity; the
		// table genuinely needed no allocation, which is also correct.
		require.True(t, s.Has(2))
		return
	}
	require.ErrorIs(t, err, alloc.ErrNoMemory)
	require.False(t, s.Has(2))
	require.Equal(t, 1, s.Len())
	require.True(t, s.Has(1))
}

func TestSet_ResizeFailureRollsBack(t *testing.T) {
	budget := alloc.NewBudget(-1)
	s, err := uhash.NewSet[uint32](uhash.WithAllocator(budget))
	require.NoError(t, err)

	// Fill to one below the 3/4 load-factor trigger of the 128-bucket
	// table, then forbid further allocations so the resize must fail.
	for i := uint32(0); i < 95; i++ {
		_, addErr := s.Add(i)
		require.NoError(t, addErr)
	}
	require.Equal(t, 95, s.Len())

	budget.SetLimit(1) // enough for at most the bucket append, never the rebuild
	_, err = s.Add(95)
	require.ErrorIs(t, err, alloc.ErrNoMemory)

	// Rollback: the trigger key is gone and every prior key survived.
	require.False(t, s.Has(95))
	require.Equal(t, 95, s.Len())
	for i := uint32(0); i < 95; i++ {
		require.True(t, s.Has(i), "key %d lost by failed resize", i)
	}

	// With the budget lifted the same insertion succeeds.
	budget.Reset()
	added, err := s.Add(95)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 96, s.Len())
}
