package priority_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/davidvella/fibheap"
	"github.com/davidvella/fibheap/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	tests := []struct {
		name     string
		ops      []operation
		wantLen  int
		wantPeek *float64
	}{
		{
			name: "basic min heap operations",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opSet, key: "b", priority: 3},
				{opType: opSet, key: "c", priority: 7},
			},
			wantLen:  3,
			wantPeek: ptr(3),
		},
		{
			name: "lower existing key",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opSet, key: "a", priority: 2},
			},
			wantLen:  1,
			wantPeek: ptr(2),
		},
		{
			name: "raise existing key",
			ops: []operation{
				{opType: opSet, key: "a", priority: 1},
				{opType: opSet, key: "b", priority: 4},
				{opType: opSet, key: "a", priority: 9},
			},
			wantLen:  2,
			wantPeek: ptr(4),
		},
		{
			name: "remove operations",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opSet, key: "b", priority: 3},
				{opType: opSet, key: "c", priority: 7},
				{opType: opRemove, key: "b"},
			},
			wantLen:  2,
			wantPeek: ptr(5),
		},
		{
			name: "remove missing key",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opRemove, key: "z"},
			},
			wantLen:  1,
			wantPeek: ptr(5),
		},
		{
			name: "pop operations",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opSet, key: "b", priority: 3},
				{opType: opSet, key: "c", priority: 7},
				{opType: opPop},
				{opType: opPop},
			},
			wantLen:  1,
			wantPeek: ptr(7),
		},
		{
			name: "set after pop",
			ops: []operation{
				{opType: opSet, key: "a", priority: 5},
				{opType: opPop},
				{opType: opSet, key: "a", priority: 6},
			},
			wantLen:  1,
			wantPeek: ptr(6),
		},
		{
			name: "empty queue operations",
			ops: []operation{
				{opType: opPop},
				{opType: opPeek},
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := priority.NewQueue[string]()

			for _, op := range tt.ops {
				switch op.opType {
				case opSet:
					require.NoError(t, pq.Set(op.key, op.priority))
				case opRemove:
					pq.Remove(op.key)
				case opPop:
					_, _, _ = pq.Pop()
				case opPeek:
					_, _, _ = pq.Peek()
				}
			}

			assert.Equal(t, tt.wantLen, pq.Len())

			_, p, ok := pq.Peek()
			if tt.wantPeek == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tt.wantPeek, p)
		})
	}
}

func TestPriorityQueueOrder(t *testing.T) {
	pq := priority.NewQueue[string]()

	input := []struct {
		key      string
		priority float64
	}{
		{"a", 5},
		{"b", 3},
		{"c", 7},
		{"d", 1},
		{"e", 4},
	}

	for _, in := range input {
		require.NoError(t, pq.Set(in.key, in.priority))
	}

	want := []string{"d", "b", "e", "a", "c"}
	got := make([]string, 0, len(want))

	for pq.Len() > 0 {
		key, _, ok := pq.Pop()
		require.True(t, ok)
		got = append(got, key)
	}

	assert.Equal(t, want, got)
}

func TestPriorityQueueLookup(t *testing.T) {
	pq := priority.NewQueue[string]()
	require.NoError(t, pq.Set("a", 2))

	p, ok := pq.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2.0, p)
	assert.True(t, pq.Contains("a"))

	_, ok = pq.Get("b")
	assert.False(t, ok)
	assert.False(t, pq.Contains("b"))

	assert.True(t, pq.Remove("a"))
	assert.False(t, pq.Remove("a"))
	assert.False(t, pq.Contains("a"))
}

func TestPriorityQueueRejectsNaN(t *testing.T) {
	pq := priority.NewQueue[string]()
	require.NoError(t, pq.Set("a", 1))

	assert.ErrorIs(t, pq.Set("a", math.NaN()), fibheap.ErrInvalidPriority)
	assert.ErrorIs(t, pq.Set("b", math.NaN()), fibheap.ErrInvalidPriority)

	p, ok := pq.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, 1, pq.Len())
}

func TestPriorityQueueRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	pq := priority.NewQueue[int]()
	want := make(map[int]float64)

	for range 2000 {
		key := r.Intn(100)
		switch r.Intn(3) {
		case 0, 1:
			p := float64(r.Intn(1000))
			require.NoError(t, pq.Set(key, p))
			want[key] = p
		case 2:
			_, had := want[key]
			assert.Equal(t, had, pq.Remove(key))
			delete(want, key)
		}
		require.Equal(t, len(want), pq.Len())
	}

	last := math.Inf(-1)
	for pq.Len() > 0 {
		key, p, ok := pq.Pop()
		require.True(t, ok)
		require.Equal(t, want[key], p)
		require.GreaterOrEqual(t, p, last)
		last = p
		delete(want, key)
	}
	assert.Empty(t, want)
}

type opType int

const (
	opSet opType = iota
	opRemove
	opPop
	opPeek
)

type operation struct {
	opType   opType
	key      string
	priority float64
}

func ptr(f float64) *float64 {
	return &f
}

func BenchmarkPriorityQueue(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Set_%d", size), func(b *testing.B) {
			pq := priority.NewQueue[string]()

			// Pre-populate half of the items
			for i := 0; i < size/2; i++ {
				key := fmt.Sprintf("key-%d", i)
				_ = pq.Set(key, rand.Float64())
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := fmt.Sprintf("key-%d", i%size)
				_ = pq.Set(key, rand.Float64())
			}
		})

		b.Run(fmt.Sprintf("Pop_%d", size), func(b *testing.B) {
			pq := priority.NewQueue[string]()

			for i := 0; i < size; i++ {
				key := fmt.Sprintf("key-%d", i)
				_ = pq.Set(key, rand.Float64())
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if pq.Len() == 0 {
					b.StopTimer()
					// Repopulate when empty
					for j := 0; j < size; j++ {
						key := fmt.Sprintf("key-%d", j)
						_ = pq.Set(key, rand.Float64())
					}
					b.StartTimer()
				}
				_, _, _ = pq.Pop()
			}
		})

		b.Run(fmt.Sprintf("Mixed_%d", size), func(b *testing.B) {
			pq := priority.NewQueue[string]()

			for i := 0; i < size; i++ {
				key := fmt.Sprintf("key-%d", i)
				_ = pq.Set(key, rand.Float64())
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				switch rand.Intn(3) {
				case 0:
					key := fmt.Sprintf("key-%d", rand.Intn(size))
					_ = pq.Set(key, rand.Float64())
				case 1:
					if pq.Len() > 0 {
						_, _, _ = pq.Pop()
					}
				case 2:
					if pq.Len() > 0 {
						key := fmt.Sprintf("key-%d", rand.Intn(size))
						pq.Remove(key)
					}
				}
			}
		})
	}
}
