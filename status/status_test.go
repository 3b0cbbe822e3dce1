package status

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtomicFloat_Smooth(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 60.0, f.Smooth(60, 0.1), "first sample seeds")
	assert.InDelta(t, 57.0, f.Smooth(30, 0.1), 1e-9)
	f.Set(2.5)
	assert.Equal(t, 2.5, f.Get())
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("lissajous")
	assert.Equal(t, "lissajous", s.Load())
	s.Store("abcdefghijklmnopqrstuvwxyz")
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestMetricMap_SharedPointerAndOrder(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b").Add(2)
	m.Get("a").Add(1)
	assert.Same(t, m.Get("a"), m.Get("a"))
	assert.True(t, m.Has("b"))
	assert.False(t, m.Has("c"))

	var keys []string
	m.Range(func(k string, v *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, 2, m.Count())
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.Get("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1600), m.Get("hits").Load())
}

func TestStats_Snapshot(t *testing.T) {
	r := NewRegistry()
	s := NewStats(r)
	s.RecordFrame(16 * time.Millisecond)
	s.RecordFrame(0)
	s.RecordForced()
	s.SetScene("rune", "2d", "main", true)
	s.SetPaused(true)

	snap := s.Snapshot()
	assert.Equal(t, int64(2), snap.Frames)
	assert.Equal(t, int64(1), snap.Forced)
	assert.InDelta(t, 62.5, snap.FPS, 1e-9)
	assert.Equal(t, "rune", snap.Scene)
	assert.True(t, snap.Locked)
	assert.Equal(t, "rune main/2d  62.5 fps #2 [2d lock] [paused]", snap.String())
	assert.Equal(t, 8, r.TotalCount())
}
