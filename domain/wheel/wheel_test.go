package wheel

import (
	"testing"

	"roadmap/domain/geometry"
	"roadmap/domain/quarter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestSegmentsPartitionTheArc(t *testing.T) {
	for _, cfg := range []Config{
		{Count: 4, TotalSpan: 260, Gap: 8},
		{Count: 4, TotalSpan: 260, Gap: 6},
		{Count: 6, TotalSpan: 300, Gap: 2.5},
	} {
		segs := Segments(cfg)
		require.Len(t, segs, cfg.Count)

		span := cfg.SegmentSpan()
		for i, s := range segs {
			assert.Equal(t, i, s.Index)
			assert.InDelta(t, span, s.Span(), eps, "equal spans")
			if i > 0 {
				assert.InDelta(t, cfg.Gap, s.Start-segs[i-1].End, eps, "gap between %d and %d", i-1, i)
				assert.Greater(t, s.Start, segs[i-1].End, "no overlap")
			}
		}

		first, last := segs[0], segs[len(segs)-1]
		assert.InDelta(t, cfg.TotalSpan, last.End-first.Start, eps, "total extent")
		assert.InDelta(t, 90, (first.Start+last.End)/2, eps, "centered on 90°")
	}
}

func TestDesktopSegmentAngles(t *testing.T) {
	segs := Segments(Config{Count: 4, TotalSpan: 260, Gap: 8})
	assert.InDelta(t, -40, segs[0].Start, eps)
	assert.InDelta(t, 19, segs[0].End, eps)
	assert.InDelta(t, -10.5, segs[0].Mid(), eps)
	assert.InDelta(t, 161, segs[3].Start, eps)
	assert.InDelta(t, 220, segs[3].End, eps)
}

func TestDefaultOrderIsBijection(t *testing.T) {
	o := DefaultOrder()
	assert.Equal(t, [4]quarter.ID{4, 3, 2, 1}, o.Quarters())

	for i := 0; i < 4; i++ {
		q, ok := o.QuarterAt(i)
		require.True(t, ok)
		back, ok := o.SegmentOf(q)
		require.True(t, ok)
		assert.Equal(t, i, back)
	}

	_, ok := o.QuarterAt(4)
	assert.False(t, ok)
	_, ok = o.SegmentOf(quarter.ID(9))
	assert.False(t, ok)
}

func TestNewOrderRejectsDuplicates(t *testing.T) {
	_, err := NewOrder([4]quarter.ID{1, 1, 2, 3})
	assert.ErrorContains(t, err, "placed twice")

	_, err = NewOrder([4]quarter.ID{1, 2, 3, 0})
	assert.ErrorContains(t, err, "invalid quarter")
}

func TestZeroOrderHasNoSegments(t *testing.T) {
	var o Order
	_, ok := o.SegmentOf(quarter.Q1)
	assert.False(t, ok)

	w := Wheel{Segments: Segments(Config{Count: 4, TotalSpan: 260, Gap: 8})}
	_, ok = w.SegmentFor(quarter.Q1)
	assert.False(t, ok)
}

func TestWheelSegmentFor(t *testing.T) {
	w := New(geometry.Pt(160, 100), 140, 94, Config{Count: 4, TotalSpan: 260, Gap: 6}, DefaultOrder())

	s, ok := w.SegmentFor(quarter.Q4)
	require.True(t, ok)
	assert.Equal(t, 0, s.Index)

	s, ok = w.SegmentFor(quarter.Q1)
	require.True(t, ok)
	assert.Equal(t, 3, s.Index)

	assert.InDelta(t, 117, w.Midway(), eps)
	assert.Equal(t, 0, w.Wedge(s).LargeArc)
}
