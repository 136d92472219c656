package wheel

import (
	"fmt"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"
)

// Order is the fixed visual placement of quarters around the wheel: a
// segment→quarter list and its inverse. It is a value type; copies share
// nothing mutable.
type Order struct {
	forward [4]quarter.ID
	reverse [5]int // indexed by quarter.ID; slot 0 unused
}

// NewOrder builds the bijection. Every quarter must appear exactly once.
func NewOrder(segToQuarter [4]quarter.ID) (Order, error) {
	o := Order{forward: segToQuarter}
	seen := [5]bool{}
	for i, q := range segToQuarter {
		if !q.Valid() {
			return Order{}, errors.ValidationError(fmt.Sprintf("segment %d: invalid quarter %d", i, int(q)))
		}
		if seen[q] {
			return Order{}, errors.ValidationError(fmt.Sprintf("quarter %s placed twice", q))
		}
		seen[q] = true
		o.reverse[q] = i
	}
	return o, nil
}

// DefaultOrder places Q4, Q3, Q2, Q1 on segments 0..3.
func DefaultOrder() Order {
	o, err := NewOrder([4]quarter.ID{quarter.Q4, quarter.Q3, quarter.Q2, quarter.Q1})
	if err != nil {
		panic(err)
	}
	return o
}

// QuarterAt returns the quarter drawn on segment i.
func (o Order) QuarterAt(i int) (quarter.ID, bool) {
	if i < 0 || i >= len(o.forward) || !o.forward[i].Valid() {
		return 0, false
	}
	return o.forward[i], true
}

// SegmentOf returns the segment index drawing quarter q.
func (o Order) SegmentOf(q quarter.ID) (int, bool) {
	if !q.Valid() || !o.forward[o.reverse[q]].Valid() {
		return 0, false
	}
	return o.reverse[q], true
}

// Quarters returns the segment→quarter list.
func (o Order) Quarters() [4]quarter.ID {
	return o.forward
}
