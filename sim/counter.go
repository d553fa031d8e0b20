// Tracks how many items each monkey has inspected and answers the
// final "monkey business" query over the two busiest monkeys.

package sim

import "fmt"

// InspectionCounter tallies inspections per monkey, indexed densely by
// MonkeyID. Counts only ever increase.
type InspectionCounter struct {
	counts []int64
}

// NewInspectionCounter returns a zeroed counter for n monkeys.
func NewInspectionCounter(n int) *InspectionCounter {
	return &InspectionCounter{counts: make([]int64, n)}
}

// Record counts one inspection by the given monkey.
func (c *InspectionCounter) Record(id MonkeyID) {
	c.counts[id]++
}

// Count returns the number of inspections recorded for one monkey.
func (c *InspectionCounter) Count(id MonkeyID) int64 {
	return c.counts[id]
}

// Total returns the number of inspections recorded across all monkeys.
func (c *InspectionCounter) Total() int64 {
	var total int64
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Top returns the two monkeys with the highest inspection counts. At least
// two monkeys must have inspected at least one item each; otherwise it
// fails with ErrInsufficientData. Ties resolve to the lower MonkeyID: the
// scan runs in ascending ID order and replaces a current leader only on a
// strictly greater count.
func (c *InspectionCounter) Top() (best, second MonkeyID, err error) {
	best, second = -1, -1
	for i, n := range c.counts {
		if n == 0 {
			continue
		}
		id := MonkeyID(i)
		switch {
		case best == -1 || n > c.counts[best]:
			second = best
			best = id
		case second == -1 || n > c.counts[second]:
			second = id
		}
	}
	if second == -1 {
		return 0, 0, ErrInsufficientData
	}
	return best, second, nil
}

// Business returns the product of the two highest inspection counts.
func (c *InspectionCounter) Business() (int64, error) {
	best, second, err := c.Top()
	if err != nil {
		return 0, err
	}
	product, ok := mulChecked(c.counts[best], c.counts[second])
	if !ok {
		return 0, fmt.Errorf("%w: inspection counts %d * %d", ErrOverflow, c.counts[best], c.counts[second])
	}
	return product, nil
}

// Print displays the per-monkey tallies and the final product at the end
// of a run.
func (c *InspectionCounter) Print() {
	fmt.Println("=== Inspection Counts ===")
	for i, n := range c.counts {
		fmt.Printf("Monkey %d : %d inspections\n", i, n)
	}
	if business, err := c.Business(); err == nil {
		fmt.Printf("Monkey business : %d\n", business)
	}
}
