package repositories

import (
	"github.com/shopspring/decimal"
)

// sumSubtree adds the amount of root and every transitive descendant. The walk uses
// an explicit stack so chain depth is bounded by memory, not by the goroutine stack.
// Amounts are accumulated as decimals, which makes the result independent of the
// visiting order. The caller must hold at least the read lock.
func (r *TransactionRepository) sumSubtree(root int64) decimal.Decimal {
	sum := decimal.Zero
	stack := []int64{root}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec, ok := r.records[id]
		if !ok {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(rec.Amount))
		stack = append(stack, r.children.get(id)...)
	}

	return sum
}
