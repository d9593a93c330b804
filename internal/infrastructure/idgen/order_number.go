package idgen

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/order"
)

// OrderNumberGenerator issues order numbers of the form
// ORD-20250131-1f3a9c2e-000042: a date component, a per-process token,
// and a monotonic sequence. The token keeps numbers from colliding
// across restarts and concurrent instances; the sequence never repeats
// within a process.
type OrderNumberGenerator struct {
	mu   sync.Mutex
	seq  uint64
	node string
	now  func() time.Time
}

// NewOrderNumberGenerator creates a generator using the wall clock
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{
		node: uuid.NewString()[:8],
		now:  time.Now,
	}
}

var _ order.OrderNumberGenerator = (*OrderNumberGenerator)(nil)

// Next returns the next order number
func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	ts := g.now().UTC()
	g.mu.Unlock()

	return fmt.Sprintf("ORD-%s-%s-%06d", ts.Format("20060102"), g.node, seq)
}
