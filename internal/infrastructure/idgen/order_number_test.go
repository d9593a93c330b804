package idgen

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberGenerator_Next(t *testing.T) {
	t.Run("matches expected format", func(t *testing.T) {
		g := NewOrderNumberGenerator()
		assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9a-f]{8}-\d{6}$`), g.Next())
	})

	t.Run("fresh generators do not reissue numbers", func(t *testing.T) {
		// A restart (or a second instance) starts the sequence over;
		// the per-process token keeps the numbers distinct anyway.
		a := NewOrderNumberGenerator()
		b := NewOrderNumberGenerator()
		assert.NotEqual(t, a.Next(), b.Next())
	})

	t.Run("unique under concurrency", func(t *testing.T) {
		g := NewOrderNumberGenerator()

		const workers = 8
		const perWorker = 200

		var mu sync.Mutex
		seen := make(map[string]bool, workers*perWorker)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					n := g.Next()
					mu.Lock()
					seen[n] = true
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}
