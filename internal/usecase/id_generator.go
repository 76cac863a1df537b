package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"flight-tracker-service/internal/domain/entity"
)

// SequentialIDGenerator issues ids like F004. The sequence never goes
// backwards: it continues from the highest number it has issued or seen in
// the collection, so removed ids are not reissued while the process runs.
type SequentialIDGenerator struct {
	mu        sync.Mutex
	prefix    string
	width     int
	highWater int
}

// NewSequentialIDGenerator creates a generator for ids of the form prefix + zero-padded number
func NewSequentialIDGenerator(prefix string, width int) *SequentialIDGenerator {
	return &SequentialIDGenerator{
		prefix: prefix,
		width:  width,
	}
}

// Next returns a fresh id that collides with nothing in existing
func (g *SequentialIDGenerator) Next(existing []*entity.Flight) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, f := range existing {
		if n, ok := g.sequence(f.ID); ok && n > g.highWater {
			g.highWater = n
		}
	}

	g.highWater++
	return fmt.Sprintf("%s%0*d", g.prefix, g.width, g.highWater)
}

func (g *SequentialIDGenerator) sequence(id string) (int, bool) {
	if !strings.HasPrefix(id, g.prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, g.prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
