// Package idgen provides task ID generation.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/tasklist/internal/domain"
)

// Ensure Generator implements domain.IDGenerator.
var _ domain.IDGenerator = (*Generator)(nil)

// Generator produces random UUIDv4 IDs. Random leading bits keep short
// id prefixes distinct, so the CLI can address tasks by prefix.
type Generator struct {
	fallback atomic.Uint64
}

// New creates a new Generator.
func New() *Generator {
	return &Generator{}
}

// NewID returns a UUIDv4 string.
// If the random source fails, it falls back to a base-36 timestamp with a
// process-wide counter suffix, which is still unique within the process.
func (g *Generator) NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		n := g.fallback.Add(1)
		return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + strconv.FormatUint(n, 36)
	}
	return id.String()
}
