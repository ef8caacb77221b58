package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces synthetic identifiers for repeatable form rows and
// submissions. It is injected so tests can use a deterministic sequence.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production IDGenerator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequentialIDGenerator yields prefix-001, prefix-002, ... for tests.
type SequentialIDGenerator struct {
	Prefix string
	next   int
}

func (g *SequentialIDGenerator) NewID() string {
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%03d", prefix, g.next)
}
