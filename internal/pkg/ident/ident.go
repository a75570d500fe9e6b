// Package ident provides the order id generation capability. Record ids must
// not collide within a day partition, so production uses UUIDv7: 48 bits of
// millisecond timestamp in front of 74 random bits, time-ordered and
// collision-resistant well past a single day's order volume.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// SequenceGenerator yields deterministic ids for tests.
type SequenceGenerator struct {
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%04d", g.prefix, g.next), nil
}
