package uuidgen

import (
	"github.com/google/uuid"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

// Generator produces random (v4) UUID strings for document ids and
// registration codes.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
