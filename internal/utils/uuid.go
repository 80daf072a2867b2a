package utils

import "github.com/google/uuid"

// MessageIDGenerator produces urn:uuid identifiers for the WS-Addressing
// MessageID header.
type MessageIDGenerator struct {
	newUUID func() (uuid.UUID, error)
}

func NewMessageIDGenerator() *MessageIDGenerator {
	return &MessageIDGenerator{newUUID: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7 in URN form. A random v4 is used
// when the clock source fails.
func (g *MessageIDGenerator) Generate() string {
	id, err := g.newUUID()
	if err != nil {
		id = uuid.New()
	}

	return id.URN()
}
