package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestMessageIDGenerator_Generate(t *testing.T) {
	g := NewMessageIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if !strings.HasPrefix(first, "urn:uuid:") {
		t.Fatalf("expected urn:uuid prefix, got %q", first)
	}
	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if first == second {
		t.Error("expected distinct identifiers")
	}
}

func TestMessageIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &MessageIDGenerator{newUUID: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	parsed, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected version 4, got %d", parsed.Version())
	}
}
