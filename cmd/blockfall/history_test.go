package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall"
)

func TestGameTitle(t *testing.T) {
	title, err := gameTitle(blockfall.ID)
	if err != nil {
		t.Fatalf("gameTitle(%q) failed: %v", blockfall.ID, err)
	}
	if title != "Blockfall" {
		t.Errorf("gameTitle(%q) = %q, expected %q", blockfall.ID, title, "Blockfall")
	}
}

func TestGameTitleUnknown(t *testing.T) {
	_, err := gameTitle("pong")
	if err == nil {
		t.Fatal("gameTitle(\"pong\") should fail")
	}
	if !strings.Contains(err.Error(), blockfall.ID) {
		t.Errorf("error %q should list the registered games", err)
	}
}
