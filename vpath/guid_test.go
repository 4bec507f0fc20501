package vpath

import "testing"

func TestGUID_Deterministic(t *testing.T) {
	p := Normalize("textures/player.png")
	a := GUID(p)
	b := GUID(p)
	if a != b {
		t.Fatalf("GUID not deterministic: %q vs %q", a, b)
	}
	if len(a) != GUIDSize*2 {
		t.Fatalf("GUID length = %d, want %d hex chars", len(a), GUIDSize*2)
	}
}

func TestGUID_NormalizedSpellingsAgree(t *testing.T) {
	spellings := []string{
		"textures/player.png",
		"./textures/player.png",
		"textures/./player.png",
		"textures/extra/../player.png",
		`textures\player.png`,
	}
	want := GUID(Normalize(spellings[0]))
	for _, s := range spellings[1:] {
		if got := GUID(Normalize(s)); got != want {
			t.Errorf("GUID(Normalize(%q)) = %q, want %q", s, got, want)
		}
	}
}

func TestGUID_DistinctPaths(t *testing.T) {
	if GUID("a.png") == GUID("b.png") {
		t.Fatal("distinct paths produced the same identity")
	}
}
