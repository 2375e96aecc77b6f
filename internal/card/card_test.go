package card

import (
	"bytes"
	"testing"

	"github.com/akyairhashvil/profilecard/internal/config"
)

func TestAssembleKeepsSlots(t *testing.T) {
	p := config.Default()
	c := Assemble(p, []string{"Dune", "", "Track - Band"})

	if len(c.Entries) != len(p.Feeds) {
		t.Fatalf("expected %d entries, got %d", len(p.Feeds), len(c.Entries))
	}
	want := []string{"Dune", "Video games!", "Track - Band", "Something interesting"}
	for i, e := range c.Entries {
		if e.Value != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], e.Value)
		}
		if e.Label != p.Feeds[i].Label {
			t.Fatalf("entry %d: expected label %q, got %q", i, p.Feeds[i].Label, e.Label)
		}
	}
	if !c.Entries[3].Wrap {
		t.Fatalf("expected the posting feed to wrap")
	}
	if c.LineLength != config.LineLength {
		t.Fatalf("expected line length %d, got %d", config.LineLength, c.LineLength)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("nope").Name; got != "Default" {
		t.Fatalf("expected default theme, got %q", got)
	}
	if got := ThemeByName("dracula").Name; got != "Dracula" {
		t.Fatalf("expected dracula theme, got %q", got)
	}
}

func TestWritePDF(t *testing.T) {
	c := Assemble(config.Default(), []string{"A Book", "A Game", "A Song", "A post with an emoji 🎉 in it"})
	var buf bytes.Buffer
	if err := WritePDF(&buf, c, ThemeByName("default")); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestLatin1(t *testing.T) {
	if got := latin1("🏢 Café…"); got != "Café..." {
		t.Fatalf("expected emoji dropped and ellipsis expanded, got %q", got)
	}
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#654FF0")
	if r != 0x65 || g != 0x4F || b != 0xF0 {
		t.Fatalf("unexpected rgb %d,%d,%d", r, g, b)
	}
	if r, g, b := hexRGB("240"); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black for non-hex colors")
	}
}
