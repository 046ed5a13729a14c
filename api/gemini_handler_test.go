package api

import (
	"strings"
	"testing"

	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
)

func TestSafeParseOutfitsDirectArray(t *testing.T) {
	out := SafeParseOutfits(`[{"id":"1","title":"Monochrome layers","score":92}]`)
	if len(out) != 1 || out[0].Title != "Monochrome layers" || out[0].Score != 92 {
		t.Fatalf("unexpected parse result %v", out)
	}
}

func TestSafeParseOutfitsStripsCodeFences(t *testing.T) {
	text := "```json\n[{\"id\":\"1\",\"title\":\"Look\"}]\n```"
	out := SafeParseOutfits(text)
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("fenced array must parse, got %v", out)
	}
}

func TestSafeParseOutfitsExtractsEmbeddedArray(t *testing.T) {
	text := "Here are your outfits:\n[{\"id\":\"1\",\"title\":\"Look\"},{\"id\":\"2\",\"title\":\"Other\"}]\nEnjoy!"
	out := SafeParseOutfits(text)
	if len(out) != 2 || out[1].ID != "2" {
		t.Fatalf("embedded array must parse, got %v", out)
	}
}

func TestSafeParseOutfitsGarbage(t *testing.T) {
	for _, text := range []string{"", "   ", "no json here", "[not valid json]", "{\"id\":\"1\"}"} {
		if out := SafeParseOutfits(text); out != nil {
			t.Fatalf("%q must yield nil, got %v", text, out)
		}
	}
}

func TestBuildInstructionIncludesPaletteAndPrompt(t *testing.T) {
	instr := buildInstruction(stylist.SuggestFilters{
		Prompt:   "User request: weekend brunch",
		Palette:  []string{"#AABBCC", "#112233"},
		Controls: &stylist.Controls{CasualFormal: 30, PlayfulPro: 70},
	})
	if !strings.Contains(instr, "Preferred colors: #AABBCC, #112233") {
		t.Fatalf("palette missing from instruction:\n%s", instr)
	}
	if !strings.Contains(instr, "User request: weekend brunch") {
		t.Fatalf("compiled prompt missing from instruction:\n%s", instr)
	}
	if !strings.Contains(instr, "Formality (0 casual → 100 formal): 30") {
		t.Fatalf("controls missing from instruction:\n%s", instr)
	}
	if !strings.Contains(instr, "exactly 6 objects") {
		t.Fatalf("output contract missing from instruction:\n%s", instr)
	}
}

func TestBuildInstructionDefaultsPalette(t *testing.T) {
	instr := buildInstruction(stylist.SuggestFilters{Prompt: "User request: anything"})
	if !strings.Contains(instr, "Preferred colors: any") {
		t.Fatalf("empty palette must render as \"any\":\n%s", instr)
	}
}
