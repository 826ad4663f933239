package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchModel_FindsCardWithoutDiacritics(t *testing.T) {
	m := NewSearchModel()
	m.SetRegistry(testDeck(t))

	m.Update(runeMsg("doc quyen so"))

	results := m.Results()
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].CardID != "a2" {
		t.Errorf("best match = %s, want a2", results[0].CardID)
	}

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a select command")
	}
	sel, ok := cmd().(SearchSelectMsg)
	if !ok || sel.CardID != "a2" {
		t.Errorf("got %#v, want SearchSelectMsg{a2}", cmd())
	}
}

func TestSearchModel_EscapeCancels(t *testing.T) {
	m := NewSearchModel()
	m.SetRegistry(testDeck(t))

	_, cmd := m.Update(keyMsg(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToPresentationMsg); !ok {
		t.Errorf("got %#v, want SwitchToPresentationMsg", cmd())
	}
}

func TestSearchModel_EnterWithoutResults(t *testing.T) {
	m := NewSearchModel()
	m.SetRegistry(testDeck(t))

	m.Update(runeMsg("zzzz"))
	if len(m.Results()) != 0 {
		t.Fatalf("unexpected results %v", m.Results())
	}
	if _, cmd := m.Update(keyMsg(tea.KeyEnter)); cmd != nil {
		t.Error("enter without results should do nothing")
	}

	m.Reset()
	if len(m.Results()) != 0 {
		t.Error("Reset should clear results")
	}
}
