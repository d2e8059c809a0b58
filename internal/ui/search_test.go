package ui

import (
	"testing"
)

func TestSearchQueryEditing(t *testing.T) {
	s := NewSearchState()

	s.InsertChar('b')
	s.InsertChar('d')
	s.MoveCursorLeft()
	s.InsertChar('o')
	if s.Query() != "bod" {
		t.Errorf("Expected %q, got %q", "bod", s.Query())
	}

	s.MoveCursorRight()
	s.DeleteChar()
	if s.Query() != "bo" {
		t.Errorf("Expected %q, got %q", "bo", s.Query())
	}

	s.Clear()
	if s.Query() != "" || s.CursorPos() != 0 {
		t.Errorf("Expected cleared state, got %q at %d", s.Query(), s.CursorPos())
	}
}

func TestMatchLine(t *testing.T) {
	s := NewSearchState()
	s.SetQuery("bold")

	ok, result := s.MatchLine("some bold text")
	if !ok {
		t.Fatal("Expected exact substring to match")
	}
	if len(result.Positions) == 0 {
		t.Error("Expected highlight positions for a match")
	}

	ok, _ = s.MatchLine("nothing here")
	if ok {
		t.Error("Expected no match for unrelated text")
	}
}

func TestMatchLineCaseInsensitive(t *testing.T) {
	s := NewSearchState()
	s.SetQuery("TITLE")

	ok, _ := s.MatchLine("# my title here")
	if !ok {
		t.Error("Expected case-insensitive match")
	}
}

func TestMatchDocument(t *testing.T) {
	s := NewSearchState()
	s.SetQuery("item")

	doc := "# Heading\n- first item\nplain line\n- second item"
	matches, highlight := s.MatchDocument(doc)

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matching lines, got %d", len(matches))
	}
	if matches[0].Line != 1 || matches[1].Line != 3 {
		t.Errorf("Expected matches on lines 1 and 3, got %d and %d", matches[0].Line, matches[1].Line)
	}
	for _, m := range matches {
		if _, ok := highlight[m.Line]; !ok {
			t.Errorf("Expected highlight entry for line %d", m.Line)
		}
	}
}

func TestMatchDocumentEmptyQuery(t *testing.T) {
	s := NewSearchState()

	matches, highlight := s.MatchDocument("anything\nat all")
	if matches != nil || highlight != nil {
		t.Error("Expected no results for empty query")
	}
}
