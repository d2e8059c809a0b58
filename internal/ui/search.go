package ui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// SearchState holds the state for find-in-document
type SearchState struct {
	query         string
	cursorPos     int
	caseSensitive bool
	minScore      int
}

// Score threshold constants (based on raw fzf scores)
const (
	ScoreThresholdStrict     = 70 // Only high quality matches
	ScoreThresholdNormal     = 50 // Balanced (default)
	ScoreThresholdPermissive = 30 // Include marginal matches
	ScoreThresholdNone       = 0  // Accept all matches
)

// NewSearchState creates a new search state
func NewSearchState() *SearchState {
	return &SearchState{
		caseSensitive: false,
		minScore:      ScoreThresholdNormal,
	}
}

// Query returns the current query text
func (s *SearchState) Query() string {
	return s.query
}

// CursorPos returns the caret position within the query
func (s *SearchState) CursorPos() int {
	return s.cursorPos
}

// SetQuery sets the search query and resets cursor
func (s *SearchState) SetQuery(query string) {
	s.query = query
	s.cursorPos = len(query)
}

// Clear clears the search state
func (s *SearchState) Clear() {
	s.query = ""
	s.cursorPos = 0
}

// InsertChar inserts a character at the cursor position
func (s *SearchState) InsertChar(ch rune) {
	if s.cursorPos >= len(s.query) {
		s.query += string(ch)
	} else {
		s.query = s.query[:s.cursorPos] + string(ch) + s.query[s.cursorPos:]
	}
	s.cursorPos++
}

// DeleteChar deletes the character before the cursor (backspace)
func (s *SearchState) DeleteChar() {
	if s.cursorPos > 0 {
		s.query = s.query[:s.cursorPos-1] + s.query[s.cursorPos:]
		s.cursorPos--
	}
}

// MoveCursorLeft moves cursor left
func (s *SearchState) MoveCursorLeft() {
	if s.cursorPos > 0 {
		s.cursorPos--
	}
}

// MoveCursorRight moves cursor right
func (s *SearchState) MoveCursorRight() {
	if s.cursorPos < len(s.query) {
		s.cursorPos++
	}
}

// MatchResult contains match score and positions
type MatchResult struct {
	Score     int
	Positions []int
}

// LineMatch is one matching document line
type LineMatch struct {
	Line   int // document line number
	Result MatchResult
}

// matchWithPositions calculates match score and positions for highlighting
func (s *SearchState) matchWithPositions(text string) MatchResult {
	if s.query == "" {
		return MatchResult{Score: 0, Positions: nil}
	}

	// Initialize fzf algo if needed
	algo.Init("default")

	searchText := text
	pattern := s.query
	if !s.caseSensitive {
		searchText = strings.ToLower(text)
		pattern = strings.ToLower(s.query)
	}

	chars := util.ToChars([]byte(searchText))
	patternRunes := []rune(pattern)

	slab := util.MakeSlab(16384, 1024)
	result, positions := algo.FuzzyMatchV2(s.caseSensitive, false, true, &chars, patternRunes, true, slab)

	if result.Start < 0 {
		return MatchResult{Score: -1, Positions: nil}
	}

	var matchPositions []int
	if positions != nil {
		// fzf returns indices into the Chars array, which already
		// correspond to rune positions
		matchPositions = make([]int, len(*positions))
		copy(matchPositions, *positions)
	}

	return MatchResult{Score: result.Score, Positions: matchPositions}
}

// MatchLine checks whether one document line matches the query
func (s *SearchState) MatchLine(text string) (bool, MatchResult) {
	if s.query == "" {
		return false, MatchResult{}
	}
	result := s.matchWithPositions(text)
	if result.Score < 0 {
		return false, result
	}
	if s.minScore > 0 && result.Score < s.minScore {
		return false, result
	}
	return true, result
}

// MatchDocument scores every line of the document and returns the matching
// ones in line order, plus a per-line highlight map for the edit pane.
func (s *SearchState) MatchDocument(text string) ([]LineMatch, map[int][]int) {
	if s.query == "" {
		return nil, nil
	}

	var matches []LineMatch
	highlight := make(map[int][]int)

	for i, line := range strings.Split(text, "\n") {
		ok, result := s.MatchLine(line)
		if !ok {
			continue
		}
		matches = append(matches, LineMatch{Line: i, Result: result})
		highlight[i] = result.Positions
	}

	return matches, highlight
}
