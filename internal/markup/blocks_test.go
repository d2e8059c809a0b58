package markup

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LineKind
	}{
		{
			name:     "Header level 1",
			input:    "# Title",
			expected: LineHeader,
		},
		{
			name:     "Header level 3",
			input:    "### Title",
			expected: LineHeader,
		},
		{
			name:     "Bullet item with dash",
			input:    "- item",
			expected: LineListItem,
		},
		{
			name:     "Bullet item with star",
			input:    "* item",
			expected: LineListItem,
		},
		{
			name:     "Numbered item",
			input:    "3. item",
			expected: LineListItem,
		},
		{
			name:     "Blank line",
			input:    "",
			expected: LineBlank,
		},
		{
			name:     "Whitespace only line",
			input:    "   ",
			expected: LineBlank,
		},
		{
			name:     "Plain paragraph",
			input:    "some text",
			expected: LineParagraph,
		},
		{
			name:     "Hash without space is a paragraph",
			input:    "#hashtag",
			expected: LineParagraph,
		},
		{
			name:     "Dash without space is a paragraph",
			input:    "-dash",
			expected: LineParagraph,
		},
		{
			name:     "Bold line is not a bullet",
			input:    "**item**",
			expected: LineParagraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyLine(tt.input)
			if result.Kind != tt.expected {
				t.Errorf("Expected kind %v, got %v", tt.expected, result.Kind)
			}
		})
	}
}

// Header classification wins over the list and paragraph rules for the
// same line.
func TestHeaderPrecedence(t *testing.T) {
	line := ClassifyLine("### Title")
	if line.Kind != LineHeader {
		t.Fatalf("Expected header, got %v", line.Kind)
	}
	if line.Level != 3 {
		t.Errorf("Expected level 3, got %d", line.Level)
	}

	result := EditHTML("### Title")
	expected := "<h3>Title</h3>"
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestHeaderLevelClamping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Level 1",
			input:    "# a",
			expected: "<h1>a</h1>",
		},
		{
			name:     "Level 2",
			input:    "## a",
			expected: "<h2>a</h2>",
		},
		{
			name:     "Level 4 clamps to 3",
			input:    "#### a",
			expected: "<h3>a</h3>",
		},
		{
			name:     "Level 6 clamps to 3",
			input:    "###### a",
			expected: "<h3>a</h3>",
		},
		{
			name:     "Seven hashes is literal text",
			input:    "####### a",
			expected: "<p>####### a</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EditHTML(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestEditBlockGrouping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Adjacent list items share one container",
			input:    "- a\n- b\n\nc",
			expected: "<ul><li>a</li><li>b</li></ul><p>c</p>",
		},
		{
			name:     "Blank line breaks a list run",
			input:    "- a\n\n- b",
			expected: "<ul><li>a</li></ul><ul><li>b</li></ul>",
		},
		{
			name:     "Numbered items become an ordered list",
			input:    "1. a\n2. b",
			expected: "<ol><li>a</li><li>b</li></ol>",
		},
		{
			name:     "List kind change breaks the run",
			input:    "- a\n1. b",
			expected: "<ul><li>a</li></ul><ol><li>b</li></ol>",
		},
		{
			name:     "Single newline is a line break",
			input:    "line one\nline two",
			expected: "<p>line one<br>line two</p>",
		},
		{
			name:     "Blank line is a paragraph boundary",
			input:    "para one\n\npara two",
			expected: "<p>para one</p><p>para two</p>",
		},
		{
			name:     "Inline-only text is wrapped in one paragraph",
			input:    "**bold** only",
			expected: "<p><strong>bold</strong> only</p>",
		},
		{
			name:     "Header text keeps inline formatting",
			input:    "# A **bold** title",
			expected: "<h1>A <strong>bold</strong> title</h1>",
		},
		{
			name:     "Empty document",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EditHTML(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestPreviewBlockGrouping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Blank line becomes a spacer",
			input:    "a\n\nb",
			expected: `<p class="md-p">a</p><div class="md-spacer"></div><p class="md-p">b</p>`,
		},
		{
			name:     "Each line is its own paragraph",
			input:    "a\nb",
			expected: `<p class="md-p">a</p><p class="md-p">b</p>`,
		},
		{
			name:     "Header has no paragraph wrapper",
			input:    "## Title",
			expected: `<h2 class="md-h2">Title</h2>`,
		},
		{
			name:     "List items are styled",
			input:    "- a\n- b",
			expected: `<ul class="md-list"><li class="md-li">a</li><li class="md-li">b</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PreviewHTML(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
