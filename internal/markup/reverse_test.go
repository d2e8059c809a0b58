package markup

import "testing"

func TestHTMLToMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Strong",
			input:    "<strong>b</strong>",
			expected: "**b**",
		},
		{
			name:     "Em",
			input:    "<em>i</em>",
			expected: "*i*",
		},
		{
			name:     "Code",
			input:    "<code>c</code>",
			expected: "`c`",
		},
		{
			name:     "Anchor",
			input:    `<a href="http://x">t</a>`,
			expected: "[t](http://x)",
		},
		{
			name:     "Anchor with extra attributes",
			input:    `<a href="http://x" target="_blank" rel="noopener noreferrer">t</a>`,
			expected: "[t](http://x)",
		},
		{
			name:     "Headers",
			input:    "<h1>a</h1><h2>b</h2><h3>c</h3>",
			expected: "# a\n## b\n### c",
		},
		{
			name:     "Unordered list",
			input:    "<ul><li>a</li><li>b</li></ul>",
			expected: "- a\n- b",
		},
		{
			name:     "Ordered list",
			input:    "<ol><li>a</li><li>b</li></ol>",
			expected: "1. a\n2. b",
		},
		{
			name:     "Line break",
			input:    "a<br>b",
			expected: "a\nb",
		},
		{
			name:     "Paragraph boundary",
			input:    "<p>a</p><p>b</p>",
			expected: "a\n\nb",
		},
		{
			name:     "Residual paragraph tags are stripped",
			input:    "<p>only</p>",
			expected: "only",
		},
		{
			name:     "Legacy b and i tags",
			input:    "<b>x</b><i>y</i>",
			expected: "**x***y*",
		},
		{
			name:     "Unknown tags are dropped, text kept",
			input:    `<span class="md-p">x</span>`,
			expected: "x",
		},
		{
			name:     "Entities are decoded",
			input:    "<p>a &lt;b&gt; &amp; c</p>",
			expected: "a <b> & c",
		},
		{
			name:     "Plain text passes through",
			input:    "no tags here",
			expected: "no tags here",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HTMLToMarkup(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestHTMLToMarkupNeverPanicsOnJunk(t *testing.T) {
	inputs := []string{
		"<a>no href</a>",
		"</strong></em></a>",
		"<ul><p>mixed</p></ul>",
		"<h4>too deep</h4>",
		"<<<>>>",
	}
	for _, input := range inputs {
		_ = HTMLToMarkup(input)
	}
}
