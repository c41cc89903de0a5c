package output

import "testing"

func TestRewriteLanguageCode(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		lang     string
		expected string
	}{
		{
			name:     "replaces code before extension",
			filename: "strings_en.json",
			lang:     "de",
			expected: "strings_de.json",
		},
		{
			name:     "replaces three letter code",
			filename: "manual_eng.txt",
			lang:     "fr",
			expected: "manual_fr.txt",
		},
		{
			name:     "replaces code in the middle of the stem",
			filename: "app_en_strings.json",
			lang:     "bg",
			expected: "app_bg_strings.json",
		},
		{
			name:     "only the first code is replaced",
			filename: "app_en_de.json",
			lang:     "fr",
			expected: "app_fr_de.json",
		},
		{
			name:     "appends when no code present",
			filename: "notes.txt",
			lang:     "de",
			expected: "notes_de.txt",
		},
		{
			name:     "appends without extension",
			filename: "README",
			lang:     "es",
			expected: "README_es",
		},
		{
			name:     "four letter suffix is not a code",
			filename: "notes_blue.txt",
			lang:     "de",
			expected: "notes_blue_de.txt",
		},
		{
			name:     "single letter suffix is not a code",
			filename: "plan_b.txt",
			lang:     "de",
			expected: "plan_b_de.txt",
		},
		{
			name:     "uppercase code is recognized",
			filename: "strings_EN.json",
			lang:     "de",
			expected: "strings_de.json",
		},
		{
			name:     "code followed by digits is not replaced",
			filename: "log_en2.txt",
			lang:     "de",
			expected: "log_en2_de.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteLanguageCode(tt.filename, tt.lang)
			if got != tt.expected {
				t.Errorf("RewriteLanguageCode(%q, %q) = %q, want %q",
					tt.filename, tt.lang, got, tt.expected)
			}
		})
	}
}
