package output

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// langCodePattern matches an embedded language code in a filename stem:
// an underscore followed by 2-3 letters, which must be followed by
// another underscore or the end of the stem. The trailing boundary is
// captured so it can be restored after the replacement.
var langCodePattern = regexp.MustCompile(`_[a-zA-Z]{2,3}(_|$)`)

// RewriteLanguageCode replaces the first embedded language code in a
// filename with the target language code. If the filename carries no
// recognizable code, _{targetLang} is appended before the extension.
//
//	strings_en.json  -> strings_de.json  (targetLang "de")
//	notes.txt        -> notes_de.txt
func RewriteLanguageCode(filename, targetLang string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	loc := langCodePattern.FindStringSubmatchIndex(stem)
	if loc == nil {
		return fmt.Sprintf("%s_%s%s", stem, targetLang, ext)
	}

	// loc[0] is the match start, loc[2]:loc[3] is the boundary group
	// ("_" or empty at end of stem).
	return stem[:loc[0]] + "_" + targetLang + stem[loc[2]:] + ext
}
