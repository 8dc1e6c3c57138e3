package parse

import (
	"regexp"
	"strings"
)

var (
	// A markdown code fence, optionally carrying a language tag, plus the
	// whitespace that follows it on the same line.
	openFenceRe = regexp.MustCompile("```[a-zA-Z]*[ \t]*\r?\n?")

	// A closing fence at the very end of the text.
	closeFenceRe = regexp.MustCompile("\\s*```\\s*$")

	// Invisible characters that models smuggle into output: byte-order mark,
	// zero-width space, null, and the Unicode line separator.
	invisibleReplacer = strings.NewReplacer(
		"\uFEFF", "",
		"\u200B", "",
		"\x00", "",
		"\u2028", "",
	)
)

// Normalize performs character-level cleanup of raw model output: collapsing
// double-encoded escape sequences, stripping a single pair of markdown code
// fences, and removing invisible characters. Each step is idempotent and only
// removes packaging artifacts; no visible content is reordered or added.
//
// Returns an EmptyInputError when the input is empty or whitespace-only.
func Normalize(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", &EmptyInputError{}
	}

	// Step 1: collapse double-encoded text. A literal backslash-n sequence
	// means the JSON was serialized twice; fold the common escapes back to
	// their literal forms.
	if strings.Contains(cleaned, `\n`) {
		cleaned = strings.ReplaceAll(cleaned, `\n`, "\n")
		cleaned = strings.ReplaceAll(cleaned, `\"`, `"`)
		cleaned = strings.ReplaceAll(cleaned, `\\`, `\`)
	}

	// Step 2: strip at most one leading and one trailing code fence.
	if loc := openFenceRe.FindStringIndex(cleaned); loc != nil {
		cleaned = cleaned[:loc[0]] + cleaned[loc[1]:]
	}
	cleaned = closeFenceRe.ReplaceAllString(cleaned, "")

	// Step 3: remove invisible characters wherever they appear.
	cleaned = invisibleReplacer.Replace(cleaned)

	return strings.TrimSpace(cleaned), nil
}
