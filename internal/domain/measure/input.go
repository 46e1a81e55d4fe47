package measure

import "strings"

// FormatInput sanitizes free-text numeric entry for a quantity field.
// Whole-count items are truncated at the first decimal point; continuous
// items keep a single decimal point, with any extra points collapsed into
// the fractional part ("1.2.5" becomes "1.25").
func (c *Canonicalizer) FormatInput(raw, itemName, unit string) string {
	if c.isWholeCount(itemName, unit) {
		if idx := strings.IndexByte(raw, '.'); idx >= 0 {
			raw = raw[:idx]
		}
		return keepDigits(raw)
	}
	return keepDecimal(raw)
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepDecimal(s string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	out := b.String()
	// A bare trailing or leading point parses, but tidy the edges anyway.
	if out == "." {
		return ""
	}
	if strings.HasPrefix(out, ".") {
		out = "0" + out
	}
	return strings.TrimSuffix(out, ".")
}
