package textfit

import "strings"

// ellipsis marks a truncated final line.
const ellipsis = "..."

// SmartWordWrap wraps text into at most maxLines lines of roughly
// maxCharsPerLine characters.
//
// Whitespace is normalized first. Text that already fits on one line is
// returned verbatim. A single over-long word is split at a hyphen past its
// midpoint when one exists, otherwise hard-cut at the character limit.
// Multi-word text is balanced toward equal line lengths; if the line budget
// runs out before the words do, the remainder is packed onto the final line
// and truncated with an ellipsis when it overflows.
//
// Degenerate limits (maxCharsPerLine or maxLines below 1) return the
// normalized text as a single line rather than failing.
func SmartWordWrap(text string, maxCharsPerLine, maxLines int) []string {
	words := strings.Fields(text)
	normalized := strings.Join(words, " ")
	if normalized == "" {
		return nil
	}
	if maxCharsPerLine < 1 || maxLines < 1 {
		return []string{normalized}
	}
	if len(normalized) <= maxCharsPerLine {
		return []string{normalized}
	}

	if len(words) == 1 {
		return breakLongWord(words[0], maxCharsPerLine, maxLines)
	}

	lines := balancedWrap(words, maxCharsPerLine, maxLines, len(normalized))
	if len(lines) == 0 {
		lines = greedyWrap(words, maxCharsPerLine, maxLines)
	}
	return lines
}

// balancedWrap distributes words across lines aiming for even lengths.
// The target length is the total character count divided by the line budget,
// plus a little slack so lines prefer finishing a word over breaking early.
func balancedWrap(words []string, maxChars, maxLines, totalChars int) []string {
	target := (totalChars+maxLines-1)/maxLines + 5
	if target > maxChars {
		target = maxChars
	}

	var lines []string
	var cur string
	for _, word := range words {
		switch {
		case cur == "":
			cur = word
		case len(lines) >= maxLines-1:
			// Out of line budget: everything remaining lands here.
			cur += " " + word
		case len(cur)+1+len(word) > target:
			lines = append(lines, cur)
			cur = word
		default:
			cur += " " + word
		}
	}
	if cur != "" {
		if len(lines) >= maxLines-1 && len(cur) > maxChars {
			cur = truncateWithEllipsis(cur, maxChars)
		}
		lines = append(lines, cur)
	}
	return lines
}

// truncateWithEllipsis shortens an overflowing line at a word boundary and
// appends an ellipsis. The cut lands on the last space that leaves room for
// the ellipsis, so the result can run a couple of characters over or under
// the budget on short tails.
func truncateWithEllipsis(line string, maxChars int) string {
	limit := maxChars - 1
	if limit > len(line) {
		limit = len(line)
	}
	cut := strings.LastIndexByte(line[:limit], ' ')
	if cut <= 0 {
		cut = maxChars - len(ellipsis)
		if cut < 1 {
			cut = 1
		}
	}
	return strings.TrimRight(line[:cut], " ") + ellipsis
}

// breakLongWord splits a single word that exceeds the line limit. A hyphen
// past the word's midpoint is the preferred break; otherwise the word is cut
// at the character limit. Once only one line of budget remains, whatever is
// left is truncated with an ellipsis if it still overflows.
func breakLongWord(word string, maxChars, maxLines int) []string {
	var lines []string
	rest := word
	for len(rest) > maxChars && len(lines) < maxLines-1 {
		cut := maxChars
		mid := len(rest) / 2
		if h := strings.IndexByte(rest[mid:], '-'); h >= 0 && mid+h+1 <= maxChars {
			cut = mid + h + 1
		}
		lines = append(lines, rest[:cut])
		rest = rest[cut:]
	}
	if len(rest) > maxChars {
		keep := maxChars - len(ellipsis)
		if keep < 1 {
			keep = 1
		}
		rest = rest[:keep] + ellipsis
	}
	if rest != "" {
		lines = append(lines, rest)
	}
	return lines
}

// greedyWrap is the fallback wrapper: fill each line up to maxChars, no
// balancing. Lines beyond the budget are dropped with an ellipsis on the
// last kept line.
func greedyWrap(words []string, maxChars, maxLines int) []string {
	var lines []string
	var cur string
	for _, word := range words {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) > maxChars:
			lines = append(lines, cur)
			cur = word
		default:
			cur += " " + word
		}
		if len(lines) == maxLines {
			lines[maxLines-1] = truncateWithEllipsis(lines[maxLines-1]+" "+cur, maxChars)
			return lines
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
