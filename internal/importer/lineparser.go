package importer

import (
	"regexp"
	"strings"
)

// priceRe matches a $ followed by digits with an optional decimal
// fraction. Only the first match on a line counts.
var priceRe = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)

// lineKind is the typed classification of one OCR line.
type lineKind int

const (
	lineNoise lineKind = iota
	lineCategory
	lineItem
)

// parserState tracks whether a category header has been seen yet.
type parserState int

const (
	seekingCategory parserState = iota
	inCategory
)

// classifyLine applies the two classification rules in fixed order:
//   - item: the line contains the currency pattern
//   - category header: the line is already all-caps and carries no $
//
// A category-shaped line containing a stray $ matches neither rule and
// is classified as noise. That is a deliberate rule, not an accident.
func classifyLine(line string) lineKind {
	if priceRe.MatchString(line) {
		return lineItem
	}
	if strings.ToUpper(line) == line && !strings.Contains(line, "$") {
		return lineCategory
	}
	return lineNoise
}

// ParseMenuText segments raw OCR text into RawRows in a single pass
// with no backtracking. Category headers set the context for the items
// that follow them and are not emitted as rows; everything that is
// neither a header nor an item (running headers, addresses, phone
// numbers) is discarded.
func ParseMenuText(text string) []RawRow {
	state := seekingCategory
	category := ""

	var rows []RawRow
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch classifyLine(line) {
		case lineCategory:
			category = line
			state = inCategory

		case lineItem:
			match := priceRe.FindStringSubmatchIndex(line)
			name := strings.TrimSpace(line[:match[0]])
			if name == "" {
				// a line starting with the price has no usable name
				continue
			}

			row := RawRow{
				Name:  name,
				Price: line[match[2]:match[3]],
			}
			if state == inCategory {
				row.Category = category
			}
			rows = append(rows, row)
		}
	}

	return rows
}
