package main

import "regexp"

// https://regex101.com/r/N5SLnV/2
var cellIdentifierRegex = regexp.MustCompile(`^[A-Z]+[1-9][0-9]*$`)

var cellReferenceRegex = regexp.MustCompile(`\b[A-Z]+[1-9][0-9]*\b`)

func IsCellIdentifier(s string) bool {
	return cellIdentifierRegex.MatchString(s)
}

// FindCellIdentifiers returns every distinct cell identifier mentioned in expression, in order of first appearance.
func FindCellIdentifiers(expression string) []string {
	matches := cellReferenceRegex.FindAllString(expression, -1)
	cellIds := make([]string, 0, len(matches))

	seen := make(map[string]bool, len(matches))
	for _, cellId := range matches {
		if !seen[cellId] {
			seen[cellId] = true
			cellIds = append(cellIds, cellId)
		}
	}

	return cellIds
}
