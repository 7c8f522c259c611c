// Package taxonomy defines the fixed two-level folder structure documents
// are filed under.
package taxonomy

import (
	"fmt"
	"strings"
)

// Category is a top-level folder name.
type Category string

const (
	ClientCommunication Category = "Client Communication"
	CourtDocuments      Category = "Court Documents"
	OpposingParty       Category = "Opposing Party Communication"
	InternalNotes       Category = "Internal Notes/Memos"
)

// Categories returns the top-level folders in display order.
func Categories() []Category {
	return []Category{
		ClientCommunication,
		CourtDocuments,
		OpposingParty,
		InternalNotes,
	}
}

// SubCategories returns the allowed second-level folders for a category,
// in display order. Unknown categories yield nil.
func SubCategories(c Category) []string {
	switch c {
	case ClientCommunication:
		return []string{"Emails", "Letters", "Meeting Notes"}
	case CourtDocuments:
		return []string{"Pleadings", "Motions", "Orders", "Judgments"}
	case OpposingParty:
		return []string{"Correspondence", "Negotiations", "Settlement Offers"}
	case InternalNotes:
		return []string{"Case Strategy", "Research", "To-Do Lists"}
	default:
		return nil
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Matching ignores case and surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	name := strings.TrimSpace(raw)
	for _, candidate := range Categories() {
		if strings.EqualFold(string(candidate), name) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("taxonomy: unknown category %q", raw)
}

// MustCategory parses the input and panics on error. Intended for tests/config.
func MustCategory(raw string) Category {
	c, err := ParseCategory(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that category and subCategory form an allowed pair.
func Validate(category, subCategory string) error {
	c, err := ParseCategory(category)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(subCategory)
	for _, candidate := range SubCategories(c) {
		if strings.EqualFold(candidate, name) {
			return nil
		}
	}
	return fmt.Errorf("taxonomy: %q is not a sub-category of %q", subCategory, category)
}

// Tags returns every category followed by its sub-categories, in
// display order. The inbox surfaces these as filter badges.
func Tags() []string {
	var tags []string
	for _, c := range Categories() {
		tags = append(tags, string(c))
		tags = append(tags, SubCategories(c)...)
	}
	return tags
}
