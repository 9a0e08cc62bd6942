package review

import (
	"strings"

	"talentiq/internal/model"
)

// Category keys, in display order.
const (
	KeyTone      = "tone"
	KeyContent   = "content"
	KeyStructure = "structure"
	KeySkills    = "skills"
)

// Section is a category paired with its key and display title.
type Section struct {
	Key      string
	Title    string
	Category model.Category
}

var sectionTitles = []struct{ key, title string }{
	{KeyTone, "Tone & Style"},
	{KeyContent, "Content"},
	{KeyStructure, "Structure"},
	{KeySkills, "Skills"},
}

// Keys returns the category keys in display order.
func Keys() []string {
	keys := make([]string, len(sectionTitles))
	for i, s := range sectionTitles {
		keys[i] = s.key
	}
	return keys
}

// Sections returns the feedback's categories in display order.
func Sections(fb model.Feedback) []Section {
	out := make([]Section, 0, len(sectionTitles))
	for _, s := range sectionTitles {
		c, _ := categoryFor(fb, s.key)
		out = append(out, Section{Key: s.key, Title: s.title, Category: c})
	}
	return out
}

// LookupSection finds a category by key, ignoring case and surrounding space.
func LookupSection(fb model.Feedback, key string) (Section, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range sectionTitles {
		if s.key == key {
			c, _ := categoryFor(fb, key)
			return Section{Key: s.key, Title: s.title, Category: c}, true
		}
	}
	return Section{}, false
}

func categoryFor(fb model.Feedback, key string) (model.Category, bool) {
	switch key {
	case KeyTone:
		return fb.ToneAndStyle, true
	case KeyContent:
		return fb.Content, true
	case KeyStructure:
		return fb.Structure, true
	case KeySkills:
		return fb.Skills, true
	}
	return model.Category{}, false
}
