package models

// translationTable maps canonical (ru) labels to their English counterparts.
// The reverse map is computed once when the table is built.
type translationTable struct {
	forward map[string]string
	reverse map[string]string
}

func newTranslationTable(pairs map[string]string) translationTable {
	reverse := make(map[string]string, len(pairs))
	for canonical, secondary := range pairs {
		reverse[secondary] = canonical
	}
	return translationTable{forward: pairs, reverse: reverse}
}

// translate returns the English label, or the input when the table has no entry.
func (t translationTable) translate(label string) string {
	if v, ok := t.forward[label]; ok {
		return v
	}
	return label
}

// canonical returns the Russian label for an English one, or the input unchanged.
func (t translationTable) canonical(label string) string {
	if v, ok := t.reverse[label]; ok {
		return v
	}
	return label
}

// lookupReverse reports whether label is a known English label.
func (t translationTable) lookupReverse(label string) (string, bool) {
	v, ok := t.reverse[label]
	return v, ok
}

var (
	categoryTranslations = newTranslationTable(map[string]string{
		string(CategoryDesign):      "Design",
		string(CategoryDevelopment): "Development",
		string(CategoryStartups):    "Startups",
		string(CategoryOther):       "Other",
	})

	statusTranslations = newTranslationTable(map[string]string{
		string(StatusInProgress): "In Progress",
		string(StatusCompleted):  "Completed",
	})
)

// TranslateCategory returns the English label for a category.
func TranslateCategory(c Category) string {
	return categoryTranslations.translate(string(c))
}

// ReverseCategory maps an English category label to its canonical value.
// Labels that are not in the table are returned unchanged.
func ReverseCategory(label string) Category {
	return Category(categoryTranslations.canonical(label))
}

// LookupCategory is ReverseCategory that also reports whether label was translated.
func LookupCategory(label string) (Category, bool) {
	v, ok := categoryTranslations.lookupReverse(label)
	return Category(v), ok
}

// TranslateStatus returns the English label for a status.
func TranslateStatus(s Status) string {
	return statusTranslations.translate(string(s))
}

// ReverseStatus maps an English status label to its canonical value.
func ReverseStatus(label string) Status {
	return Status(statusTranslations.canonical(label))
}

// LookupStatus is ReverseStatus that also reports whether label was translated.
func LookupStatus(label string) (Status, bool) {
	v, ok := statusTranslations.lookupReverse(label)
	return Status(v), ok
}
