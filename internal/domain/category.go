package domain

// PriorityTier indicates the handling priority suggested for a category.
type PriorityTier string

// Priority tiers.
const (
	PriorityLow    PriorityTier = "low"
	PriorityMedium PriorityTier = "medium"
	PriorityHigh   PriorityTier = "high"
)

// CategoryUnknown is returned by the keyword categorizer when no category
// keyword matches the text.
const CategoryUnknown = "Bilinmeyen"

// CategoryDefinition describes one category of the refined taxonomy.
// Definitions live in an explicit ordered list; the declaration order is the
// documented tie-break for the keyword categorizer.
type CategoryDefinition struct {
	Name        string       `json:"name"`
	Keywords    []string     `json:"keywords"`
	Description string       `json:"description"`
	Priority    PriorityTier `json:"priority"`
}
