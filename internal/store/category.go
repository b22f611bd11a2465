package store

// Category is the workflow category enumeration of the remote schema.
type Category int

const (
	CategoryWorkflow Category = iota
	CategoryDialog
	CategoryBusinessRule
	CategoryAction
	CategoryBusinessProcessFlow
	CategoryModernFlow
)

var categoryNames = [...]string{"workflow", "dialog", "business rule", "action", "business process flow", "modern flow"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// EnumIndex returns the enum index of a Category.
func (c Category) EnumIndex() int {
	return int(c)
}

// Valid reports whether the category is a known remote value.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}
