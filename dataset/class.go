package dataset

// ClassUnknown is returned for class codes outside the zoo vocabulary.
const ClassUnknown = "unknown"

// zooClassNames maps the zoo dataset's class codes 1-7 to their descriptive
// names. Index 0 is the out-of-range sentinel, so the lookup stays a plain
// array index with no allocation.
var zooClassNames = [...]string{
	ClassUnknown,
	"mammal",
	"bird",
	"reptile",
	"fish",
	"amphibian",
	"insect",
	"invertebrate",
}

// ClassName resolves a zoo class code (1-7) to its descriptive name.
// Codes outside the range resolve to ClassUnknown.
func ClassName(code int) string {
	if code < 1 || code >= len(zooClassNames) {
		return ClassUnknown
	}

	return zooClassNames[code]
}

// ClassLabels converts a slice of class codes to label strings, the shape
// the Dataset labels field expects.
func ClassLabels(codes []int) []string {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = ClassName(code)
	}

	return labels
}
