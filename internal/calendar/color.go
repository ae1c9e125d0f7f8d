package calendar

// categoryColors is the fixed category-to-color table. Every Category
// constant must have an entry; Color falls back to the "other" color
// for anything unknown, and the table is checked for exhaustiveness
// at init so a new category cannot ship without a color.
var categoryColors = map[Category]string{
	CategoryExercise: "#22C55E", // green
	CategoryEating:   "#EAB308", // yellow
	CategoryWork:     "#3B82F6", // blue
	CategoryRelax:    "#A855F7", // purple
	CategoryFamily:   "#EC4899", // pink
	CategorySocial:   "#F97316", // orange
	CategoryOther:    "#6B7280", // gray
}

func init() {
	for _, c := range Categories {
		if _, ok := categoryColors[c]; !ok {
			panic("calendar: no color for category " + string(c))
		}
	}
}

// Color returns the hex color derived from the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}
