package layouts

// Brand is the product name shown in the header and page titles.
const Brand = "Sculpt.ai"

// CalculateTitle builds the document title for a page.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + Brand
	}
	return Brand
}
