package render

// Style holds the typographic constants consumed by the renderers. The
// composer never sees it; changing a Style value must never change the
// text either renderer emits.
type Style struct {
	Font string

	// Run sizes in half-points, as OOXML counts them.
	SizeTitle  int
	SizeNormal int
	SizeSmall  int

	// Hex colors without the leading '#'.
	BrandColor  string
	MutedColor  string
	BorderColor string

	// HTML preview layout.
	PageWidthPx int
}

// DefaultStyle matches the firm's document branding.
func DefaultStyle() Style {
	return Style{
		Font:        "Times New Roman",
		SizeTitle:   28, // 14pt
		SizeNormal:  24, // 12pt
		SizeSmall:   20, // 10pt
		BrandColor:  "232C54",
		MutedColor:  "999999",
		BorderColor: "999999",
		PageWidthPx: 700,
	}
}
