package domain

// Product identifiers for the purchasable verification tracks
const (
	ProductSkill     = "skill"
	ProductIDVisa    = "id-visa"
	ProductReference = "reference"
	ProductCombo     = "combo"
)

// Product is a purchasable verification offering
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // minor units
	Currency    string `json:"currency"`
}

// Catalog is the static product list. Prices are in cents.
var Catalog = []Product{
	{
		ID:          ProductSkill,
		Name:        "Skill Verification",
		Description: "AI-led voice interview, MCQ test and coding challenge with a shareable certificate.",
		Amount:      4900,
		Currency:    "usd",
	},
	{
		ID:          ProductIDVisa,
		Name:        "ID & Visa Verification",
		Description: "Government ID and visa document verification with selfie face match.",
		Amount:      2900,
		Currency:    "usd",
	},
	{
		ID:          ProductReference,
		Name:        "Reference Check",
		Description: "Automated outreach to professional referees and response verification.",
		Amount:      1900,
		Currency:    "usd",
	},
	{
		ID:          ProductCombo,
		Name:        "Complete Verification",
		Description: "All three verification tracks bundled at a discount.",
		Amount:      7900,
		Currency:    "usd",
	},
}

// ProductByID looks up a catalog entry; ok is false for unknown ids
func ProductByID(id string) (Product, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// IsValidProduct reports whether id names a purchasable product
func IsValidProduct(id string) bool {
	_, ok := ProductByID(id)
	return ok
}

// ExpandProducts resolves the combo bundle into its three tracks and
// de-duplicates. The result contains only concrete tracks, never "combo".
func ExpandProducts(purchased []string) []string {
	seen := make(map[string]bool)
	var tracks []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			tracks = append(tracks, id)
		}
	}
	for _, p := range purchased {
		if p == ProductCombo {
			add(ProductSkill)
			add(ProductIDVisa)
			add(ProductReference)
			continue
		}
		if IsValidProduct(p) {
			add(p)
		}
	}
	return tracks
}
