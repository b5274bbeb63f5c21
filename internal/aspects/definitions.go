package aspects

import "fmt"

// Industry selects which aspect vocabulary the attributor scans with.
type Industry string

const (
	IndustryGeneral     Industry = "general"
	IndustryFashion     Industry = "fashion"
	IndustryBeauty      Industry = "beauty"
	IndustryElectronics Industry = "electronics"
	IndustryFood        Industry = "food"
)

// Industries lists every supported industry configuration.
func Industries() []Industry {
	return []Industry{IndustryGeneral, IndustryFashion, IndustryBeauty, IndustryElectronics, IndustryFood}
}

// ParseIndustry validates an industry selector coming from the caller.
func ParseIndustry(s string) (Industry, error) {
	switch Industry(s) {
	case IndustryGeneral, IndustryFashion, IndustryBeauty, IndustryElectronics, IndustryFood:
		return Industry(s), nil
	}
	return "", fmt.Errorf("unknown industry %q", s)
}

// Definition names one product/service dimension and the terms that
// trigger it. Static configuration, read-only at pipeline run time.
type Definition struct {
	Key      string
	Label    string
	Triggers []string
}

// Aspects common to all e-commerce verticals.
var baseAspects = []Definition{
	{
		Key:   "product_quality",
		Label: "Product Quality",
		Triggers: []string{
			"quality", "material", "made", "construction", "build",
			"craftsmanship", "durable", "durability", "sturdy", "flimsy",
			"cheap", "premium", "well-made", "poorly made", "authentic",
			"genuine", "fake", "real", "solid",
		},
	},
	{
		Key:   "shipping",
		Label: "Shipping & Delivery",
		Triggers: []string{
			"shipping", "delivery", "arrived", "package", "packaging",
			"shipped", "deliver", "courier", "carrier", "tracking",
			"fast", "slow", "late", "early", "on time", "delayed",
			"lost", "damaged in transit", "box", "wrapped",
		},
	},
	{
		Key:   "customer_service",
		Label: "Customer Service",
		Triggers: []string{
			"customer service", "support", "response", "help", "helpful",
			"representative", "rep", "contact", "refund", "return",
			"exchange", "warranty", "replacement", "resolved", "issue",
			"problem", "complaint", "responsive", "rude", "friendly",
		},
	},
	{
		Key:   "value",
		Label: "Value for Money",
		Triggers: []string{
			"price", "value", "worth", "money", "expensive", "cheap",
			"affordable", "overpriced", "bargain", "deal", "discount",
			"cost", "pay", "paid", "budget", "premium price",
		},
	},
	{
		Key:   "description_accuracy",
		Label: "Description Accuracy",
		Triggers: []string{
			"description", "described", "picture", "photo", "image",
			"expected", "expect", "advertised", "shown", "looks like",
			"different", "same as", "accurate", "misleading", "false",
		},
	},
}

var industryAspects = map[Industry][]Definition{
	IndustryFashion: {
		{
			Key:   "fit_sizing",
			Label: "Fit & Sizing",
			Triggers: []string{
				"fit", "fits", "size", "sizing", "small", "large", "big",
				"tight", "loose", "comfortable", "uncomfortable", "true to size",
				"runs small", "runs large", "length", "width", "waist",
				"measurements", "petite", "plus size",
			},
		},
		{
			Key:   "appearance",
			Label: "Appearance & Style",
			Triggers: []string{
				"color", "colour", "looks", "style", "design", "pattern",
				"beautiful", "ugly", "cute", "gorgeous", "stunning",
				"flattering", "fashionable", "trendy", "classic",
			},
		},
		{
			Key:   "fabric",
			Label: "Fabric & Material",
			Triggers: []string{
				"fabric", "material", "cotton", "polyester", "silk", "linen",
				"soft", "scratchy", "itchy", "breathable", "stretchy",
				"texture", "feel", "lightweight", "heavy",
			},
		},
	},
	IndustryBeauty: {
		{
			Key:   "efficacy",
			Label: "Efficacy & Results",
			Triggers: []string{
				"works", "effective", "results", "improvement", "difference",
				"before after", "visible", "noticeable", "miracle", "amazing results",
			},
		},
		{
			Key:   "skin_reaction",
			Label: "Skin Compatibility",
			Triggers: []string{
				"skin", "reaction", "irritation", "breakout", "sensitive",
				"allergy", "allergic", "rash", "redness", "burning",
				"gentle", "harsh", "moisturizing", "drying",
			},
		},
		{
			Key:   "application",
			Label: "Application & Texture",
			Triggers: []string{
				"apply", "application", "blend", "blends", "smooth",
				"streaky", "coverage", "pigment", "buildable", "easy to use",
			},
		},
	},
	IndustryElectronics: {
		{
			Key:   "performance",
			Label: "Performance",
			Triggers: []string{
				"performance", "fast", "slow", "speed", "powerful",
				"lag", "laggy", "smooth", "responsive", "efficient",
				"battery", "battery life", "processor", "memory",
			},
		},
		{
			Key:   "ease_of_use",
			Label: "Ease of Use",
			Triggers: []string{
				"easy", "difficult", "intuitive", "complicated", "setup",
				"install", "user-friendly", "confusing", "simple",
				"instructions", "manual", "learning curve",
			},
		},
		{
			Key:   "connectivity",
			Label: "Connectivity",
			Triggers: []string{
				"connect", "connection", "bluetooth", "wifi", "wireless",
				"pair", "pairing", "compatible", "compatibility", "sync",
			},
		},
	},
	IndustryFood: {
		{
			Key:   "taste",
			Label: "Taste & Flavor",
			Triggers: []string{
				"taste", "flavor", "delicious", "tasty", "yummy",
				"disgusting", "bland", "sweet", "salty", "spicy",
				"fresh", "stale", "rich", "light",
			},
		},
		{
			Key:   "freshness",
			Label: "Freshness",
			Triggers: []string{
				"fresh", "freshness", "expired", "shelf life", "stale",
				"mold", "spoiled", "rotten", "preservatives",
			},
		},
		{
			Key:   "packaging_food",
			Label: "Food Packaging",
			Triggers: []string{
				"sealed", "leak", "leaking", "spill", "crushed",
				"intact", "damaged", "broken seal", "vacuum sealed",
			},
		},
	},
}

// ForIndustry returns the base aspect set extended with the industry's
// own aspects, in a fixed order.
func ForIndustry(industry Industry) ([]Definition, error) {
	if _, err := ParseIndustry(string(industry)); err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(baseAspects)+3)
	defs = append(defs, baseAspects...)
	defs = append(defs, industryAspects[industry]...)
	return defs, nil
}
