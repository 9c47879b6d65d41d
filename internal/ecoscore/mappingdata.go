package ecoscore

// Static reference tables for the mapping resolver, the seed command and
// the benchmark lookup. All of them are immutable configuration loaded at
// process start; rules live in slices so table-declaration order is the
// match order.

// ProcessEntry is one reference process in the static catalog.
type ProcessEntry struct {
	Key           string
	Code          string
	Name          string
	Category      string
	Unit          string
	DefaultImpact float64
}

// ProcessGroup bundles the entries a category rule can map into.
type ProcessGroup struct {
	Key     string
	Entries []ProcessEntry
}

var ProcessGroups = []ProcessGroup{
	{
		Key: "food",
		Entries: []ProcessEntry{
			{Key: "organic_food", Code: "organic_food_production", Name: "organic food production, at farm", Category: "Food", Unit: "kg", DefaultImpact: 0.5},
			{Key: "beverage_bottle", Code: "bottle_PET_500ml", Name: "bottle, PET, 500ml, at plant", Category: "Packaging", Unit: "item", DefaultImpact: 0.1},
			{Key: "glass_bottle", Code: "bottle_glass_500ml", Name: "bottle, glass, 500ml, at plant", Category: "Packaging", Unit: "item", DefaultImpact: 0.15},
		},
	},
	{
		Key: "textiles",
		Entries: []ProcessEntry{
			{Key: "cotton_tshirt", Code: "textile_cotton_tshirt", Name: "textile, cotton, t-shirt, at plant", Category: "Textiles", Unit: "item", DefaultImpact: 2.5},
			{Key: "organic_cotton_tshirt", Code: "textile_organic_cotton_tshirt", Name: "textile, organic cotton, t-shirt, at plant", Category: "Textiles", Unit: "item", DefaultImpact: 1.8},
			{Key: "polyester_tshirt", Code: "textile_polyester_tshirt", Name: "textile, polyester, t-shirt, at plant", Category: "Textiles", Unit: "item", DefaultImpact: 3.2},
			{Key: "jeans", Code: "textile_cotton_jeans", Name: "textile, cotton, jeans, at plant", Category: "Textiles", Unit: "item", DefaultImpact: 8.0},
		},
	},
	{
		Key: "electronics",
		Entries: []ProcessEntry{
			{Key: "led_bulb", Code: "lamp_LED_10W", Name: "lamp, LED, 10W, at plant", Category: "Electronics", Unit: "item", DefaultImpact: 0.5},
			{Key: "smartphone", Code: "smartphone_production", Name: "smartphone, at plant", Category: "Electronics", Unit: "item", DefaultImpact: 55.0},
			{Key: "laptop", Code: "laptop_production", Name: "laptop computer, at plant", Category: "Electronics", Unit: "item", DefaultImpact: 200.0},
			{Key: "tablet", Code: "tablet_production", Name: "tablet computer, at plant", Category: "Electronics", Unit: "item", DefaultImpact: 80.0},
		},
	},
	{
		Key: "home_garden",
		Entries: []ProcessEntry{
			{Key: "bamboo_toothbrush", Code: "toothbrush_bamboo", Name: "toothbrush, bamboo, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.05},
			{Key: "bamboo_cutlery", Code: "cutlery_bamboo", Name: "cutlery, bamboo, at plant", Category: "Home & Garden", Unit: "item", DefaultImpact: 0.1},
			{Key: "plastic_toothbrush", Code: "toothbrush_plastic", Name: "toothbrush, plastic, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.1},
			{Key: "reusable_bag", Code: "bag_cotton_reusable", Name: "bag, cotton, reusable, at plant", Category: "Packaging", Unit: "item", DefaultImpact: 0.3},
			{Key: "reusable_bottle", Code: "bottle_reusable_glass", Name: "bottle, reusable, glass, at plant", Category: "Food & Beverages", Unit: "item", DefaultImpact: 0.2},
			{Key: "plastic_bag", Code: "bag_plastic_single_use", Name: "bag, plastic, single-use, at plant", Category: "Packaging", Unit: "item", DefaultImpact: 0.02},
		},
	},
	{
		Key: "personal_care",
		Entries: []ProcessEntry{
			{Key: "shampoo_bar", Code: "shampoo_bar_organic", Name: "shampoo, bar, organic, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.2},
			{Key: "liquid_shampoo", Code: "shampoo_liquid_plastic_bottle", Name: "shampoo, liquid, plastic bottle, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.4},
			{Key: "sunscreen_organic", Code: "sunscreen_organic", Name: "sunscreen, organic, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.3},
			{Key: "sunscreen_conventional", Code: "sunscreen_conventional", Name: "sunscreen, conventional, at plant", Category: "Personal Care", Unit: "item", DefaultImpact: 0.5},
		},
	},
	{
		Key: "cleaning",
		Entries: []ProcessEntry{
			{Key: "eco_detergent", Code: "detergent_eco_friendly", Name: "detergent, eco-friendly, at plant", Category: "Cleaning", Unit: "item", DefaultImpact: 0.8},
			{Key: "conventional_detergent", Code: "detergent_conventional", Name: "detergent, conventional, at plant", Category: "Cleaning", Unit: "item", DefaultImpact: 1.2},
			{Key: "bamboo_sponge", Code: "sponge_bamboo", Name: "sponge, bamboo, at plant", Category: "Cleaning", Unit: "item", DefaultImpact: 0.1},
			{Key: "plastic_sponge", Code: "sponge_plastic", Name: "sponge, plastic, at plant", Category: "Cleaning", Unit: "item", DefaultImpact: 0.2},
		},
	},
}

func findGroup(key string) *ProcessGroup {
	for i := range ProcessGroups {
		if ProcessGroups[i].Key == key {
			return &ProcessGroups[i]
		}
	}
	return nil
}

func (g *ProcessGroup) find(key string) *ProcessEntry {
	if g == nil {
		return nil
	}
	for i := range g.Entries {
		if g.Entries[i].Key == key {
			return &g.Entries[i]
		}
	}
	return nil
}

// SubMapping maps a keyword to a process entry key within a category rule.
type SubMapping struct {
	Keyword    string
	MappingKey string
}

// CategoryRule selects a process group for a product category. Keywords
// are matched as substrings of the lowercased category; SubMappings are
// tried in order before falling back to DefaultKey.
type CategoryRule struct {
	Category    string
	Keywords    []string
	Group       string
	DefaultKey  string
	SubMappings []SubMapping
}

var CategoryRules = []CategoryRule{
	{
		Category:   "Food & Beverages",
		Keywords:   []string{"food", "beverage", "drink", "snack", "organic", "natural"},
		Group:      "food",
		DefaultKey: "organic_food",
		SubMappings: []SubMapping{
			{Keyword: "bottles", MappingKey: "beverage_bottle"},
			{Keyword: "glass", MappingKey: "glass_bottle"},
			{Keyword: "organic", MappingKey: "organic_food"},
		},
	},
	{
		Category:   "Clothing & Textiles",
		Keywords:   []string{"clothing", "textile", "shirt", "dress", "cotton", "organic cotton"},
		Group:      "textiles",
		DefaultKey: "cotton_tshirt",
		SubMappings: []SubMapping{
			{Keyword: "organic", MappingKey: "organic_cotton_tshirt"},
			{Keyword: "polyester", MappingKey: "polyester_tshirt"},
			{Keyword: "jeans", MappingKey: "jeans"},
		},
	},
	{
		Category:   "Electronics",
		Keywords:   []string{"electronics", "phone", "laptop", "tablet", "led", "bulb"},
		Group:      "electronics",
		DefaultKey: "led_bulb",
		SubMappings: []SubMapping{
			{Keyword: "smartphone", MappingKey: "smartphone"},
			{Keyword: "laptop", MappingKey: "laptop"},
			{Keyword: "tablet", MappingKey: "tablet"},
			{Keyword: "led", MappingKey: "led_bulb"},
		},
	},
	{
		Category:   "Home & Garden",
		Keywords:   []string{"home", "garden", "toothbrush", "bag", "bamboo", "reusable", "cutlery", "bottle"},
		Group:      "home_garden",
		DefaultKey: "bamboo_toothbrush",
		SubMappings: []SubMapping{
			{Keyword: "toothbrush", MappingKey: "bamboo_toothbrush"},
			{Keyword: "bag", MappingKey: "reusable_bag"},
			{Keyword: "bamboo", MappingKey: "bamboo_toothbrush"},
			{Keyword: "cutlery", MappingKey: "bamboo_cutlery"},
			{Keyword: "bottle", MappingKey: "reusable_bottle"},
		},
	},
	{
		Category:   "Personal Care",
		Keywords:   []string{"personal", "care", "shampoo", "sunscreen", "beauty", "skincare"},
		Group:      "personal_care",
		DefaultKey: "shampoo_bar",
		SubMappings: []SubMapping{
			{Keyword: "shampoo", MappingKey: "shampoo_bar"},
			{Keyword: "sunscreen", MappingKey: "sunscreen_organic"},
			{Keyword: "organic", MappingKey: "shampoo_bar"},
		},
	},
	{
		Category:   "Cleaning Products",
		Keywords:   []string{"cleaning", "detergent", "sponge", "eco", "green"},
		Group:      "cleaning",
		DefaultKey: "eco_detergent",
		SubMappings: []SubMapping{
			{Keyword: "detergent", MappingKey: "eco_detergent"},
			{Keyword: "sponge", MappingKey: "bamboo_sponge"},
			{Keyword: "eco", MappingKey: "eco_detergent"},
		},
	},
}

type directNameRule struct {
	Words      []string
	Group      string
	MappingKey string
}

// Direct product-name rules, checked before any category matching. A hit
// returns the entry as-is; the eco-friendly credit never applies here.
var directNameRules = []directNameRule{
	{Words: []string{"bamboo", "cutlery"}, Group: "home_garden", MappingKey: "bamboo_cutlery"},
	{Words: []string{"bamboo", "toothbrush"}, Group: "home_garden", MappingKey: "bamboo_toothbrush"},
	{Words: []string{"cotton", "tote"}, Group: "home_garden", MappingKey: "reusable_bag"},
	{Words: []string{"reusable", "bottle"}, Group: "home_garden", MappingKey: "reusable_bottle"},
}

// BenchmarkAliases maps product categories with no benchmark of their own
// onto the category whose benchmark applies.
var BenchmarkAliases = map[string]string{
	"Kitchen & Dining":      "Home & Garden",
	"Fashion & Accessories": "Clothing & Textiles",
}

// BenchmarkSeed is one category benchmark in the static seed table.
type BenchmarkSeed struct {
	Category    string
	Subcategory string
	Impact      float64
	Unit        string
	Description string
	Source      string
}

var BenchmarkSeeds = []BenchmarkSeed{
	{Category: "Food & Beverages", Impact: 2.0, Unit: "kg CO2-eq/kg", Description: "Average impact for food products", Source: "EU PEF Category Rules"},
	{Category: "Clothing & Textiles", Impact: 5.0, Unit: "kg CO2-eq/item", Description: "Average impact for clothing items", Source: "Fashion Revolution Report"},
	{Category: "Electronics", Impact: 50.0, Unit: "kg CO2-eq/item", Description: "Average impact for electronic devices", Source: "Green Electronics Council"},
	{Category: "Home & Garden", Impact: 1.0, Unit: "kg CO2-eq/item", Description: "Average impact for home products", Source: "Home Improvement Industry"},
	{Category: "Personal Care", Impact: 0.5, Unit: "kg CO2-eq/item", Description: "Average impact for personal care products", Source: "Personal Care Industry"},
	{Category: "Cleaning Products", Impact: 1.5, Unit: "kg CO2-eq/item", Description: "Average impact for cleaning products", Source: "Cleaning Industry Association"},
}

// FallbackImpact is one entry of the impact evaluator's keyword table,
// scanned in order against the process code.
type FallbackImpact struct {
	Keyword string
	Impact  float64
}

var FallbackImpacts = []FallbackImpact{
	{Keyword: "bottle", Impact: 0.1},
	{Keyword: "textile", Impact: 0.5},
	{Keyword: "lamp", Impact: 0.2},
	{Keyword: "electronics", Impact: 1.0},
	{Keyword: "food", Impact: 0.3},
}

const DefaultFallbackImpact = 0.5
