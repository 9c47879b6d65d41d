package ecoscore

import "testing"

func TestResolveDirectNameRules(t *testing.T) {
	cases := []struct {
		name        string
		productName string
		category    string
		wantCode    string
	}{
		{name: "bamboo_cutlery", productName: "Bamboo Cutlery Set", category: "Kitchen & Dining", wantCode: "cutlery_bamboo"},
		{name: "bamboo_toothbrush", productName: "Organic Bamboo Toothbrush", category: "Personal Care", wantCode: "toothbrush_bamboo"},
		{name: "cotton_tote", productName: "Cotton Tote Bag", category: "Fashion & Accessories", wantCode: "bag_cotton_reusable"},
		{name: "reusable_bottle", productName: "Reusable Water Bottle", category: "Home & Garden", wantCode: "bottle_reusable_glass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.productName, tc.category, "", nil, false)
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want code %s", tc.productName, tc.wantCode)
			}
			if got.Code != tc.wantCode {
				t.Fatalf("Resolve(%q) code = %s, want %s", tc.productName, got.Code, tc.wantCode)
			}
		})
	}
}

func TestResolveDirectNameRuleSkipsEcoCredit(t *testing.T) {
	// Direct rules return before the eco-friendly credit is considered.
	got := Resolve("Organic Bamboo Toothbrush", "Personal Care", "", nil, true)
	if got == nil {
		t.Fatal("Resolve returned nil")
	}
	if got.Code != "toothbrush_bamboo" {
		t.Fatalf("code = %s, want toothbrush_bamboo", got.Code)
	}
	if got.DefaultImpact != 0.05 {
		t.Fatalf("DefaultImpact = %v, want 0.05 (undiscounted)", got.DefaultImpact)
	}
}

func TestResolveCategoryRules(t *testing.T) {
	cases := []struct {
		name        string
		productName string
		category    string
		subcategory string
		tags        []string
		wantCode    string
	}{
		{name: "subcategory_match", productName: "Slim Jeans", category: "Clothing & Textiles", subcategory: "jeans", wantCode: "textile_cotton_jeans"},
		{name: "name_match", productName: "Latest Smartphone X", category: "Electronics", wantCode: "smartphone_production"},
		{name: "tag_match", productName: "Family Computer", category: "Electronics", tags: []string{"laptop", "portable"}, wantCode: "laptop_production"},
		{name: "category_default", productName: "Mystery Snack", category: "Food & Beverages", wantCode: "organic_food_production"},
		{name: "declaration_order_wins", productName: "Bamboo Bag Organizer", category: "Home & Garden", wantCode: "bag_cotton_reusable"},
		{name: "cleaning_default", productName: "All Purpose Cleaner", category: "Cleaning Products", wantCode: "detergent_eco_friendly"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.productName, tc.category, tc.subcategory, tc.tags, false)
			if got == nil {
				t.Fatalf("Resolve(%q, %q) = nil, want code %s", tc.productName, tc.category, tc.wantCode)
			}
			if got.Code != tc.wantCode {
				t.Fatalf("Resolve(%q, %q) code = %s, want %s", tc.productName, tc.category, got.Code, tc.wantCode)
			}
		})
	}
}

func TestResolveUnmappableCategory(t *testing.T) {
	if got := Resolve("Engine Oil", "Automotive", "", nil, false); got != nil {
		t.Fatalf("Resolve(Automotive) = %+v, want nil", got)
	}
}

func TestResolveEcoFriendlyCredit(t *testing.T) {
	plain := Resolve("Slim Jeans", "Clothing & Textiles", "jeans", nil, false)
	eco := Resolve("Slim Jeans", "Clothing & Textiles", "jeans", nil, true)
	if plain == nil || eco == nil {
		t.Fatal("Resolve returned nil")
	}
	if want := plain.DefaultImpact * EcoFriendlyCredit; eco.DefaultImpact != want {
		t.Fatalf("eco DefaultImpact = %v, want %v", eco.DefaultImpact, want)
	}

	// Keys that already denote organic/eco keep their impact as-is.
	organic := Resolve("Organic Veggie Box", "Food & Beverages", "organic", nil, true)
	if organic == nil {
		t.Fatal("Resolve returned nil for organic food")
	}
	if organic.DefaultImpact != 0.5 {
		t.Fatalf("organic DefaultImpact = %v, want 0.5", organic.DefaultImpact)
	}
}

func TestResolveDoesNotMutateTables(t *testing.T) {
	before := findGroup("textiles").find("jeans").DefaultImpact
	_ = Resolve("Slim Jeans", "Clothing & Textiles", "jeans", nil, true)
	after := findGroup("textiles").find("jeans").DefaultImpact
	if before != after {
		t.Fatalf("shared table mutated: %v -> %v", before, after)
	}
}

func TestCategoryRuleGroupsExist(t *testing.T) {
	for _, rule := range CategoryRules {
		group := findGroup(rule.Group)
		if group == nil {
			t.Fatalf("rule %q references unknown group %q", rule.Category, rule.Group)
		}
		if group.find(rule.DefaultKey) == nil {
			t.Fatalf("rule %q default key %q missing from group %q", rule.Category, rule.DefaultKey, rule.Group)
		}
		for _, sub := range rule.SubMappings {
			if group.find(sub.MappingKey) == nil {
				t.Fatalf("rule %q sub mapping %q -> %q missing from group %q", rule.Category, sub.Keyword, sub.MappingKey, rule.Group)
			}
		}
	}
}
