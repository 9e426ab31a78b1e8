package domain

import "strings"

// Department keys.
const (
	KeyMen         = "men"
	KeyWomen       = "women"
	KeyAccessories = "accessories"
)

// Subcategory keys.
const (
	KeySweaters = "sweaters"
	KeyScarves  = "scarves"
	KeyHats     = "hats"
	KeyGloves   = "gloves"
	KeySocks    = "socks"
	KeyCardigan = "cardigan"
	KeyDress    = "dress"
	KeyVest     = "vest"
	KeyBottoms  = "bottoms"
	KeyCoat     = "coat"
)

// CompositeSeparator joins a department key and a subcategory key, e.g. "men:sweaters".
const CompositeSeparator = ":"

// UnknownCategoryName is the Name of the placeholder metadata for unresolvable keys.
const UnknownCategoryName = "Unknown"

var DepartmentKeys = []string{KeyMen, KeyWomen, KeyAccessories}

var SubcategoryKeys = []string{
	KeySweaters, KeyScarves, KeyHats, KeyGloves, KeySocks,
	KeyCardigan, KeyDress, KeyVest, KeyBottoms, KeyCoat,
}

var departmentDisplay = map[string]string{
	KeyMen:         "Men",
	KeyWomen:       "Women",
	KeyAccessories: "Accessories",
}

var subcategoryDisplay = map[string]string{
	KeySweaters: "Sweaters",
	KeyScarves:  "Scarves",
	KeyHats:     "Hats",
	KeyGloves:   "Gloves",
	KeySocks:    "Socks",
	KeyCardigan: "Cardigans",
	KeyDress:    "Dresses",
	KeyVest:     "Vests",
	KeyBottoms:  "Bottoms",
	KeyCoat:     "Coats",
}

var departmentSubcategories = map[string][]string{
	KeyMen:         {KeySweaters, KeyCardigan, KeyVest, KeyBottoms, KeyCoat},
	KeyWomen:       {KeySweaters, KeyCardigan, KeyDress, KeyVest, KeyBottoms, KeyCoat},
	KeyAccessories: {KeyScarves, KeyHats, KeyGloves, KeySocks},
}

var categoryDescriptions = map[string]string{
	KeyMen:                 "Cashmere essentials for men",
	KeyWomen:               "Cashmere essentials for women",
	KeyAccessories:         "Scarves, hats, gloves and socks",
	KeySweaters:            "Knitwear for every season",
	KeyScarves:             "Soft scarves and wraps",
	KeyHats:                "Warm hats and beanies",
	KeyGloves:              "Gloves and mittens",
	KeySocks:               "Cashmere socks",
	KeyCardigan:            "Cardigans and layering knits",
	KeyDress:               "Knitted dresses",
	KeyVest:                "Vests and sleeveless knits",
	KeyBottoms:             "Knitted trousers and skirts",
	KeyCoat:                "Cashmere coats",
	string(EventCouple):    "Matching pieces for couples",
	string(EventChristmas): "Holiday gifts",
	string(EventCompany):   "Corporate gifting",
}

// DepartmentDisplayName returns the stored form of a department key ("men" -> "Men").
func DepartmentDisplayName(key string) (string, bool) {
	name, ok := departmentDisplay[key]
	return name, ok
}

// DepartmentKey is the inverse of DepartmentDisplayName.
func DepartmentKey(display string) (string, bool) {
	for key, name := range departmentDisplay {
		if name == display {
			return key, true
		}
	}
	return "", false
}

// SubcategoryDisplayName returns the stored form of a subcategory key ("dress" -> "Dresses").
func SubcategoryDisplayName(key string) (string, bool) {
	name, ok := subcategoryDisplay[key]
	return name, ok
}

// SubcategoryKey is the inverse of SubcategoryDisplayName.
func SubcategoryKey(display string) (string, bool) {
	for key, name := range subcategoryDisplay {
		if name == display {
			return key, true
		}
	}
	return "", false
}

// DepartmentOffers reports whether the department (display form) lists the
// subcategory (display form).
func DepartmentOffers(department, subcategory string) bool {
	deptKey, ok := DepartmentKey(department)
	if !ok {
		return false
	}
	subKey, ok := SubcategoryKey(subcategory)
	if !ok {
		return false
	}
	for _, k := range departmentSubcategories[deptKey] {
		if k == subKey {
			return true
		}
	}
	return false
}

// LookupCategory returns the static metadata of a non-composite taxonomy key.
// The returned value is a fresh copy.
func LookupCategory(id string) (CategoryInfo, bool) {
	desc, ok := categoryDescriptions[id]
	if !ok {
		return CategoryInfo{}, false
	}
	info := CategoryInfo{
		ID:            id,
		Name:          id,
		Description:   desc,
		Subcategories: []Subcategory{},
	}
	for _, sub := range departmentSubcategories[id] {
		info.Subcategories = append(info.Subcategories, Subcategory{ID: sub, Name: sub})
	}
	return info, true
}

// UnknownCategory is the placeholder metadata for keys missing from the taxonomy.
func UnknownCategory(id string) CategoryInfo {
	return CategoryInfo{
		ID:            id,
		Name:          UnknownCategoryName,
		Description:   "Category",
		Subcategories: []Subcategory{},
		ProductCount:  0,
	}
}

// NormalizeKey lowercases and trims a requested taxonomy key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
