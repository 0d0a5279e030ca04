package models

// MealSet is one concrete meal offering inside a package.
type MealSet struct {
	SetID   int    `json:"setId"`
	SetName string `json:"setName"`
	Type    string `json:"type"` // VEG or NON_VEG
}

// MealPackage is a purchasable subscription plan as served by the upstream
// catalog endpoint. It is read-only once fetched.
type MealPackage struct {
	PackageID    int       `json:"packageId"`
	Name         string    `json:"name"`
	Features     string    `json:"features"`
	PricePerSet  float64   `json:"pricePerSet"`
	DurationDays int       `json:"durationDays"`
	PackageSets  []MealSet `json:"packageSets"`
}

// HasSet reports whether setID belongs to this package.
func (p MealPackage) HasSet(setID int) bool {
	for _, s := range p.PackageSets {
		if s.SetID == setID {
			return true
		}
	}
	return false
}
