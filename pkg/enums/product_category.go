package enums

import "fmt"

// ProductCategory represents the canonical hardware categories carried by the catalog.
type ProductCategory string

const (
	ProductCategoryRouting     ProductCategory = "Routing"
	ProductCategorySwitching   ProductCategory = "Switching"
	ProductCategoryWireless    ProductCategory = "Wireless"
	ProductCategoryCellular    ProductCategory = "5G/LTE"
	ProductCategoryIoT         ProductCategory = "IoT"
	ProductCategoryAccessories ProductCategory = "Accessories"
)

var validProductCategories = []ProductCategory{
	ProductCategoryRouting,
	ProductCategorySwitching,
	ProductCategoryWireless,
	ProductCategoryCellular,
	ProductCategoryIoT,
	ProductCategoryAccessories,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns the closed category set in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
