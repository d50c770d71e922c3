package types

import "github.com/nexlyn/storefront-backend/pkg/enums"

// CategoryAll is the sentinel filter value matching every category.
const CategoryAll = "All"

// Category is a display and filter facet. The "All" entry is a pseudo
// category, so Name is a display string rather than a ProductCategory.
// Count is presentational metadata from the seeded table, not a value
// recomputed from the live catalog.
type Category struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Icon  enums.CategoryIcon `json:"icon,omitempty"`
	Count int                `json:"count"`
}
