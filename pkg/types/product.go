package types

import "github.com/nexlyn/storefront-backend/pkg/enums"

// Product is one sellable hardware item in the catalog. The ID is assigned
// once at creation and never reassigned; edit and delete resolve by ID.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Code        string                `json:"code"`
	Category    enums.ProductCategory `json:"category"`
	Specs       []string              `json:"specs"`
	Status      string                `json:"status"`
	Description string                `json:"description"`
	ImageURL    string                `json:"imageUrl"`
}

// Clone returns a deep copy so drafts can be edited without touching the
// catalog's copy.
func (p Product) Clone() Product {
	out := p
	if p.Specs != nil {
		out.Specs = make([]string, len(p.Specs))
		copy(out.Specs, p.Specs)
	}
	return out
}
