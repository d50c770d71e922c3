package enums

import "fmt"

// View names one of the storefront's top-level screens.
type View string

const (
	ViewHome     View = "home"
	ViewProducts View = "products"
	ViewDetail   View = "detail"
	ViewAbout    View = "about"
	ViewAdmin    View = "admin"
)

var validViews = []View{
	ViewHome,
	ViewProducts,
	ViewDetail,
	ViewAbout,
	ViewAdmin,
}

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}

// IsValid reports whether the value is a known View.
func (v View) IsValid() bool {
	for _, candidate := range validViews {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseView converts raw input into a View.
func ParseView(value string) (View, error) {
	for _, candidate := range validViews {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view %q", value)
}
