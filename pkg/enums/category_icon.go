package enums

import "fmt"

// CategoryIcon is the closed set of icons the storefront can render for a
// category pill. Categories reference this enum instead of a free-form
// string so an unknown icon is rejected at parse time rather than silently
// rendering nothing.
type CategoryIcon string

const (
	CategoryIconGrid    CategoryIcon = "grid"
	CategoryIconRouter  CategoryIcon = "router"
	CategoryIconSwitch  CategoryIcon = "switch"
	CategoryIconWifi    CategoryIcon = "wifi"
	CategoryIconAntenna CategoryIcon = "antenna"
	CategoryIconChip    CategoryIcon = "chip"
	CategoryIconToolbox CategoryIcon = "toolbox"
)

var validCategoryIcons = []CategoryIcon{
	CategoryIconGrid,
	CategoryIconRouter,
	CategoryIconSwitch,
	CategoryIconWifi,
	CategoryIconAntenna,
	CategoryIconChip,
	CategoryIconToolbox,
}

// String implements fmt.Stringer.
func (i CategoryIcon) String() string {
	return string(i)
}

// IsValid reports whether the value is a known CategoryIcon.
func (i CategoryIcon) IsValid() bool {
	for _, candidate := range validCategoryIcons {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseCategoryIcon converts raw input into a CategoryIcon.
func ParseCategoryIcon(value string) (CategoryIcon, error) {
	for _, candidate := range validCategoryIcons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category icon %q", value)
}
