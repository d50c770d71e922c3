package session

import (
	"github.com/nexlyn/storefront-backend/pkg/enums"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// State is the per-visitor document: the current view and selection, the
// admin gate, the open draft (nil unless the editor modal is open), and the
// append-only chat log. It is transient; a fresh session always starts at
// home, locked, with empty selection.
type State struct {
	View             enums.View      `json:"view"`
	ActiveProductID  string          `json:"activeProductId,omitempty"`
	SelectedCategory string          `json:"selectedCategory"`
	SearchText       string          `json:"searchText,omitempty"`
	AdminUnlocked    bool            `json:"adminUnlocked"`
	Draft            *types.Product  `json:"draft,omitempty"`
	Messages         []types.Message `json:"messages,omitempty"`
}

// NewState returns the initial visitor state.
func NewState() *State {
	return &State{
		View:             enums.ViewHome,
		SelectedCategory: types.CategoryAll,
	}
}
