package types

import "github.com/nexlyn/storefront-backend/pkg/enums"

// Source is one grounding citation returned alongside an AI answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Message is one chat turn. Messages are append-only and never mutated
// after creation.
type Message struct {
	Role    enums.ChatRole `json:"role"`
	Content string         `json:"content"`
	Sources []Source       `json:"sources,omitempty"`
}
