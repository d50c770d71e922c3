package types

import "github.com/nexlyn/storefront-backend/pkg/enums"

// Settings is the storefront's editable global content. The five fields
// are independent values but are always saved together through one
// transactional store write.
type Settings struct {
	Theme          enums.Theme `json:"theme"`
	WhatsAppNumber string      `json:"whatsappNumber"`
	AboutContent   string      `json:"aboutContent"`
	Address        string      `json:"address"`
	MapURL         string      `json:"mapUrl"`
}
