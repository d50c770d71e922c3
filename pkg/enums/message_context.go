package enums

import "fmt"

// MessageContext selects the outbound WhatsApp inquiry template.
type MessageContext string

const (
	MessageContextGeneral  MessageContext = "general"
	MessageContextProduct  MessageContext = "product"
	MessageContextCategory MessageContext = "category"
	MessageContextReseller MessageContext = "reseller"
)

var validMessageContexts = []MessageContext{
	MessageContextGeneral,
	MessageContextProduct,
	MessageContextCategory,
	MessageContextReseller,
}

// String implements fmt.Stringer.
func (m MessageContext) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MessageContext.
func (m MessageContext) IsValid() bool {
	for _, candidate := range validMessageContexts {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMessageContext converts raw input into a MessageContext.
func ParseMessageContext(value string) (MessageContext, error) {
	for _, candidate := range validMessageContexts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid message context %q", value)
}
