// Package whatsapp composes enquiry messages and wa.me deep links for the
// storefront's contact flows.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nexlyn/storefront-backend/pkg/enums"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// maxProductSpecs caps how many spec lines a product enquiry quotes.
const maxProductSpecs = 3

// BuildMessage renders the pre-filled enquiry text for the given context.
// Product enquiries need a product, category enquiries a category name;
// anything else falls back to the general enquiry.
func BuildMessage(ctx enums.MessageContext, product *types.Product, categoryName string) string {
	switch {
	case ctx == enums.MessageContextProduct && product != nil:
		return productMessage(product)
	case ctx == enums.MessageContextCategory && categoryName != "":
		return categoryMessage(categoryName)
	case ctx == enums.MessageContextReseller:
		return resellerMessage
	default:
		return generalMessage
	}
}

// DeepLink builds the https://wa.me/<number>?text=<encoded> URL that opens
// a WhatsApp conversation pre-filled with text.
func DeepLink(number, text string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + number,
		RawQuery: url.Values{"text": {text}}.Encode(),
	}
	return u.String()
}

func productMessage(p *types.Product) string {
	specs := p.Specs
	if len(specs) > maxProductSpecs {
		specs = specs[:maxProductSpecs]
	}
	return fmt.Sprintf("Hello NEXLYN Distributions,\n\n"+
		"I’m interested in the *%s* (%s) for business deployment.\n\n"+
		"*Product Details:*\n• %s\n\n"+
		"*Please provide:*\n"+
		"• Reseller/volume pricing tiers\n"+
		"• Current stock availability\n"+
		"• Lead time for export orders\n"+
		"• Technical documentation\n"+
		"• Warranty & RMA process\n\n"+
		"*Company/Business:* [Your company name]\n"+
		"*Estimated quantity:* [Quantity needed]\n"+
		"*Delivery location:* [Country/Region]\n\n"+
		"Thank you!",
		p.Name, p.Code, strings.Join(specs, "\n• "))
}

func categoryMessage(name string) string {
	return fmt.Sprintf("Hello NEXLYN Distributions,\n\n"+
		"I’m interested in your *%s* products for business deployment.\n\n"+
		"*Please provide:*\n"+
		"• Product comparison & specifications\n"+
		"• Volume pricing structure\n"+
		"• Stock availability across range\n"+
		"• Recommended solutions for my use case\n\n"+
		"*Business details:*\n"+
		"• Company: [Your company name]\n"+
		"• Location: [Country/Region]\n\n"+
		"Thank you!",
		name)
}

const resellerMessage = "Hello NEXLYN Distributions,\n\n" +
	"I’m interested in becoming an *authorized MikroTik® reseller* in your territory.\n\n" +
	"*Business Information:*\n" +
	"• Company name: [Your company]\n" +
	"• Territory: [City/Region]\n\n" +
	"*I would like information about:*\n" +
	"• Reseller program requirements\n" +
	"• Volume pricing tiers\n" +
	"• Technical training opportunities\n" +
	"• Marketing support available\n" +
	"• RMA & warranty procedures\n\n" +
	"Thank you!"

const generalMessage = "Hello NEXLYN Distributions,\n\n" +
	"I’m interested in MikroTik® products for business/enterprise deployment.\n\n" +
	"*Please provide information about:*\n" +
	"• Product catalog & specifications\n" +
	"• Pricing for business/volume orders\n" +
	"• Technical consultation services\n" +
	"• Training & certification programs\n" +
	"• Export capabilities & documentation\n\n" +
	"*Business details:*\n" +
	"• Company: [Your company name]\n" +
	"• Location: [Country/Region]\n\n" +
	"Thank you!"
