package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/nexlyn/storefront-backend/pkg/enums"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

func TestProductMessageQuotesFirstThreeSpecs(t *testing.T) {
	p := &types.Product{
		Name:  "hAP ac3",
		Code:  "RBD53iG-5HacD2HnD",
		Specs: []string{"5-port Gigabit", "Dual-band AC1200", "PoE-in/out", "Extra"},
	}

	msg := BuildMessage(enums.MessageContextProduct, p, "")

	if !strings.Contains(msg, "*hAP ac3* (RBD53iG-5HacD2HnD)") {
		t.Fatalf("product name and code missing: %q", msg)
	}
	for _, spec := range p.Specs[:3] {
		if !strings.Contains(msg, "• "+spec) {
			t.Fatalf("expected spec %q in message", spec)
		}
	}
	if strings.Contains(msg, "Extra") {
		t.Fatal("fourth spec should not be quoted")
	}
}

func TestProductMessageWithFewSpecs(t *testing.T) {
	p := &types.Product{Name: "wAP ac", Code: "RBwAPG-5HacD2HnD", Specs: []string{"Weatherproof"}}

	msg := BuildMessage(enums.MessageContextProduct, p, "")
	if !strings.Contains(msg, "• Weatherproof") {
		t.Fatalf("spec missing: %q", msg)
	}
}

func TestCategoryMessageNamesCategory(t *testing.T) {
	msg := BuildMessage(enums.MessageContextCategory, nil, "Wireless")
	if !strings.Contains(msg, "your *Wireless* products") {
		t.Fatalf("category not named: %q", msg)
	}
}

func TestResellerAndGeneralMessagesAreStatic(t *testing.T) {
	reseller := BuildMessage(enums.MessageContextReseller, nil, "")
	if !strings.Contains(reseller, "authorized MikroTik® reseller") {
		t.Fatalf("unexpected reseller message: %q", reseller)
	}

	general := BuildMessage(enums.MessageContextGeneral, nil, "")
	if !strings.Contains(general, "business/enterprise deployment") {
		t.Fatalf("unexpected general message: %q", general)
	}
}

func TestMissingDataFallsBackToGeneral(t *testing.T) {
	if got := BuildMessage(enums.MessageContextProduct, nil, ""); got != generalMessage {
		t.Fatalf("expected general fallback, got %q", got)
	}
	if got := BuildMessage(enums.MessageContextCategory, nil, ""); got != generalMessage {
		t.Fatalf("expected general fallback, got %q", got)
	}
}

func TestBuildMessageIsPure(t *testing.T) {
	p := &types.Product{Name: "CRS328", Code: "CRS328-24P-4S+RM", Specs: []string{"24x PoE", "4x SFP+"}}
	first := BuildMessage(enums.MessageContextProduct, p, "")
	second := BuildMessage(enums.MessageContextProduct, p, "")
	if first != second {
		t.Fatal("message should be deterministic")
	}
	if len(p.Specs) != 2 {
		t.Fatal("input product must not be mutated")
	}
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("971502474482", "Hello NEXLYN Distributions")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "wa.me" || u.Path != "/971502474482" {
		t.Fatalf("unexpected link shape: %q", link)
	}
	if got := u.Query().Get("text"); got != "Hello NEXLYN Distributions" {
		t.Fatalf("text not encoded round-trip: %q", got)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("spaces must be escaped: %q", link)
	}
}
