package catalog

import (
	"github.com/nexlyn/storefront-backend/pkg/enums"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// seedProducts is the catalog shipped on first boot, before any admin edit
// has been persisted.
var seedProducts = []types.Product{
	{
		ID:       "prod-hap-ax3",
		Name:     "hAP ax3",
		Code:     "C53UiG+5HPaxD2HPaxD",
		Category: enums.ProductCategoryRouting,
		Specs: []string{
			"Wi-Fi 6 dual-band AX1800",
			"4x Gigabit + 1x 2.5G Ethernet",
			"PoE-in and PoE-out",
			"IPsec hardware acceleration",
		},
		Status:      "In Stock",
		Description: "Flagship home and branch-office access point router with Wi-Fi 6 and a 2.5G uplink.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/hap-ax3.png",
	},
	{
		ID:       "prod-rb5009",
		Name:     "RB5009UG+S+IN",
		Code:     "RB5009UG+S+IN",
		Category: enums.ProductCategoryRouting,
		Specs: []string{
			"Quad-core ARM64 1.4 GHz",
			"7x Gigabit + 1x 2.5G + 1x SFP+",
			"1 GB RAM, RouterOS v7",
			"Powered by PoE-in or DC jack",
		},
		Status:      "In Stock",
		Description: "Compact rack-ready router for heavy-duty edge routing and container workloads.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/rb5009.png",
	},
	{
		ID:       "prod-ccr2216",
		Name:     "CCR2216-1G-12XS-2XQ",
		Code:     "CCR2216-1G-12XS-2XQ",
		Category: enums.ProductCategoryRouting,
		Specs: []string{
			"16-core Amazon Annapurna AL73400",
			"12x 25G SFP28 + 2x 100G QSFP28",
			"128 GB NVMe storage",
			"Dual hot-swap power supplies",
		},
		Status:      "In Stock",
		Description: "Carrier-grade core router for ISPs and data centers with 100G aggregation.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/ccr2216.png",
	},
	{
		ID:       "prod-crs328",
		Name:     "CRS328-24P-4S+RM",
		Code:     "CRS328-24P-4S+RM",
		Category: enums.ProductCategorySwitching,
		Specs: []string{
			"24x Gigabit PoE-out ports",
			"4x SFP+ 10G uplinks",
			"500 W total PoE budget",
			"SwOS and RouterOS dual boot",
		},
		Status:      "In Stock",
		Description: "Rackmount PoE access switch for camera, AP, and phone deployments.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/crs328.png",
	},
	{
		ID:       "prod-crs518",
		Name:     "CRS518-16XS-2XQ-RM",
		Code:     "CRS518-16XS-2XQ-RM",
		Category: enums.ProductCategorySwitching,
		Specs: []string{
			"16x 25G SFP28 ports",
			"2x 100G QSFP28 ports",
			"Non-blocking switching fabric",
			"Dual redundant power inputs",
		},
		Status:      "Pre-Order",
		Description: "Top-of-rack aggregation switch for high-density 25G and 100G fabrics.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/crs518.png",
	},
	{
		ID:       "prod-hap-ac3",
		Name:     "hAP ac3",
		Code:     "RBD53iG-5HacD2HnD",
		Category: enums.ProductCategoryWireless,
		Specs: []string{
			"Dual-band AC1200 wireless",
			"5x Gigabit Ethernet",
			"PoE-in and PoE-out",
			"External high-gain antennas",
		},
		Status:      "In Stock",
		Description: "Best-selling dual-band access point router for homes and small offices.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/hap-ac3.png",
	},
	{
		ID:       "prod-cap-ax",
		Name:     "cAP ax",
		Code:     "cAPGi-5HaxD2HaxD",
		Category: enums.ProductCategoryWireless,
		Specs: []string{
			"Wi-Fi 6 dual-band AX1800",
			"2x Gigabit Ethernet with PoE passthrough",
			"Ceiling or wall mount",
			"Centrally managed with CAPsMAN",
		},
		Status:      "In Stock",
		Description: "Ceiling access point for controller-managed enterprise Wi-Fi 6 rollouts.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/cap-ax.png",
	},
	{
		ID:       "prod-lhg-5",
		Name:     "LHG 5",
		Code:     "RBLHG-5nD",
		Category: enums.ProductCategoryWireless,
		Specs: []string{
			"24.5 dBi integrated grid antenna",
			"5 GHz 802.11a/n radio",
			"Over 10 km point-to-point links",
			"Weatherproof outdoor enclosure",
		},
		Status:      "In Stock",
		Description: "Long-range lightweight CPE for rural wireless backhaul links.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/lhg-5.png",
	},
	{
		ID:       "prod-chateau-5g",
		Name:     "Chateau 5G ax",
		Code:     "S53UG+5HaxD2HaxD-TC&RG502Q-EA",
		Category: enums.ProductCategoryCellular,
		Specs: []string{
			"5G NSA/SA modem, Cat 20 fallback",
			"Wi-Fi 6 dual-band AX1800",
			"5x Gigabit Ethernet",
			"Dual SIM with failover",
		},
		Status:      "In Stock",
		Description: "All-in-one 5G gateway for fixed wireless access and WAN failover.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/chateau-5g.png",
	},
	{
		ID:       "prod-ltap",
		Name:     "LtAP LTE6 kit",
		Code:     "RBLtAP-2HnD&R11e-LTE6",
		Category: enums.ProductCategoryCellular,
		Specs: []string{
			"Cat 6 LTE modem with carrier aggregation",
			"Built-in GPS for fleet tracking",
			"Three miniSIM slots",
			"Rugged vehicle-ready enclosure",
		},
		Status:      "Low Stock",
		Description: "Mobile LTE access point for vehicles, vessels, and remote telemetry.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/ltap-lte6.png",
	},
	{
		ID:       "prod-knot",
		Name:     "KNOT",
		Code:     "RB924iR-2nD-BT5&BG77",
		Category: enums.ProductCategoryIoT,
		Specs: []string{
			"Bluetooth 5.2 and NB-IoT/Cat-M",
			"2.4 GHz wireless AP",
			"Powered over PoE or DC",
			"MQTT telemetry out of the box",
		},
		Status:      "In Stock",
		Description: "IoT gateway bridging Bluetooth tags and sensors to the cloud.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/knot.png",
	},
	{
		ID:       "prod-gpen21",
		Name:     "GPEN21",
		Code:     "GPEN21",
		Category: enums.ProductCategoryAccessories,
		Specs: []string{
			"Gigabit PoE injector with surge protection",
			"SFP port for fiber handoff",
			"Reverse PoE powering",
			"Wall-mount outdoor design",
		},
		Status:      "In Stock",
		Description: "Passive PoE injector for fiber-to-the-building access deployments.",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/nexlyn/gpen21.png",
	},
}

// seedCategories drives the filter pills. Counts are curated display copy,
// kept in step with the seed catalog by hand.
var seedCategories = []types.Category{
	{ID: types.CategoryAll, Name: "All Products", Icon: enums.CategoryIconGrid, Count: 12},
	{ID: enums.ProductCategoryRouting.String(), Name: "Routing", Icon: enums.CategoryIconRouter, Count: 3},
	{ID: enums.ProductCategorySwitching.String(), Name: "Switching", Icon: enums.CategoryIconSwitch, Count: 2},
	{ID: enums.ProductCategoryWireless.String(), Name: "Wireless", Icon: enums.CategoryIconWifi, Count: 3},
	{ID: enums.ProductCategoryCellular.String(), Name: "5G/LTE", Icon: enums.CategoryIconAntenna, Count: 2},
	{ID: enums.ProductCategoryIoT.String(), Name: "IoT", Icon: enums.CategoryIconChip, Count: 1},
	{ID: enums.ProductCategoryAccessories.String(), Name: "Accessories", Icon: enums.CategoryIconToolbox, Count: 1},
}

// SeedProducts returns a deep copy of the default catalog.
func SeedProducts() []types.Product {
	out := make([]types.Product, len(seedProducts))
	for i, p := range seedProducts {
		out[i] = p.Clone()
	}
	return out
}

// SeedCategories returns a copy of the category table.
func SeedCategories() []types.Category {
	out := make([]types.Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}
