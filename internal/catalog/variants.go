package catalog

import "github.com/mamadbah2/procurement-mock/internal/domain/models"

const catalogYear = 2025

// Generic is the office and IT procurement catalog.
func Generic() Variant {
	return Variant{
		Name:     VariantGeneric,
		IDPrefix: "PO-2025-",
		Templates: []models.ItemTemplate{
			{Description: "Office Paper", MaterialGroup: "OFFICE", Unit: "EA", PriceLow: 50, PriceHigh: 500},
			{Description: "Laptop", MaterialGroup: "IT", Unit: "EA", PriceLow: 50, PriceHigh: 500},
			{Description: "Cardamom Pack", MaterialGroup: "RAW", Unit: "EA", PriceLow: 50, PriceHigh: 500},
			{Description: "Pen Set", MaterialGroup: "OFFICE", Unit: "EA", PriceLow: 50, PriceHigh: 500},
			{Description: "Printer Ink", MaterialGroup: "OFFICE", Unit: "EA", PriceLow: 50, PriceHigh: 500},
		},
		FrequentSuppliers: []string{"SUPP001", "SUPP002", "SUPP003"},
		OtherSuppliers:    numbered("SUPP%03d", 4, 19),
		FrequentWeight:    5,
		OtherWeight:       1,
		ItemCount:         Range{Min: 1, Max: 4},
		Quantity:          Range{Min: 1, Max: 500},
		Plants:            numbered("PLANT%03d", 1, 5),
		CompanyCodes:      []string{"1000", "2000"},
		DocCategory:       "F",
		DocTypes:          []string{"ZLP1", "NB", "FO"},
		Currencies:        []string{"SAR", "USD", "EUR"},
		Statuses:          defaultStatuses(),
		Dates:             DatesTrailingYear,
		Year:              catalogYear,
		Strategy:          StrategyBounded,
		CompanyFilter:     true,
	}
}

// Packing is the packing-department supplies catalog.
func Packing() Variant {
	return Variant{
		Name:     VariantPacking,
		IDPrefix: "PO-2025-",
		Templates: []models.ItemTemplate{
			{Description: "Corrugated Box 60x40x40", MaterialGroup: "PACK-BOX", Unit: "EA", PriceLow: 1.2, PriceHigh: 4.5},
			{Description: "Stretch Film Roll 500mm", MaterialGroup: "PACK-FILM", Unit: "ROL", PriceLow: 8, PriceHigh: 22},
			{Description: "Packing Tape 48mm", MaterialGroup: "PACK-TAPE", Unit: "ROL", PriceLow: 1.5, PriceHigh: 6},
			{Description: "Bubble Wrap Roll", MaterialGroup: "PACK-FILM", Unit: "ROL", PriceLow: 12, PriceHigh: 35},
			{Description: "Wooden Pallet EUR", MaterialGroup: "PACK-PAL", Unit: "EA", PriceLow: 9, PriceHigh: 25},
			{Description: "Shipping Labels A6", MaterialGroup: "PACK-LBL", Unit: "PAK", PriceLow: 4, PriceHigh: 15},
			{Description: "Kraft Paper Void Fill", MaterialGroup: "PACK-FILL", Unit: "KG", PriceLow: 2, PriceHigh: 7.5},
			{Description: "Strapping Band PP", MaterialGroup: "PACK-STRP", Unit: "ROL", PriceLow: 18, PriceHigh: 48},
		},
		FrequentSuppliers: []string{"SUPP_PACK_01", "SUPP_PACK_02", "SUPP_PACK_03"},
		OtherSuppliers:    numbered("SUPP_PACK_%02d", 4, 12),
		FrequentWeight:    5,
		OtherWeight:       1,
		ItemCount:         Range{Min: 2, Max: 5},
		Quantity:          Range{Min: 1, Max: 500},
		Plants:            []string{"PK01", "PK02", "PK03"},
		CompanyCodes:      []string{"3000"},
		DocCategory:       "F",
		DocTypes:          []string{"NB", "FO"},
		Currencies:        []string{"SAR", "USD"},
		Statuses:          defaultStatuses(),
		Dates:             DatesFixedYear,
		Year:              catalogYear,
		MaxModifiedOffset: 7,
		Strategy:          StrategyRetry,
	}
}

// Feed is the animal-feed commodities catalog. The first two templates are the
// winter and spring commodities forced by the seasonal override.
func Feed() Variant {
	return Variant{
		Name:     VariantFeed,
		IDPrefix: "PO-2025-",
		Templates: []models.ItemTemplate{
			{Description: "Yellow Maize", MaterialGroup: "FEED-GRAIN", Unit: "KG", PriceLow: 0.25, PriceHigh: 0.4},
			{Description: "Soybean Meal 46%", MaterialGroup: "FEED-PROT", Unit: "KG", PriceLow: 0.45, PriceHigh: 0.7},
			{Description: "Wheat Bran", MaterialGroup: "FEED-GRAIN", Unit: "KG", PriceLow: 0.18, PriceHigh: 0.3},
			{Description: "Feed Barley", MaterialGroup: "FEED-GRAIN", Unit: "KG", PriceLow: 0.22, PriceHigh: 0.35},
			{Description: "Alfalfa Hay Bales", MaterialGroup: "FEED-FORAGE", Unit: "KG", PriceLow: 0.2, PriceHigh: 0.32},
			{Description: "Layer Mineral Premix", MaterialGroup: "FEED-ADD", Unit: "KG", PriceLow: 1.2, PriceHigh: 2.5},
		},
		FrequentSuppliers: []string{"SUPP_FEED_01", "SUPP_FEED_02", "SUPP_FEED_03"},
		OtherSuppliers:    numbered("SUPP_FEED_%02d", 4, 10),
		FrequentWeight:    5,
		OtherWeight:       1,
		ItemCount:         Range{Min: 2, Max: 5},
		Quantity:          Range{Min: 500, Max: 5000},
		Plants:            []string{"FD01", "FD02"},
		CompanyCodes:      []string{"4000", "4100"},
		DocCategory:       "F",
		DocTypes:          []string{"NB", "ZLP1"},
		Currencies:        []string{"SAR", "USD"},
		Statuses:          defaultStatuses(),
		SeasonalOverride:  true,
		Dates:             DatesFixedYear,
		Year:              catalogYear,
		MaxModifiedOffset: 7,
		Strategy:          StrategyRetry,
	}
}
