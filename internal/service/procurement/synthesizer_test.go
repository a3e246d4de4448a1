package procurement_test

import (
	"math"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mamadbah2/procurement-mock/internal/catalog"
	"github.com/mamadbah2/procurement-mock/internal/domain/models"
	"github.com/mamadbah2/procurement-mock/internal/service/procurement"
)

var fixedNow = func() time.Time { return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC) }

func newSynth(v catalog.Variant, seed uint64) *procurement.Synthesizer {
	return procurement.NewSynthesizer(v, rand.New(rand.NewPCG(seed, seed+1)), fixedNow)
}

func allVariants() []catalog.Variant {
	return []catalog.Variant{catalog.Generic(), catalog.Packing(), catalog.Feed()}
}

func hasTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestSynthesizer_LineItemMoneyInvariants(t *testing.T) {
	for _, v := range allVariants() {
		t.Run(v.Name, func(t *testing.T) {
			s := newSynth(v, 7)
			for seq := 1; seq <= 300; seq++ {
				po := s.PurchaseOrder(seq)
				for _, item := range po.Items {
					if got, want := item.NetValue, procurement.NetValue(item.Quantity, item.UnitPrice); got != want {
						t.Fatalf("%s item %d: got net %v, want %v", po.PurchaseOrderID, item.ItemNumber, got, want)
					}
					if diff := math.Abs(item.NetValue - float64(item.Quantity)*item.UnitPrice); diff > 0.005+1e-6 {
						t.Fatalf("%s item %d: net %v deviates from quantity*price by %v", po.PurchaseOrderID, item.ItemNumber, item.NetValue, diff)
					}
					if got, want := item.GrossValue, procurement.GrossValue(item.NetValue); got != want {
						t.Fatalf("%s item %d: got gross %v, want %v", po.PurchaseOrderID, item.ItemNumber, got, want)
					}
					if item.GrossValue < item.NetValue {
						t.Fatalf("%s item %d: gross %v below net %v", po.PurchaseOrderID, item.ItemNumber, item.GrossValue, item.NetValue)
					}
					if item.EffectiveValue != item.NetValue {
						t.Fatalf("%s item %d: effective %v differs from net %v", po.PurchaseOrderID, item.ItemNumber, item.EffectiveValue, item.NetValue)
					}
					if !hasTwoDecimals(item.UnitPrice) {
						t.Fatalf("%s item %d: unit price %v has more than two decimals", po.PurchaseOrderID, item.ItemNumber, item.UnitPrice)
					}
				}
			}
		})
	}
}

func TestSynthesizer_TotalIsSumOfNetValues(t *testing.T) {
	for _, v := range allVariants() {
		t.Run(v.Name, func(t *testing.T) {
			s := newSynth(v, 11)
			for seq := 1; seq <= 200; seq++ {
				po := s.PurchaseOrder(seq)
				nets := make([]float64, 0, len(po.Items))
				for _, item := range po.Items {
					nets = append(nets, item.NetValue)
				}
				if got, want := po.TotalValue, procurement.SumNet(nets...); got != want {
					t.Fatalf("%s: got total %v, want %v", po.PurchaseOrderID, got, want)
				}
			}
		})
	}
}

func TestSynthesizer_RangesFollowVariant(t *testing.T) {
	for _, v := range allVariants() {
		t.Run(v.Name, func(t *testing.T) {
			prices := map[string]models.ItemTemplate{}
			for _, tmpl := range v.Templates {
				prices[tmpl.Description] = tmpl
			}
			knownSuppliers := map[string]bool{}
			ids, _ := v.Suppliers()
			for _, id := range ids {
				knownSuppliers[id] = true
			}

			s := newSynth(v, 3)
			for seq := 1; seq <= 300; seq++ {
				po := s.PurchaseOrder(seq)
				if n := len(po.Items); n < v.ItemCount.Min || n > v.ItemCount.Max {
					t.Fatalf("%s: got %d items, want %d..%d", po.PurchaseOrderID, n, v.ItemCount.Min, v.ItemCount.Max)
				}
				if !knownSuppliers[po.SupplierID] {
					t.Fatalf("%s: unknown supplier %q", po.PurchaseOrderID, po.SupplierID)
				}
				if po.CreatedBy == "" {
					t.Fatalf("%s: created_by is empty", po.PurchaseOrderID)
				}
				if !strings.HasPrefix(po.PurchasingOrg, "ORG") || !strings.HasPrefix(po.PurchasingGroup, "GRP") {
					t.Fatalf("%s: got org %q group %q", po.PurchaseOrderID, po.PurchasingOrg, po.PurchasingGroup)
				}
				for i, item := range po.Items {
					if item.ItemNumber != (i+1)*10 {
						t.Errorf("%s: got item number %d, want %d", po.PurchaseOrderID, item.ItemNumber, (i+1)*10)
					}
					if item.Quantity < v.Quantity.Min || item.Quantity > v.Quantity.Max {
						t.Fatalf("%s: got quantity %d, want %d..%d", po.PurchaseOrderID, item.Quantity, v.Quantity.Min, v.Quantity.Max)
					}
					tmpl, ok := prices[item.Description]
					if !ok {
						t.Fatalf("%s: description %q not in catalog", po.PurchaseOrderID, item.Description)
					}
					if item.UnitPrice < tmpl.PriceLow || item.UnitPrice > tmpl.PriceHigh {
						t.Fatalf("%s: price %v outside %v..%v", po.PurchaseOrderID, item.UnitPrice, tmpl.PriceLow, tmpl.PriceHigh)
					}
					if item.ProductID < 0 || item.ProductID >= 10000 {
						t.Fatalf("%s: product id %d out of range", po.PurchaseOrderID, item.ProductID)
					}
				}
			}
		})
	}
}

func TestSynthesizer_IdentifierFormat(t *testing.T) {
	s := newSynth(catalog.Generic(), 1)

	if got := s.PurchaseOrder(7).PurchaseOrderID; got != "PO-2025-0007" {
		t.Errorf("got id %q, want %q", got, "PO-2025-0007")
	}
	if got := s.PurchaseOrder(12345).PurchaseOrderID; got != "PO-2025-12345" {
		t.Errorf("got id %q, want %q", got, "PO-2025-12345")
	}
}

func TestSynthesizer_SameSeedSameRecords(t *testing.T) {
	a := newSynth(catalog.Packing(), 42)
	b := newSynth(catalog.Packing(), 42)

	for seq := 1; seq <= 20; seq++ {
		if pa, pb := a.PurchaseOrder(seq), b.PurchaseOrder(seq); !reflect.DeepEqual(pa, pb) {
			t.Fatalf("seq %d: seeded synthesizers diverged:\n%+v\n%+v", seq, pa, pb)
		}
	}
}

func TestSynthesizer_FrequentSuppliersDominate(t *testing.T) {
	v := catalog.Generic()
	frequent := map[string]bool{}
	for _, id := range v.FrequentSuppliers {
		frequent[id] = true
	}

	s := newSynth(v, 99)
	const draws = 5000
	hits := 0
	for seq := 1; seq <= draws; seq++ {
		if frequent[s.PurchaseOrder(seq).SupplierID] {
			hits++
		}
	}

	// 3 suppliers at weight 5 against 16 at weight 1: expected share 15/31.
	share := float64(hits) / draws
	if share < 0.40 || share > 0.56 {
		t.Errorf("got frequent supplier share %.3f, want about 0.48", share)
	}
}

func TestSynthesizer_FixedYearDates(t *testing.T) {
	for _, v := range []catalog.Variant{catalog.Packing(), catalog.Feed()} {
		t.Run(v.Name, func(t *testing.T) {
			s := newSynth(v, 5)
			for seq := 1; seq <= 500; seq++ {
				po := s.PurchaseOrder(seq)
				created, err := time.Parse("2006-01-02", po.CreatedDate)
				if err != nil {
					t.Fatalf("%s: parse created %q: %v", po.PurchaseOrderID, po.CreatedDate, err)
				}
				modified, err := time.Parse("2006-01-02", po.LastModified)
				if err != nil {
					t.Fatalf("%s: parse modified %q: %v", po.PurchaseOrderID, po.LastModified, err)
				}
				if created.Year() != v.Year {
					t.Fatalf("%s: got created year %d, want %d", po.PurchaseOrderID, created.Year(), v.Year)
				}
				offset := modified.Sub(created).Hours() / 24
				if offset < 0 || offset > float64(v.MaxModifiedOffset) {
					t.Fatalf("%s: got modified offset %v days, want 0..%d", po.PurchaseOrderID, offset, v.MaxModifiedOffset)
				}
			}
		})
	}
}

// The generic variant draws both dates independently, so last_modified can come
// before created_date. This pins that behavior so a change to it is deliberate.
func TestSynthesizer_GenericDatesAreIndependent(t *testing.T) {
	s := newSynth(catalog.Generic(), 8)
	earliest := fixedNow().AddDate(-1, 0, 0).Format("2006-01-02")
	latest := fixedNow().Format("2006-01-02")

	inverted := 0
	for seq := 1; seq <= 300; seq++ {
		po := s.PurchaseOrder(seq)
		for _, d := range []string{po.CreatedDate, po.LastModified} {
			if d < earliest || d > latest {
				t.Fatalf("%s: date %s outside trailing year %s..%s", po.PurchaseOrderID, d, earliest, latest)
			}
		}
		if po.LastModified < po.CreatedDate {
			inverted++
		}
	}

	if inverted == 0 {
		t.Error("expected some orders with last_modified before created_date")
	}
}

func TestSynthesizer_SeasonalOverride(t *testing.T) {
	v := catalog.Feed()

	cases := []struct {
		name  string
		month time.Month
		want  string
	}{
		{"january", time.January, v.Templates[0].Description},
		{"february", time.February, v.Templates[0].Description},
		{"march", time.March, v.Templates[1].Description},
		{"april", time.April, v.Templates[1].Description},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSynth(v, 13)
			created := time.Date(2025, tc.month, 14, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 50; i++ {
				if got := s.LineItem(10, created).Description; got != tc.want {
					t.Fatalf("got template %q, want %q", got, tc.want)
				}
			}
		})
	}
}

func TestSynthesizer_SeasonalOverrideFallsBackToRandom(t *testing.T) {
	v := catalog.Feed()
	s := newSynth(v, 21)
	created := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[s.LineItem(10, created).Description] = true
	}
	if len(seen) < 3 {
		t.Errorf("got %d distinct templates in July, want uniform spread", len(seen))
	}
}

func TestSynthesizer_NoSeasonalOverrideOutsideFeed(t *testing.T) {
	s := newSynth(catalog.Packing(), 17)
	created := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[s.LineItem(10, created).Description] = true
	}
	if len(seen) < 3 {
		t.Errorf("got %d distinct templates in February, want uniform spread", len(seen))
	}
}

func TestProductID_StableAndBounded(t *testing.T) {
	a := procurement.ProductID("Office Paper")
	b := procurement.ProductID("Office Paper")

	if a != b {
		t.Errorf("got %d and %d for the same description", a, b)
	}
	if a < 0 || a >= 10000 {
		t.Errorf("got product id %d, want 0..9999", a)
	}
}
