package procurement

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/mamadbah2/procurement-mock/internal/catalog"
	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

const (
	dateLayout     = "2006-01-02"
	productIDRange = 10000
)

// Synthesizer builds fake purchase orders for one catalog variant. It is not safe for
// concurrent use; build one per request.
type Synthesizer struct {
	variant catalog.Variant
	rng     *rand.Rand
	faker   *gofakeit.Faker
	now     func() time.Time

	supplierIDs     []string
	supplierWeights []int
	totalWeight     int
}

// NewSynthesizer wires a synthesizer around an explicit random source. A nil clock
// defaults to time.Now.
func NewSynthesizer(variant catalog.Variant, rng *rand.Rand, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}

	ids, weights := variant.Suppliers()
	total := 0
	for _, w := range weights {
		total += w
	}

	return &Synthesizer{
		variant:         variant,
		rng:             rng,
		faker:           gofakeit.NewFaker(rng, false),
		now:             now,
		supplierIDs:     ids,
		supplierWeights: weights,
		totalWeight:     total,
	}
}

// PurchaseOrder synthesizes the record for the given sequence number.
func (s *Synthesizer) PurchaseOrder(seq int) models.PurchaseOrder {
	v := s.variant

	supplier := s.pickSupplier()
	created, modified := s.dates()

	count := s.between(v.ItemCount.Min, v.ItemCount.Max)
	items := make([]models.LineItem, 0, count)
	nets := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		item := s.LineItem((i+1)*10, created)
		items = append(items, item)
		nets = append(nets, item.NetValue)
	}

	return models.PurchaseOrder{
		PurchaseOrderID: fmt.Sprintf("%s%04d", v.IDPrefix, seq),
		CompanyCode:     s.pick(v.CompanyCodes),
		DocCategory:     v.DocCategory,
		DocType:         s.pick(v.DocTypes),
		Status:          v.Statuses[s.rng.IntN(len(v.Statuses))],
		CreatedDate:     created.Format(dateLayout),
		CreatedBy:       s.faker.Username(),
		LastModified:    modified.Format(dateLayout),
		SupplierID:      supplier,
		PurchasingOrg:   fmt.Sprintf("ORG%d", s.between(1000, 9999)),
		PurchasingGroup: fmt.Sprintf("GRP%d", s.between(100, 999)),
		TotalValue:      SumNet(nets...),
		Currency:        s.pick(v.Currencies),
		Items:           items,
	}
}

// LineItem synthesizes one line. The created date of the owning order drives the
// seasonal template override when the variant enables it.
func (s *Synthesizer) LineItem(itemNumber int, created time.Time) models.LineItem {
	tmpl := s.template(created)

	quantity := s.between(s.variant.Quantity.Min, s.variant.Quantity.Max)
	unitPrice := Round2(tmpl.PriceLow + s.rng.Float64()*(tmpl.PriceHigh-tmpl.PriceLow))
	net := NetValue(quantity, unitPrice)

	return models.LineItem{
		ItemNumber:     itemNumber,
		ProductID:      ProductID(tmpl.Description),
		Description:    tmpl.Description,
		Plant:          s.pick(s.variant.Plants),
		MaterialGroup:  tmpl.MaterialGroup,
		Quantity:       quantity,
		Unit:           tmpl.Unit,
		UnitPrice:      unitPrice,
		NetValue:       net,
		GrossValue:     GrossValue(net),
		EffectiveValue: net,
	}
}

// ProductID hashes a description into [0, 10000). Distinct descriptions may collide.
func ProductID(description string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(description))
	return int(h.Sum32() % productIDRange)
}

func (s *Synthesizer) template(created time.Time) models.ItemTemplate {
	templates := s.variant.Templates
	if s.variant.SeasonalOverride {
		switch created.Month() {
		case time.January, time.February:
			return templates[0]
		case time.March, time.April:
			return templates[1]
		}
	}
	return templates[s.rng.IntN(len(templates))]
}

func (s *Synthesizer) pickSupplier() string {
	r := s.rng.IntN(s.totalWeight)
	for i, w := range s.supplierWeights {
		if r < w {
			return s.supplierIDs[i]
		}
		r -= w
	}
	return s.supplierIDs[len(s.supplierIDs)-1]
}

func (s *Synthesizer) dates() (created, modified time.Time) {
	switch s.variant.Dates {
	case catalog.DatesFixedYear:
		start := time.Date(s.variant.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		days := int(start.AddDate(1, 0, 0).Sub(start).Hours() / 24)
		created = start.AddDate(0, 0, s.rng.IntN(days))
		modified = created.AddDate(0, 0, s.between(0, s.variant.MaxModifiedOffset))
	default:
		today := s.now().UTC().Truncate(24 * time.Hour)
		from := today.AddDate(-1, 0, 0)
		span := int(today.Sub(from).Hours()/24) + 1
		created = from.AddDate(0, 0, s.rng.IntN(span))
		modified = from.AddDate(0, 0, s.rng.IntN(span))
	}
	return created, modified
}

func (s *Synthesizer) between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

func (s *Synthesizer) pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[s.rng.IntN(len(values))]
}
