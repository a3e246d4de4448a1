package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/domain/models"
	"github.com/mamadbah2/procurement-mock/internal/service/procurement"
)

// Service exposes lightweight analytics over synthesized pages.
type Service struct {
	lister procurement.Lister
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(lister procurement.Lister, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{lister: lister, logger: logger, now: time.Now}
}

// GenerateDigest synthesizes one unfiltered page and summarizes it.
func (s *Service) GenerateDigest(ctx context.Context, pageSize int) (models.Digest, error) {
	page, err := s.lister.ListPurchaseOrders(ctx, models.Filter{}, pageSize, 0)
	if err != nil {
		return models.Digest{}, fmt.Errorf("generate digest page: %w", err)
	}

	digest := Summarize(s.lister.VariantName(), page.Data)
	digest.GeneratedAt = s.now().UTC()
	return digest, nil
}

// Summarize aggregates status counts, currency totals and supplier concentration.
func Summarize(variant string, orders []models.PurchaseOrder) models.Digest {
	digest := models.Digest{
		Variant:          variant,
		Orders:           len(orders),
		StatusCounts:     map[string]int{},
		TotalsByCurrency: map[string]float64{},
	}

	perSupplier := map[string]int{}
	for _, po := range orders {
		digest.LineItems += len(po.Items)
		digest.StatusCounts[string(po.Status)]++
		digest.TotalsByCurrency[po.Currency] = procurement.SumNet(digest.TotalsByCurrency[po.Currency], po.TotalValue)
		perSupplier[po.SupplierID]++

		if digest.EarliestCreated == "" || po.CreatedDate < digest.EarliestCreated {
			digest.EarliestCreated = po.CreatedDate
		}
		if po.CreatedDate > digest.LatestCreated {
			digest.LatestCreated = po.CreatedDate
		}
	}

	if len(orders) == 0 {
		return digest
	}

	suppliers := make([]string, 0, len(perSupplier))
	for id := range perSupplier {
		suppliers = append(suppliers, id)
	}
	// ties resolve to the lexically smallest id
	sort.Slice(suppliers, func(i, j int) bool {
		if perSupplier[suppliers[i]] != perSupplier[suppliers[j]] {
			return perSupplier[suppliers[i]] > perSupplier[suppliers[j]]
		}
		return suppliers[i] < suppliers[j]
	})

	digest.TopSupplier = suppliers[0]
	digest.TopSupplierShare = procurement.Round2(float64(perSupplier[suppliers[0]]) / float64(len(orders)) * 100)
	return digest
}

// Format renders a digest as a short operator-facing text block.
func Format(d models.Digest) string {
	if d.Orders == 0 {
		return fmt.Sprintf("Procurement digest (%s): no orders generated.", d.Variant)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Procurement digest (%s): %d orders, %d line items, created %s to %s.\n",
		d.Variant, d.Orders, d.LineItems, d.EarliestCreated, d.LatestCreated)

	statuses := make([]string, 0, len(d.StatusCounts))
	for status := range d.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	b.WriteString("Status:")
	for _, status := range statuses {
		fmt.Fprintf(&b, " %s=%d", status, d.StatusCounts[status])
	}
	b.WriteString("\n")

	currencies := make([]string, 0, len(d.TotalsByCurrency))
	for currency := range d.TotalsByCurrency {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)
	b.WriteString("Totals:")
	for _, currency := range currencies {
		fmt.Fprintf(&b, " %s %.2f", currency, d.TotalsByCurrency[currency])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Top supplier %s with %.2f%% of orders.", d.TopSupplier, d.TopSupplierShare)
	return b.String()
}
