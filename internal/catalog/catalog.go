package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

// ErrUnknownVariant indicates no catalog is registered under the requested name.
var ErrUnknownVariant = errors.New("unknown procurement variant")

const (
	VariantGeneric = "generic"
	VariantPacking = "packing"
	VariantFeed    = "feed"
)

// Strategy selects how a filtered page is filled.
type Strategy string

const (
	// StrategyBounded makes exactly limit attempts; the page may come back short.
	StrategyBounded Strategy = "bounded"
	// StrategyRetry keeps generating until limit records match the filter.
	StrategyRetry Strategy = "retry"
)

// DateRule selects how created and last-modified dates are drawn.
type DateRule string

const (
	// DatesTrailingYear draws both dates independently within the year before now.
	// Last-modified can precede created under this rule.
	DatesTrailingYear DateRule = "trailing_year"
	// DatesFixedYear draws created inside the catalog year and adds a small offset
	// for last-modified.
	DatesFixedYear DateRule = "fixed_year"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Variant is the configuration a generator is parameterized with.
type Variant struct {
	Name     string
	IDPrefix string

	Templates         []models.ItemTemplate
	FrequentSuppliers []string
	OtherSuppliers    []string
	FrequentWeight    int
	OtherWeight       int

	ItemCount Range
	Quantity  Range

	Plants       []string
	CompanyCodes []string
	DocCategory  string
	DocTypes     []string
	Currencies   []string
	Statuses     []models.OrderStatus

	// SeasonalOverride forces the first two templates for Jan-Feb and Mar-Apr orders.
	SeasonalOverride bool

	Dates             DateRule
	Year              int
	MaxModifiedOffset int // days, fixed-year rule only

	Strategy Strategy
	// CompanyFilter reports whether the company_code query filter applies.
	CompanyFilter bool
}

// Suppliers returns every supplier with its selection weight, frequent first.
func (v Variant) Suppliers() ([]string, []int) {
	ids := make([]string, 0, len(v.FrequentSuppliers)+len(v.OtherSuppliers))
	weights := make([]int, 0, cap(ids))
	for _, id := range v.FrequentSuppliers {
		ids = append(ids, id)
		weights = append(weights, v.FrequentWeight)
	}
	for _, id := range v.OtherSuppliers {
		ids = append(ids, id)
		weights = append(weights, v.OtherWeight)
	}
	return ids, weights
}

var registry = map[string]func() Variant{
	VariantGeneric: Generic,
	VariantPacking: Packing,
	VariantFeed:    Feed,
}

// Lookup resolves a variant by name, ignoring case and surrounding space.
func Lookup(name string) (Variant, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func numbered(format string, from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf(format, i))
	}
	return out
}

func defaultStatuses() []models.OrderStatus {
	return []models.OrderStatus{models.StatusReleased, models.StatusPending, models.StatusApproved}
}
