package procurement

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/catalog"
	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

// ErrAttemptsExhausted indicates the retry strategy could not fill a page within the
// attempt budget, usually because the filters are unsatisfiable.
var ErrAttemptsExhausted = errors.New("filters not satisfiable within attempt budget")

// ErrInvalidPage indicates the limit or offset is outside the accepted window.
var ErrInvalidPage = errors.New("invalid page window")

const (
	DefaultLimit           = 100
	MaxLimit               = 1000
	DefaultPaginationTotal = 1250
	DefaultMaxAttempts     = 100000

	ctxCheckInterval = 256
)

var tracer = otel.Tracer("github.com/mamadbah2/procurement-mock/internal/service/procurement")

// Lister is the read operation the HTTP layer and the scheduler depend on.
type Lister interface {
	ListPurchaseOrders(ctx context.Context, filter models.Filter, limit, offset int) (models.Page, error)
	VariantName() string
}

// Options tunes a Service. Zero values fall back to the defaults.
type Options struct {
	PaginationTotal int
	MaxAttempts     int
	// Seed yields the PCG seed for each request's random source.
	Seed func() (uint64, uint64)
	Now  func() time.Time
}

// Service generates filtered pages of synthetic purchase orders.
type Service struct {
	variant catalog.Variant
	opts    Options
	logger  *zap.Logger
}

// NewService wires a generator for one catalog variant.
func NewService(variant catalog.Variant, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PaginationTotal <= 0 {
		opts.PaginationTotal = DefaultPaginationTotal
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Seed == nil {
		opts.Seed = func() (uint64, uint64) { return rand.Uint64(), rand.Uint64() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{variant: variant, opts: opts, logger: logger}
}

// VariantName reports which catalog this service generates from.
func (s *Service) VariantName() string {
	return s.variant.Name
}

// ListPurchaseOrders synthesizes records starting at sequence offset+1, keeps those
// matching the filter and wraps them in the pagination envelope. The sequence number
// advances on every attempt, accepted or not.
func (s *Service) ListPurchaseOrders(ctx context.Context, filter models.Filter, limit, offset int) (models.Page, error) {
	if limit < 1 || limit > MaxLimit || offset < 0 {
		return models.Page{}, fmt.Errorf("%w: limit=%d offset=%d", ErrInvalidPage, limit, offset)
	}
	if !s.variant.CompanyFilter {
		filter.CompanyCode = ""
	}

	ctx, span := tracer.Start(ctx, "procurement.ListPurchaseOrders", trace.WithAttributes(
		attribute.String("procurement.variant", s.variant.Name),
		attribute.String("procurement.strategy", string(s.variant.Strategy)),
		attribute.Int("procurement.limit", limit),
		attribute.Int("procurement.offset", offset),
	))
	defer span.End()

	synth := NewSynthesizer(s.variant, rand.New(rand.NewPCG(s.opts.Seed())), s.opts.Now)

	var (
		records  []models.PurchaseOrder
		attempts int
		err      error
	)
	switch s.variant.Strategy {
	case catalog.StrategyRetry:
		records, attempts, err = s.fillRetry(ctx, synth, filter, limit, offset)
	default:
		records, attempts, err = s.fillBounded(ctx, synth, filter, limit, offset)
	}
	span.SetAttributes(attribute.Int("procurement.attempts", attempts), attribute.Int("procurement.records", len(records)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.Page{}, err
	}

	s.logger.Debug("page generated",
		zap.String("variant", s.variant.Name),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.Int("attempts", attempts),
		zap.Int("records", len(records)),
		zap.Bool("filtered", !filter.IsEmpty()))

	return models.Page{
		Data:       records,
		Pagination: models.NewPagination(s.opts.PaginationTotal, limit, offset),
	}, nil
}

// fillBounded makes exactly limit attempts and keeps whatever matches.
func (s *Service) fillBounded(ctx context.Context, synth *Synthesizer, filter models.Filter, limit, offset int) ([]models.PurchaseOrder, int, error) {
	records := make([]models.PurchaseOrder, 0, limit)
	for i := 0; i < limit; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, i, err
			}
		}
		po := synth.PurchaseOrder(offset + 1 + i)
		if filter.Matches(po) {
			records = append(records, po)
		}
	}
	return records, limit, nil
}

// fillRetry generates until limit records match, bounded by the attempt budget and
// the request context.
func (s *Service) fillRetry(ctx context.Context, synth *Synthesizer, filter models.Filter, limit, offset int) ([]models.PurchaseOrder, int, error) {
	records := make([]models.PurchaseOrder, 0, limit)
	attempts := 0
	for len(records) < limit {
		if attempts >= s.opts.MaxAttempts {
			s.logger.Warn("attempt budget exhausted",
				zap.String("variant", s.variant.Name),
				zap.Int("attempts", attempts),
				zap.Int("matched", len(records)),
				zap.Int("limit", limit))
			return nil, attempts, fmt.Errorf("%w: matched %d of %d after %d attempts", ErrAttemptsExhausted, len(records), limit, attempts)
		}
		if attempts%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, attempts, err
			}
		}
		po := synth.PurchaseOrder(offset + 1 + attempts)
		attempts++
		if filter.Matches(po) {
			records = append(records, po)
		}
	}
	return records, attempts, nil
}
