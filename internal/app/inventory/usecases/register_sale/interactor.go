package register_sale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// RequestLine is one cart line in a sale registration request.
type RequestLine struct {
	ProductID string
	Name      string
	UnitPrice *domain.Money
	Quantity  int64
}

// Request contains the data needed to register a sale.
type Request struct {
	Lines          []RequestLine
	Total          *domain.Money // claimed by the caller, recomputed server-side
	UserID         string
	IdempotencyKey string // optional
}

// Response reports the recorded sale.
type Response struct {
	SaleID string
}

// Interactor handles the register sale use case.
type Interactor struct {
	saleRepo    contracts.SaleRepository
	productRepo contracts.ProductRepository
	outboxRepo  contracts.OutboxRepository
	committer   committer.Applier
}

// NewInteractor creates a new register sale interactor.
func NewInteractor(
	saleRepo contracts.SaleRepository,
	productRepo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
) *Interactor {
	return &Interactor{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
	}
}

// Execute validates the cart, records the sale, and decrements stock for
// every line in a single transaction. Stock is checked twice: once against
// the validation-time read, and again inside the commit transaction so a
// concurrent sale cannot push stock below zero.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Deduplicate retried registrations
	if req.IdempotencyKey != "" {
		existingID, err := i.saleRepo.FindIDByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			return &Response{SaleID: existingID}, nil
		}
		if !errors.Is(err, domain.ErrSaleNotFound) {
			return nil, err
		}
	}

	// 2. Build the aggregate (validates lines and recomputes the total)
	lines := make([]domain.LineItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, domain.LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	saleID := uuid.New().String()
	sale, err := domain.NewSale(saleID, lines, req.Total, req.UserID, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	// 3. Pre-validate stock against a fresh read, fail-fast before writing.
	// Lines for the same product are aggregated first: each product must
	// cover the cart's combined quantity, and the guarded commit gets one
	// demand per product so decrements never overwrite each other.
	required := make(map[string]int64, len(sale.Lines()))
	productOrder := make([]string, 0, len(sale.Lines()))
	for _, line := range sale.Lines() {
		if _, seen := required[line.ProductID]; !seen {
			productOrder = append(productOrder, line.ProductID)
		}
		required[line.ProductID] += line.Quantity
	}

	demands := make([]committer.StockDemand, 0, len(productOrder))
	for _, productID := range productOrder {
		product, err := i.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound)
			}
			return nil, err
		}
		quantity := required[productID]
		if product.Stock() < quantity {
			return nil, fmt.Errorf("product %s has %d units, requested %d: %w",
				product.Name(), product.Stock(), quantity, domain.ErrInsufficientStock)
		}
		demands = append(demands, committer.StockDemand{
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	// 4. Stage the sale row and its event
	plan := committer.NewPlan()

	saleMut, err := i.saleRepo.InsertMut(sale)
	if err != nil {
		return nil, fmt.Errorf("failed to build sale insert: %w", err)
	}
	plan.Add(saleMut)

	event := &domain.SaleRegisteredEvent{
		SaleID:    sale.ID(),
		UserID:    sale.UserID(),
		Total:     sale.Total().String(),
		LineCount: len(sale.Lines()),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	// 5. Commit with the stock guard: the transaction re-reads each product's
	// stock and buffers the decrement alongside the plan
	if err := i.committer.ApplyWithStockGuard(ctx, demands, plan); err != nil {
		var shortfall *committer.StockShortfallError
		if errors.As(err, &shortfall) {
			return nil, fmt.Errorf("product %s has %d units, requested %d: %w",
				shortfall.ProductID, shortfall.Available, shortfall.Requested, domain.ErrInsufficientStock)
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Response{SaleID: sale.ID()}, nil
}
