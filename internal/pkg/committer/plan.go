// Package committer collects Spanner mutations into atomic commit plans.
//
// Repositories never apply writes themselves: they return mutations, the
// usecase stages them in a CommitPlan, and the plan is applied as one
// indivisible Spanner commit. Either every staged mutation applies or none
// do, which is the only consistency primitive the inventory core relies on.
//
// The typical flow in a usecase is:
//
//	product, err := repo.GetByID(ctx, productID)
//	// mutate the aggregate ...
//	plan := committer.NewPlan()
//	mut, err := repo.UpdateMut(product)
//	plan.Add(mut)
//	plan.Add(outboxRepo.InsertMut(event))
//	return committer.Apply(ctx, plan)
//
// Sale registration additionally needs stock decrements to be conditional on
// current stock, so the Committer exposes ApplyWithStockGuard: a read-write
// transaction that re-reads each product's stock, rejects the whole commit
// on any shortfall, and writes the decrements together with the staged plan.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/models/m_product"
)

// CommitPlan is a typed wrapper around Spanner mutations.
// It collects mutations from multiple sources and applies them atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// StockDemand is one product's stock requirement inside a guarded commit.
type StockDemand struct {
	ProductID string
	Quantity  int64
}

// mergeDemands combines demands for the same product into one, preserving
// first-seen order. Guarded commits must read and decrement each product
// exactly once: transactional reads do not observe buffered writes, so two
// demands for one product would each buffer an absolute stock value computed
// from the same pre-transaction read and the last buffered write would win.
func mergeDemands(demands []StockDemand) []StockDemand {
	if len(demands) < 2 {
		return demands
	}
	index := make(map[string]int, len(demands))
	merged := make([]StockDemand, 0, len(demands))
	for _, demand := range demands {
		if pos, seen := index[demand.ProductID]; seen {
			merged[pos].Quantity += demand.Quantity
			continue
		}
		index[demand.ProductID] = len(merged)
		merged = append(merged, demand)
	}
	return merged
}

// StockShortfallError reports a product whose current stock cannot cover the
// demanded quantity at commit time. The whole commit is rejected.
type StockShortfallError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

// Applier executes CommitPlans. Usecases depend on this interface so tests
// can substitute an in-memory implementation.
type Applier interface {
	// Apply executes the CommitPlan atomically.
	Apply(ctx context.Context, plan *CommitPlan) error

	// ApplyWithStockGuard executes the CommitPlan in a read-write
	// transaction that also decrements stock for each demand, verifying
	// sufficiency against the stock read inside the transaction.
	ApplyWithStockGuard(ctx context.Context, demands []StockDemand, plan *CommitPlan) error
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner commit.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // Nothing to commit
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyWithStockGuard re-reads each demanded product's stock inside a
// read-write transaction, fails the whole commit with StockShortfallError if
// any demand exceeds it, and otherwise writes the decremented stock levels
// in the same transaction as the staged plan. This is the compare-and-swap
// that closes the race window between cart validation and commit: two
// concurrent sales of the last unit cannot both succeed.
func (c *Committer) ApplyWithStockGuard(ctx context.Context, demands []StockDemand, plan *CommitPlan) error {
	if plan.IsEmpty() && len(demands) == 0 {
		return nil
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		model := m_product.NewModel()

		for _, demand := range mergeDemands(demands) {
			row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{demand.ProductID}, []string{m_product.Stock})
			if err != nil {
				return fmt.Errorf("failed to read stock for product %s: %w", demand.ProductID, err)
			}

			var stock int64
			if err := row.Column(0, &stock); err != nil {
				return fmt.Errorf("failed to parse stock for product %s: %w", demand.ProductID, err)
			}

			if stock < demand.Quantity {
				return &StockShortfallError{
					ProductID: demand.ProductID,
					Requested: demand.Quantity,
					Available: stock,
				}
			}

			mut := model.UpdateMut(demand.ProductID, map[string]interface{}{
				m_product.Stock: stock - demand.Quantity,
			})
			if err := txn.BufferWrite([]*spanner.Mutation{mut}); err != nil {
				return fmt.Errorf("failed to buffer stock update: %w", err)
			}
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		var shortfall *StockShortfallError
		if errors.As(err, &shortfall) {
			return shortfall
		}
		return fmt.Errorf("failed to apply guarded commit plan: %w", err)
	}

	return nil
}
