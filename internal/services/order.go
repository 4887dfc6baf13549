package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/parser"
	"github.com/yungbote/orderdesk-backend/internal/repos"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type OrderService interface {
	CreateOrders(ctx context.Context, text string) ([]*types.Order, error)
	ListOrders(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type orderService struct {
	log         *logger.Logger
	orderRepo   repos.OrderRepo
	companyRepo repos.CompanyRepo
}

func NewOrderService(log *logger.Logger, orderRepo repos.OrderRepo, companyRepo repos.CompanyRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		log:         serviceLog,
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
	}
}

// CreateOrders parses the submitted text and bulk-inserts the orders. The
// per-company registry upsert that follows is best-effort: orders are the
// authoritative data, so a failed upsert is logged and never propagated.
func (os *orderService) CreateOrders(ctx context.Context, text string) ([]*types.Order, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	orders := make([]*types.Order, 0, len(parsed))
	for i := range parsed {
		orders = append(orders, &parsed[i])
	}

	inserted, err := os.orderRepo.Create(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("error creating orders: %w", err)
	}

	// The upserts are independent fire-and-log writes; one failing or
	// stalling must not hold up the rest of the batch.
	g := new(errgroup.Group)
	g.SetLimit(4)
	for _, name := range distinctCompanyNames(inserted) {
		g.Go(func() error {
			if err := os.companyRepo.UpsertIfAbsent(ctx, name); err != nil {
				os.log.Warn("Company upsert failed after order insert", "companyName", name, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return inserted, nil
}

func (os *orderService) ListOrders(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error) {
	return os.orderRepo.List(ctx, filter)
}

// DeleteOrder removes at most one order. Unknown and malformed ids are both
// no-ops, matching the delete-absent semantics of the store.
func (os *orderService) DeleteOrder(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		os.log.Debug("Ignoring delete for malformed order id", "id", id)
		return nil
	}
	return os.orderRepo.DeleteByID(ctx, oid)
}

// distinctCompanyNames dedupes the batch before upserting so one batch never
// issues two upserts for the same name. First-seen order is kept.
func distinctCompanyNames(orders []*types.Order) []string {
	seen := map[string]struct{}{}
	names := []string{}
	for _, order := range orders {
		if order.CompanyName == "" {
			continue
		}
		if _, ok := seen[order.CompanyName]; ok {
			continue
		}
		seen[order.CompanyName] = struct{}{}
		names = append(names, order.CompanyName)
	}
	return names
}
