package services

import (
	"context"
	"fmt"

	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/repos"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type StatsService interface {
	OrderFrequency(ctx context.Context) ([]types.OrderItemCount, error)
	OrdersByCompany(ctx context.Context, companyName string) ([]*types.Order, error)
	CompaniesByOrderItem(ctx context.Context, orderItem string) ([]*types.Company, error)
}

type statsService struct {
	log         *logger.Logger
	orderRepo   repos.OrderRepo
	companyRepo repos.CompanyRepo
}

func NewStatsService(log *logger.Logger, orderRepo repos.OrderRepo, companyRepo repos.CompanyRepo) StatsService {
	serviceLog := log.With("service", "StatsService")
	return &statsService{
		log:         serviceLog,
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
	}
}

func (ss *statsService) OrderFrequency(ctx context.Context) ([]types.OrderItemCount, error) {
	return ss.orderRepo.ItemFrequency(ctx)
}

func (ss *statsService) OrdersByCompany(ctx context.Context, companyName string) ([]*types.Order, error) {
	return ss.orderRepo.ByCompany(ctx, companyName)
}

// CompaniesByOrderItem filters orders to the given item, dedupes the company
// names, then joins against the company registry. Only companies that have a
// registry record appear in the result.
func (ss *statsService) CompaniesByOrderItem(ctx context.Context, orderItem string) ([]*types.Company, error) {
	names, err := ss.orderRepo.DistinctCompanyNames(ctx, orderItem)
	if err != nil {
		return nil, fmt.Errorf("error resolving companies for order item: %w", err)
	}
	return ss.companyRepo.GetByNames(ctx, names)
}
