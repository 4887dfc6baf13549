package services

import (
	"context"

	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/repos"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type CompanyService interface {
	Get(ctx context.Context, name string) (*types.Company, error)
	Update(ctx context.Context, name string, fields map[string]interface{}) error
	Delete(ctx context.Context, name string) error
	TotalPaid(ctx context.Context, name string) (*types.CompanyPaid, error)
}

type companyService struct {
	log         *logger.Logger
	companyRepo repos.CompanyRepo
	orderRepo   repos.OrderRepo
}

func NewCompanyService(log *logger.Logger, companyRepo repos.CompanyRepo, orderRepo repos.OrderRepo) CompanyService {
	serviceLog := log.With("service", "CompanyService")
	return &companyService{
		log:         serviceLog,
		companyRepo: companyRepo,
		orderRepo:   orderRepo,
	}
}

// Get returns nil for an unknown name; absence is not an error.
func (cs *companyService) Get(ctx context.Context, name string) (*types.Company, error) {
	return cs.companyRepo.GetByName(ctx, name)
}

func (cs *companyService) Update(ctx context.Context, name string, fields map[string]interface{}) error {
	return cs.companyRepo.UpdateFields(ctx, name, fields)
}

func (cs *companyService) Delete(ctx context.Context, name string) error {
	return cs.companyRepo.DeleteByName(ctx, name)
}

// TotalPaid sums the price of every order for the company; nil when the
// company has no orders.
func (cs *companyService) TotalPaid(ctx context.Context, name string) (*types.CompanyPaid, error) {
	return cs.orderRepo.TotalPaid(ctx, name)
}
