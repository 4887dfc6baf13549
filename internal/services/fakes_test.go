package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/orderdesk-backend/internal/types"
)

// fakeOrderRepo keeps orders in memory with the same semantics the mongo
// repo delegates to the store: ids assigned on insert, delete-absent no-op,
// exact matching for the aggregate queries.
type fakeOrderRepo struct {
	orders    []*types.Order
	createErr error
	deleted   []primitive.ObjectID
}

func (f *fakeOrderRepo) Create(ctx context.Context, orders []*types.Order) ([]*types.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, order := range orders {
		order.ID = primitive.NewObjectID()
		f.orders = append(f.orders, order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.deleted = append(f.deleted, id)
	for i, order := range f.orders {
		if order.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) ItemFrequency(ctx context.Context) ([]types.OrderItemCount, error) {
	counts := map[string]int64{}
	for _, order := range f.orders {
		counts[order.OrderItem]++
	}
	results := []types.OrderItemCount{}
	for item, count := range counts {
		results = append(results, types.OrderItemCount{OrderItem: item, Count: count})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Count > results[j].Count })
	return results, nil
}

func (f *fakeOrderRepo) ByCompany(ctx context.Context, companyName string) ([]*types.Order, error) {
	results := []*types.Order{}
	for _, order := range f.orders {
		if order.CompanyName == companyName {
			results = append(results, order)
		}
	}
	return results, nil
}

func (f *fakeOrderRepo) TotalPaid(ctx context.Context, companyName string) (*types.CompanyPaid, error) {
	found := false
	total := 0.0
	for _, order := range f.orders {
		if order.CompanyName == companyName {
			found = true
			total += order.Price
		}
	}
	if !found {
		return nil, nil
	}
	return &types.CompanyPaid{CompanyName: companyName, Amount: total}, nil
}

func (f *fakeOrderRepo) DistinctCompanyNames(ctx context.Context, orderItem string) ([]string, error) {
	seen := map[string]struct{}{}
	names := []string{}
	for _, order := range f.orders {
		if order.OrderItem != orderItem {
			continue
		}
		if _, ok := seen[order.CompanyName]; ok {
			continue
		}
		seen[order.CompanyName] = struct{}{}
		names = append(names, order.CompanyName)
	}
	return names, nil
}

// fakeCompanyRepo serializes upserts with a mutex because the service issues
// them concurrently.
type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*types.Company
	upserts   []string
	upsertErr error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*types.Company{}}
}

func (f *fakeCompanyRepo) GetByName(ctx context.Context, name string) (*types.Company, error) {
	return f.companies[name], nil
}

func (f *fakeCompanyRepo) GetByNames(ctx context.Context, names []string) ([]*types.Company, error) {
	results := []*types.Company{}
	for _, name := range names {
		if company, ok := f.companies[name]; ok {
			results = append(results, company)
		}
	}
	return results, nil
}

func (f *fakeCompanyRepo) UpsertIfAbsent(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, name)
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if _, ok := f.companies[name]; !ok {
		f.companies[name] = &types.Company{ID: primitive.NewObjectID(), CompanyName: name}
	}
	return nil
}

func (f *fakeCompanyRepo) UpdateFields(ctx context.Context, name string, fields map[string]interface{}) error {
	company, ok := f.companies[name]
	if !ok {
		return nil
	}
	if company.Info == nil {
		company.Info = map[string]interface{}{}
	}
	for k, v := range fields {
		if k == "companyName" {
			continue
		}
		company.Info[k] = v
	}
	return nil
}

func (f *fakeCompanyRepo) DeleteByName(ctx context.Context, name string) error {
	delete(f.companies, name)
	return nil
}
