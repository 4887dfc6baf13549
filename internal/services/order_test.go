package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/parser"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

func TestCreateOrdersUpsertsDistinctCompanies(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	companyRepo := newFakeCompanyRepo()
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	text := `001, Acme, Addr 1, Widget, 10, USD
002, Acme, Addr 2, Gadget, 20, USD
003, Globex, Addr 3, Widget, 5, EUR
004, Acme, Addr 4, Widget, 7, USD`

	inserted, err := svc.CreateOrders(context.Background(), text)
	if err != nil {
		t.Fatalf("CreateOrders returned error: %v", err)
	}
	if len(inserted) != 4 {
		t.Fatalf("expected 4 inserted orders, got %d", len(inserted))
	}
	for _, order := range inserted {
		if order.ID.IsZero() {
			t.Fatalf("inserted order missing id: %+v", order)
		}
	}
	if len(companyRepo.upserts) != 2 {
		t.Fatalf("expected 2 company upserts, got %d: %v", len(companyRepo.upserts), companyRepo.upserts)
	}
	upserted := append([]string{}, companyRepo.upserts...)
	sort.Strings(upserted)
	if upserted[0] != "Acme" || upserted[1] != "Globex" {
		t.Fatalf("upserted names wrong: %v", companyRepo.upserts)
	}
}

func TestCreateOrdersParseFailureInsertsNothing(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	companyRepo := newFakeCompanyRepo()
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	_, err := svc.CreateOrders(context.Background(), `001, Acme, "broken`)
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type %T, want *parser.ParseError", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Fatalf("orders inserted despite parse failure: %+v", orderRepo.orders)
	}
	if len(companyRepo.upserts) != 0 {
		t.Fatalf("companies upserted despite parse failure: %v", companyRepo.upserts)
	}
}

func TestCreateOrdersCompanyUpsertFailureIsSwallowed(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	companyRepo := newFakeCompanyRepo()
	companyRepo.upsertErr = errors.New("registry down")
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	inserted, err := svc.CreateOrders(context.Background(), "001, Acme, Addr 1, Widget, 10, USD")
	if err != nil {
		t.Fatalf("CreateOrders propagated best-effort upsert failure: %v", err)
	}
	if len(inserted) != 1 {
		t.Fatalf("expected 1 inserted order, got %d", len(inserted))
	}
}

func TestCreateOrdersStorageFailurePropagates(t *testing.T) {
	orderRepo := &fakeOrderRepo{createErr: errors.New("connection reset")}
	companyRepo := newFakeCompanyRepo()
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	_, err := svc.CreateOrders(context.Background(), "001, Acme, Addr 1, Widget, 10, USD")
	if err == nil {
		t.Fatal("CreateOrders succeeded despite storage failure")
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		t.Fatalf("storage failure surfaced as parse error: %v", err)
	}
	if len(companyRepo.upserts) != 0 {
		t.Fatalf("companies upserted despite failed insert: %v", companyRepo.upserts)
	}
}

func TestDeleteOrderIsIdempotent(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	companyRepo := newFakeCompanyRepo()
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	inserted, err := svc.CreateOrders(context.Background(), "001, Acme, Addr 1, Widget, 10, USD")
	if err != nil {
		t.Fatalf("CreateOrders returned error: %v", err)
	}
	id := inserted[0].ID.Hex()

	if err := svc.DeleteOrder(context.Background(), id); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Fatalf("order not removed: %+v", orderRepo.orders)
	}
	if err := svc.DeleteOrder(context.Background(), id); err != nil {
		t.Fatalf("second delete of same id errored: %v", err)
	}
}

func TestDeleteOrderMalformedIDIsNoop(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	companyRepo := newFakeCompanyRepo()
	svc := NewOrderService(testLogger(t), orderRepo, companyRepo)

	if err := svc.DeleteOrder(context.Background(), "not-an-object-id"); err != nil {
		t.Fatalf("delete of malformed id errored: %v", err)
	}
	if len(orderRepo.deleted) != 0 {
		t.Fatalf("repo delete called for malformed id: %v", orderRepo.deleted)
	}
}
