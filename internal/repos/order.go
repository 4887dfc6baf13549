package repos

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/orderdesk-backend/internal/db"
	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, orders []*types.Order) ([]*types.Order, error)
	List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ItemFrequency(ctx context.Context) ([]types.OrderItemCount, error)
	ByCompany(ctx context.Context, companyName string) ([]*types.Order, error)
	TotalPaid(ctx context.Context, companyName string) (*types.CompanyPaid, error)
	DistinctCompanyNames(ctx context.Context, orderItem string) ([]string, error)
}

type orderRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewOrderRepo(database *mongo.Database, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{coll: database.Collection(db.OrdersCollection), log: repoLog}
}

func (r *orderRepo) Create(ctx context.Context, orders []*types.Order) ([]*types.Order, error) {
	if len(orders) == 0 {
		return []*types.Order{}, nil
	}

	docs := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		docs = append(docs, order)
	}
	result, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("error inserting orders: %w", err)
	}
	for i, insertedID := range result.InsertedIDs {
		if oid, ok := insertedID.(primitive.ObjectID); ok {
			orders[i].ID = oid
		}
	}
	return orders, nil
}

func (r *orderRepo) List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error) {
	cursor, err := r.coll.Find(ctx, listFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	results := []*types.Order{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}
	return results, nil
}

func (r *orderRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	return nil
}

func (r *orderRepo) ItemFrequency(ctx context.Context) ([]types.OrderItemCount, error) {
	cursor, err := r.coll.Aggregate(ctx, itemFrequencyPipeline())
	if err != nil {
		return nil, fmt.Errorf("error aggregating order frequency: %w", err)
	}
	results := []types.OrderItemCount{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding order frequency: %w", err)
	}
	return results, nil
}

func (r *orderRepo) ByCompany(ctx context.Context, companyName string) ([]*types.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companyName": companyName})
	if err != nil {
		return nil, fmt.Errorf("error listing orders for company: %w", err)
	}
	results := []*types.Order{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding orders for company: %w", err)
	}
	return results, nil
}

func (r *orderRepo) TotalPaid(ctx context.Context, companyName string) (*types.CompanyPaid, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"companyName": companyName}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$companyName",
			"amount": bson.M{"$sum": "$price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":         0,
			"companyName": "$_id",
			"amount":      1,
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating total paid: %w", err)
	}
	results := []types.CompanyPaid{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding total paid: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *orderRepo) DistinctCompanyNames(ctx context.Context, orderItem string) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "companyName", bson.M{"orderItem": orderItem})
	if err != nil {
		return nil, fmt.Errorf("error listing distinct company names: %w", err)
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// itemFrequencyPipeline groups orders by item and sorts descending by count.
// Grouping on the raw field keeps orders with an empty or missing orderItem
// in the result under the empty key instead of excluding them.
func itemFrequencyPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$orderItem",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
}

// listFilter builds the Find filter for an order listing. Filter values are
// matched as case-insensitive literal substrings, so regex metacharacters in
// the value must be escaped before they reach the $regex primitive.
func listFilter(filter types.OrderFilter) bson.M {
	query := bson.M{}
	if filter.CompanyName != "" {
		query["companyName"] = substringRegex(filter.CompanyName)
	}
	if filter.CustomerAddress != "" {
		query["customerAddress"] = substringRegex(filter.CustomerAddress)
	}
	return query
}

func substringRegex(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
