package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/orderdesk-backend/internal/db"
	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type CompanyRepo interface {
	GetByName(ctx context.Context, name string) (*types.Company, error)
	GetByNames(ctx context.Context, names []string) ([]*types.Company, error)
	UpsertIfAbsent(ctx context.Context, name string) error
	UpdateFields(ctx context.Context, name string, fields map[string]interface{}) error
	DeleteByName(ctx context.Context, name string) error
}

type companyRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewCompanyRepo(database *mongo.Database, baseLog *logger.Logger) CompanyRepo {
	repoLog := baseLog.With("repo", "CompanyRepo")
	return &companyRepo{coll: database.Collection(db.CompaniesCollection), log: repoLog}
}

func (r *companyRepo) GetByName(ctx context.Context, name string) (*types.Company, error) {
	var company types.Company
	err := r.coll.FindOne(ctx, bson.M{"companyName": name}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching company: %w", err)
	}
	return &company, nil
}

func (r *companyRepo) GetByNames(ctx context.Context, names []string) ([]*types.Company, error) {
	results := []*types.Company{}
	if len(names) == 0 {
		return results, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"companyName": bson.M{"$in": names}})
	if err != nil {
		return nil, fmt.Errorf("error fetching companies: %w", err)
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding companies: %w", err)
	}
	return results, nil
}

// UpsertIfAbsent inserts a minimal record for the name unless one exists.
// The $setOnInsert upsert together with the unique companyName index keeps
// this at-most-one-per-name even under concurrent calls.
func (r *companyRepo) UpsertIfAbsent(ctx context.Context, name string) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"companyName": name},
		bson.M{"$setOnInsert": bson.M{"companyName": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("error upserting company: %w", err)
	}
	return nil
}

// UpdateFields merges fields into the record's info bag. The companyName key
// is immutable and stripped from the payload. An unknown name is not an
// error and has no effect.
func (r *companyRepo) UpdateFields(ctx context.Context, name string, fields map[string]interface{}) error {
	set := updateSet(fields)
	if len(set) == 0 {
		return nil
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"companyName": name}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}
	return nil
}

// updateSet builds the $set document for an info merge. The companyName key
// never makes it into the set; the rest land under the info bag.
func updateSet(fields map[string]interface{}) bson.M {
	set := bson.M{}
	for k, v := range fields {
		if k == "companyName" {
			continue
		}
		set["info."+k] = v
	}
	return set
}

func (r *companyRepo) DeleteByName(ctx context.Context, name string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"companyName": name}); err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}
	return nil
}
