package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/utils"
)

const (
	OrdersCollection    = "orders"
	CompaniesCollection = "companies"
)

// MongoService owns the process-wide Mongo client: connected once at
// startup, injected into the repos, closed on shutdown.
type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(ctx context.Context, log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	log.Info("Loading environment variables...")
	mongoURI := utils.GetEnv("MONGO_URI", "mongodb://localhost:27017", log)
	mongoDB := utils.GetEnv("MONGO_DB", "orderdesk", log)
	connectTimeout := utils.GetEnvAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10, log)

	log.Info("Connecting to Mongo...")
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(connectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		serviceLog.Error("Failed to connect to Mongo", "error", err)
		return nil, fmt.Errorf("failed to connect to Mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		serviceLog.Error("Failed to ping Mongo", "error", err)
		return nil, fmt.Errorf("failed to ping Mongo: %w", err)
	}

	return &MongoService{
		client: client,
		db:     client.Database(mongoDB),
		log:    serviceLog,
	}, nil
}

// EnsureIndexes creates the unique index backing the at-most-one-company-per-
// name invariant. Concurrent upserts for the same name race on this index,
// not on application-level locking.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	s.log.Info("Ensuring Mongo indexes...")
	_, err := s.db.Collection(CompaniesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "companyName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		s.log.Error("Failed to create companies index", "error", err)
		return fmt.Errorf("failed to create companies index: %w", err)
	}
	return nil
}

func (s *MongoService) DB() *mongo.Database {
	return s.db
}

func (s *MongoService) Close(ctx context.Context) error {
	s.log.Info("Disconnecting from Mongo...")
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from Mongo: %w", err)
	}
	return nil
}
