package store

import (
	"context"
	"errors"
	"fmt"

	"fitapi/config"
	"fitapi/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("not found")

var (
	client           *mongo.Client
	testimonialsColl *mongo.Collection
	workoutsColl     *mongo.Collection
	plansColl        *mongo.Collection
	chatColl         *mongo.Collection
)

// Init connects to MongoDB, pings, ensures indexes and prepares collections.
func Init(ctx context.Context) error {
	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	db := client.Database(config.MongoDB)
	testimonialsColl = db.Collection("testimonials")
	workoutsColl = db.Collection("workouts")
	plansColl = db.Collection("nutrition_plans")
	chatColl = db.Collection("chat_messages")
	if err := ensureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	logger.Info("mongo initialized", logger.FieldKV("uri", config.MongoURI), logger.FieldKV("db", config.MongoDB))
	return nil
}

// Close disconnects the client.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping health check.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return client.Ping(ctx, readpref.Primary())
}

func ensureIndexes(ctx context.Context) error {
	_, err := testimonialsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_status_createdAt")},
		{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetName("idx_user")},
	})
	if err != nil {
		return err
	}
	_, err = workoutsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_user_createdAt")},
	})
	if err != nil {
		return err
	}
	_, err = plansColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_user_createdAt")},
	})
	if err != nil {
		return err
	}
	_, err = chatColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "message_id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_message_id")},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}}, Options: options.Index().SetName("idx_user_timestamp")},
	})
	return err
}
