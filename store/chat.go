package store

import (
	"context"
	"fmt"

	"fitapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertChatMessage performs an idempotent insert keyed on message_id, so a
// replayed Kafka record never duplicates history.
func InsertChatMessage(ctx context.Context, msg models.ChatMessage) error {
	if chatColl == nil {
		return fmt.Errorf("chat collection not initialized")
	}
	filter := bson.M{"message_id": msg.MessageID}
	update := bson.M{"$setOnInsert": msg}
	opts := options.Update().SetUpsert(true)
	_, err := chatColl.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindChatHistory returns a user's chat messages oldest first.
func FindChatHistory(ctx context.Context, user string, limit int64) ([]models.ChatMessage, error) {
	if chatColl == nil {
		return nil, fmt.Errorf("chat collection not initialized")
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := chatColl.Find(ctx, bson.M{"user_id": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.ChatMessage
	for cur.Next(ctx) {
		var m models.ChatMessage
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// DeleteChatHistory clears a user's chat history and returns the removed count.
func DeleteChatHistory(ctx context.Context, user string) (int64, error) {
	if chatColl == nil {
		return 0, fmt.Errorf("chat collection not initialized")
	}
	res, err := chatColl.DeleteMany(ctx, bson.M{"user_id": user})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
