package store

import (
	"context"
	"fmt"

	"fitapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertPlan stores a nutrition plan for a user.
func InsertPlan(ctx context.Context, p models.NutritionPlan) (primitive.ObjectID, error) {
	if plansColl == nil {
		return primitive.NilObjectID, fmt.Errorf("nutrition plans collection not initialized")
	}
	res, err := plansColl.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindPlansByUser lists a user's nutrition plans newest first.
func FindPlansByUser(ctx context.Context, user string) ([]models.NutritionPlan, error) {
	if plansColl == nil {
		return nil, fmt.Errorf("nutrition plans collection not initialized")
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := plansColl.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.NutritionPlan
	for cur.Next(ctx) {
		var p models.NutritionPlan
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// GetPlan fetches a nutrition plan by id, scoped to its owner.
func GetPlan(ctx context.Context, id, user string) (models.NutritionPlan, error) {
	var p models.NutritionPlan
	if plansColl == nil {
		return p, fmt.Errorf("nutrition plans collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return p, ErrNotFound
	}
	err = plansColl.FindOne(ctx, bson.M{"_id": oid, "user": user}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return p, ErrNotFound
	}
	return p, err
}

// DeletePlan removes an owned nutrition plan.
func DeletePlan(ctx context.Context, id, user string) error {
	if plansColl == nil {
		return fmt.Errorf("nutrition plans collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := plansColl.DeleteOne(ctx, bson.M{"_id": oid, "user": user})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
