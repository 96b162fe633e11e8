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

// InsertWorkout stores a workout for a user.
func InsertWorkout(ctx context.Context, w models.Workout) (primitive.ObjectID, error) {
	if workoutsColl == nil {
		return primitive.NilObjectID, fmt.Errorf("workouts collection not initialized")
	}
	res, err := workoutsColl.InsertOne(ctx, w)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindWorkoutsByUser lists a user's workouts newest first.
func FindWorkoutsByUser(ctx context.Context, user string) ([]models.Workout, error) {
	if workoutsColl == nil {
		return nil, fmt.Errorf("workouts collection not initialized")
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := workoutsColl.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Workout
	for cur.Next(ctx) {
		var w models.Workout
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, cur.Err()
}

// GetWorkout fetches a workout by id, scoped to its owner.
func GetWorkout(ctx context.Context, id, user string) (models.Workout, error) {
	var w models.Workout
	if workoutsColl == nil {
		return w, fmt.Errorf("workouts collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return w, ErrNotFound
	}
	err = workoutsColl.FindOne(ctx, bson.M{"_id": oid, "user": user}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return w, ErrNotFound
	}
	return w, err
}

// UpdateWorkout applies a partial update to an owned workout and returns the result.
func UpdateWorkout(ctx context.Context, id, user string, set bson.M) (models.Workout, error) {
	var w models.Workout
	if workoutsColl == nil {
		return w, fmt.Errorf("workouts collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return w, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = workoutsColl.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user": user}, bson.M{"$set": set}, opts).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return w, ErrNotFound
	}
	return w, err
}

// DeleteWorkout removes an owned workout.
func DeleteWorkout(ctx context.Context, id, user string) error {
	if workoutsColl == nil {
		return fmt.Errorf("workouts collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := workoutsColl.DeleteOne(ctx, bson.M{"_id": oid, "user": user})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
