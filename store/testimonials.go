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

// InsertTestimonial stores a new testimonial and returns its assigned id.
func InsertTestimonial(ctx context.Context, t models.Testimonial) (primitive.ObjectID, error) {
	if testimonialsColl == nil {
		return primitive.NilObjectID, fmt.Errorf("testimonials collection not initialized")
	}
	res, err := testimonialsColl.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindTestimonials runs a filtered, sorted, limited query with an optional projection.
func FindTestimonials(ctx context.Context, filter bson.M, sort bson.D, projection bson.M, limit int64) ([]models.Testimonial, error) {
	if testimonialsColl == nil {
		return nil, fmt.Errorf("testimonials collection not initialized")
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := testimonialsColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Testimonial
	for cur.Next(ctx) {
		var t models.Testimonial
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

// CountTestimonials returns the number of documents matching the filter.
func CountTestimonials(ctx context.Context, filter bson.M) (int64, error) {
	if testimonialsColl == nil {
		return 0, fmt.Errorf("testimonials collection not initialized")
	}
	return testimonialsColl.CountDocuments(ctx, filter)
}

// GetTestimonial fetches a single testimonial by hex id.
func GetTestimonial(ctx context.Context, id string) (models.Testimonial, error) {
	var t models.Testimonial
	if testimonialsColl == nil {
		return t, fmt.Errorf("testimonials collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return t, ErrNotFound
	}
	err = testimonialsColl.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return t, ErrNotFound
	}
	return t, err
}

// UpdateTestimonial applies a partial update and returns the updated document.
func UpdateTestimonial(ctx context.Context, id string, set bson.M) (models.Testimonial, error) {
	var t models.Testimonial
	if testimonialsColl == nil {
		return t, fmt.Errorf("testimonials collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return t, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = testimonialsColl.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return t, ErrNotFound
	}
	return t, err
}

// DeleteTestimonial removes a testimonial by hex id.
func DeleteTestimonial(ctx context.Context, id string) error {
	if testimonialsColl == nil {
		return fmt.Errorf("testimonials collection not initialized")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := testimonialsColl.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindTestimonialsByUser returns the caller's own entries regardless of status.
func FindTestimonialsByUser(ctx context.Context, user string) ([]models.Testimonial, error) {
	return FindTestimonials(ctx, bson.M{"user": user}, bson.D{{Key: "createdAt", Value: -1}}, nil, 0)
}
