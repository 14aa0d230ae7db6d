package booking

import (
	"context"
	"fmt"
	"laundryroom-service/internal/pkg/constvars"
	"laundryroom-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

type userBookingsDocument struct {
	Bookings map[string]int `bson:"bookings"`
}

func (r *BookingMongoRepository) GetBookingsByUser(ctx context.Context, username string) (TakenSlots, error) {
	var doc userBookingsDocument
	err := r.Collection.FindOne(
		ctx,
		bson.M{"username": username},
		options.FindOne().SetProjection(bson.M{"bookings": 1, "_id": 0}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	taken := make(TakenSlots, len(doc.Bookings))
	for dateStr, slotID := range doc.Bookings {
		taken[dateStr] = append(taken[dateStr], SlotID(slotID))
	}
	return taken, nil
}

func (r *BookingMongoRepository) GetBookingsByOthers(ctx context.Context, username string) (TakenSlots, error) {
	cursor, err := r.Collection.Find(
		ctx,
		bson.M{"username": bson.M{"$ne": username}},
		options.Find().SetProjection(bson.M{"bookings": 1, "_id": 0}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	taken := make(TakenSlots)
	for cursor.Next(ctx) {
		var doc userBookingsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		for dateStr, slotID := range doc.Bookings {
			taken[dateStr] = append(taken[dateStr], SlotID(slotID))
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return taken, nil
}

// AddBooking sets bookings.<date> only when that key does not exist yet, so
// a concurrent booking for the same user and date loses the race at the
// storage boundary instead of overwriting.
func (r *BookingMongoRepository) AddBooking(ctx context.Context, username, dateStr string, slotID SlotID) (int64, error) {
	bookingKey := fmt.Sprintf("bookings.%s", dateStr)
	result, err := r.Collection.UpdateOne(
		ctx,
		bson.M{
			"username": username,
			bookingKey: bson.M{"$exists": false},
		},
		bson.M{"$set": bson.M{bookingKey: int(slotID)}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *BookingMongoRepository) RemoveBooking(ctx context.Context, username, dateStr string, slotID SlotID) (int64, error) {
	bookingKey := fmt.Sprintf("bookings.%s", dateStr)
	result, err := r.Collection.UpdateOne(
		ctx,
		bson.M{
			"username": username,
			bookingKey: int(slotID),
		},
		bson.M{"$unset": bson.M{bookingKey: ""}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *BookingMongoRepository) UserExists(ctx context.Context, username string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}
