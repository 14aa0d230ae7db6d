package booking

import (
	"context"
	"laundryroom-service/internal/app/models"
	"laundryroom-service/internal/pkg/constvars"
	"laundryroom-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlackoutMongoRepository struct {
	Collection *mongo.Collection
}

func NewBlackoutMongoRepository(db *mongo.Client, dbName string) BlackoutRepository {
	return &BlackoutMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBlackoutSlots),
	}
}

func (r *BlackoutMongoRepository) GetUnavailableSlots(ctx context.Context) (TakenSlots, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	taken := make(TakenSlots)
	for cursor.Next(ctx) {
		var blackout models.BlackoutSlot
		if err := cursor.Decode(&blackout); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		for _, slotID := range blackout.SlotIDs {
			taken[blackout.Date] = append(taken[blackout.Date], SlotID(slotID))
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return taken, nil
}
