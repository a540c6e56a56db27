package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/younivent/platform/internal/core/domain"
)

const clientCollection = "client_admins"

// ClientRepository is the persistent client-admin table.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientCollection)}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.ClientAdmin, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.ClientAdmin
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.ClientAdmin, error) {
	var c domain.ClientAdmin
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) SetStatus(ctx context.Context, id, status string) (*domain.ClientAdmin, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var c domain.ClientAdmin
	if err := res.Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update client status: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Seed upserts the demo client rows into a fresh database.
func (r *ClientRepository) Seed(ctx context.Context, clients []domain.ClientAdmin) error {
	for _, c := range clients {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"_id": c.ID},
			bson.M{"$setOnInsert": c},
			mongoUpsert(),
		)
		if err != nil {
			return fmt.Errorf("seed client %s: %w", c.ID, err)
		}
	}
	return nil
}

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
