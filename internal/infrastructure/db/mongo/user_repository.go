package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/younivent/platform/internal/core/domain"
)

const userCollection = "users"

// UserRepository is the persistent variant of the login table, used when the
// platform runs with STORE=mongo.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID           string     `bson:"_id"`
	Name         string     `bson:"name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	Role         string     `bson:"role"`
	Status       string     `bson:"status"`
	TenantID     string     `bson:"tenant_id,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// Seed upserts the given users so a fresh database starts with the demo
// accounts. Existing documents are left untouched.
func (r *UserRepository) Seed(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		doc := mongoUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        strings.ToLower(u.Email),
			PasswordHash: u.PasswordHash,
			Role:         string(u.Role),
			Status:       u.Status,
			TenantID:     u.TenantID,
			CreatedAt:    u.CreatedAt,
		}
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"_id": u.ID},
			bson.M{"$setOnInsert": doc},
			mongoUpsert(),
		)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return nil
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
		Status:       mu.Status,
		TenantID:     mu.TenantID,
		CreatedAt:    mu.CreatedAt,
		LastLogin:    mu.LastLogin,
	}
}
