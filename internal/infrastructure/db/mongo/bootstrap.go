package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookstore/identity-service/internal/core/domain"
)

// EnsureIndexes creates the unique indexes the core relies on: users.email
// and roles.name. Both are the store-side authority on duplicates, so this
// must run before the service accepts traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = db.Collection(roleCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("roles name index: %w", err)
	}
	return nil
}

// SeedRoles inserts the USER and ADMIN roles when absent. Registration
// assumes both exist before the first request.
func SeedRoles(ctx context.Context, db *mongo.Database) error {
	repo := NewRoleRepository(db)
	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		_, err := repo.Create(ctx, &domain.Role{Name: name, CreatedAt: time.Now().UTC()})
		if err != nil && !errors.Is(err, domain.ErrRoleExists) {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
