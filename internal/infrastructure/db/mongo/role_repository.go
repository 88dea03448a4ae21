package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookstore/identity-service/internal/core/domain"
)

const roleCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

type roleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	return &domain.Role{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		CreatedAt: unixToTime(doc.CreatedAt),
	}, nil
}

// Create inserts the role. The unique index on name turns a concurrent
// duplicate insert into ErrRoleExists.
func (r *MongoRoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	doc := roleDoc{Name: role.Name, CreatedAt: role.CreatedAt.Unix()}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
