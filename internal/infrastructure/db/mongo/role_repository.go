package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/identityservice/identity-service/internal/core/domain"
)

const roleCollection = "roles"

// RoleRepository persists roles keyed by name (_id). Deleting a role also
// detaches it from every user holding it; that cascade belongs to the
// store, not the service layer.
type RoleRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{
		coll:  db.Collection(roleCollection),
		users: db.Collection(userCollection),
	}
}

type mongoRole struct {
	Name        string   `bson:"_id"`
	Description string   `bson:"description,omitempty"`
	Permissions []string `bson:"permissions"`
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	doc := mongoRole{
		Name:        role.Name,
		Description: role.Description,
		Permissions: role.Permissions,
	}
	if doc.Permissions == nil {
		doc.Permissions = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExisted
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []domain.Role
	for cursor.Next(ctx) {
		var mr mongoRole
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, *mr.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": name})
	if err != nil {
		return false, fmt.Errorf("count roles: %w", err)
	}
	return n > 0, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	permissions := role.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": role.Name},
		bson.M{"$set": bson.M{"description": role.Description, "permissions": permissions}},
	)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoleNotFound
	}
	return r.FindByName(ctx, role.Name)
}

func (r *RoleRepository) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}

	// Detach the role from every user that held it.
	if _, err := r.users.UpdateMany(ctx,
		bson.M{"roles": name},
		bson.M{"$pull": bson.M{"roles": name}},
	); err != nil {
		return fmt.Errorf("detach role from users: %w", err)
	}
	return nil
}

func (mr *mongoRole) toDomain() *domain.Role {
	return &domain.Role{
		Name:        mr.Name,
		Description: mr.Description,
		Permissions: mr.Permissions,
	}
}
