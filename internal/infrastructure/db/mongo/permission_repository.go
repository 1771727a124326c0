package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/identityservice/identity-service/internal/core/domain"
)

const permissionCollection = "permissions"

// PermissionRepository persists permissions keyed by name (_id). Deleting a
// permission also detaches it from every role granting it.
type PermissionRepository struct {
	coll  *mongo.Collection
	roles *mongo.Collection
}

func NewPermissionRepository(db *mongo.Database) *PermissionRepository {
	return &PermissionRepository{
		coll:  db.Collection(permissionCollection),
		roles: db.Collection(roleCollection),
	}
}

type mongoPermission struct {
	Name        string `bson:"_id"`
	Description string `bson:"description,omitempty"`
}

func (r *PermissionRepository) Create(ctx context.Context, permission *domain.Permission) (*domain.Permission, error) {
	doc := mongoPermission{
		Name:        permission.Name,
		Description: permission.Description,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPermissionExisted
		}
		return nil, fmt.Errorf("insert permission: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PermissionRepository) FindByName(ctx context.Context, name string) (*domain.Permission, error) {
	var mp mongoPermission
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("find permission: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PermissionRepository) FindAll(ctx context.Context) ([]domain.Permission, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer cursor.Close(ctx)

	var permissions []domain.Permission
	for cursor.Next(ctx) {
		var mp mongoPermission
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode permission: %w", err)
		}
		permissions = append(permissions, *mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return permissions, nil
}

func (r *PermissionRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": name})
	if err != nil {
		return false, fmt.Errorf("count permissions: %w", err)
	}
	return n > 0, nil
}

func (r *PermissionRepository) Update(ctx context.Context, permission *domain.Permission) (*domain.Permission, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": permission.Name},
		bson.M{"$set": bson.M{"description": permission.Description}},
	)
	if err != nil {
		return nil, fmt.Errorf("update permission: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPermissionNotFound
	}
	return r.FindByName(ctx, permission.Name)
}

func (r *PermissionRepository) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPermissionNotFound
	}

	// Detach the permission from every role that granted it.
	if _, err := r.roles.UpdateMany(ctx,
		bson.M{"permissions": name},
		bson.M{"$pull": bson.M{"permissions": name}},
	); err != nil {
		return fmt.Errorf("detach permission from roles: %w", err)
	}
	return nil
}

func (mp *mongoPermission) toDomain() *domain.Permission {
	return &domain.Permission{
		Name:        mp.Name,
		Description: mp.Description,
	}
}
