package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	return mapError("insert category", err)
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*entity.Category, error) {
	var c entity.Category
	if err := r.collection.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, mapError("find category", err)
	}
	return &c, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer cursor.Close(ctx)

	categories := []*entity.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, mapError("decode categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id string, name string) (*entity.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}}

	var c entity.Category
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c); err != nil {
		return nil, mapError("update category", err)
	}
	return &c, nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete category", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrDocumentNotFound
	}
	return nil
}

// ReplaceAll drops every category and inserts the given set.
func (r *CategoryRepository) ReplaceAll(ctx context.Context, categories []*entity.Category) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return mapError("clear categories", err)
	}
	if len(categories) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, c)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return mapError("insert categories", err)
}

func (r *CategoryRepository) CountCategories(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	return n, mapError("count categories", err)
}
