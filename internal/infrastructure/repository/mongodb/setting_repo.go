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

type SettingRepository struct {
	collection *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{collection: db.Collection("settings")}
}

var _ contract.ISettingRepository = (*SettingRepository)(nil)

func (r *SettingRepository) GetAllSettings(ctx context.Context) ([]*entity.SystemSetting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "setting_name", Value: 1}}))
	if err != nil {
		return nil, mapError("list settings", err)
	}
	defer cursor.Close(ctx)

	settings := []*entity.SystemSetting{}
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, mapError("decode settings", err)
	}
	return settings, nil
}

func (r *SettingRepository) GetSettingByID(ctx context.Context, id string) (*entity.SystemSetting, error) {
	var s entity.SystemSetting
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, mapError("find setting", err)
	}
	return &s, nil
}

func (r *SettingRepository) UpdateSettingValue(ctx context.Context, id string, value string) (*entity.SystemSetting, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"setting_value": value, "updated_at": time.Now()}}

	var s entity.SystemSetting
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&s); err != nil {
		return nil, mapError("update setting", err)
	}
	return &s, nil
}

// UpsertSetting inserts the named setting once; an existing value is kept.
func (r *SettingRepository) UpsertSetting(ctx context.Context, setting *entity.SystemSetting) error {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":           setting.ID,
		"setting_value": setting.SettingValue,
		"created_at":    setting.CreatedAt,
		"updated_at":    setting.UpdatedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"setting_name": setting.SettingName}, update, options.Update().SetUpsert(true))
	return mapError("upsert setting", err)
}
