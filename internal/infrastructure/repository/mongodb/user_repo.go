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

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.RegisteredEvents == nil {
		user.RegisteredEvents = []entity.RegistrationEntry{}
	}
	_, err := r.collection.InsertOne(ctx, user)
	return mapError("insert user", err)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, op string) (*entity.User, error) {
	var user entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapError(op, err)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "find user by id")
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "find user by email")
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapError("list users", err)
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, mapError("decode users", err)
	}
	return users, nil
}

// userUpdateDoc sets the editable fields and unsets cleared profile fields.
// The registration list and reset token are never touched here.
func userUpdateDoc(user *entity.User) bson.M {
	set := bson.M{
		"name":            user.Name,
		"email":           user.Email,
		"password_hash":   user.PasswordHash,
		"role":            user.Role,
		"profile_picture": user.ProfilePicture,
		"updated_at":      user.UpdatedAt,
	}
	unset := bson.M{}
	optional := map[string]*string{
		"gender":       user.Gender,
		"roll_no":      user.RollNo,
		"department":   user.Department,
		"society_name": user.SocietyName,
	}
	for field, v := range optional {
		if v == nil {
			unset[field] = ""
		} else {
			set[field] = *v
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, userUpdateDoc(user), opts).Decode(&updated)
	if err != nil {
		return nil, mapError("update user", err)
	}
	return &updated, nil
}

func (r *MongoUserRepository) updateByID(ctx context.Context, id string, update bson.M, op string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapError(op, err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrDocumentNotFound
	}
	return nil
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": hashedPassword,
		"updated_at":    time.Now(),
	}}, "update password")
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete user", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrDocumentNotFound
	}
	return nil
}

func (r *MongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	return n, mapError("count users", err)
}

// appendRegistrationFilter matches the user only while no well-formed entry
// for eventID exists, so the $push is atomic per event.
func appendRegistrationFilter(userID, eventID string) bson.M {
	return bson.M{
		"_id": userID,
		"registered_events": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"event_id":          eventID,
			"registration_code": bson.M{"$nin": bson.A{nil, ""}},
		}}},
	}
}

func (r *MongoUserRepository) AppendRegistration(ctx context.Context, userID string, entry entity.RegistrationEntry) (bool, error) {
	update := bson.M{
		"$push": bson.M{"registered_events": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, appendRegistrationFilter(userID, entry.EventID), update)
	if err != nil {
		return false, mapError("append registration", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *MongoUserRepository) GetUserByRegistrationCode(ctx context.Context, code string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"registered_events.registration_code": code}, "find user by registration code")
}

func (r *MongoUserRepository) SetPasswordResetToken(ctx context.Context, id string, tokenHash string, expiresAt time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": expiresAt,
	}}, "set reset token")
}

func (r *MongoUserRepository) ClearPasswordResetToken(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{"$unset": bson.M{
		"reset_password_token":  "",
		"reset_password_expire": "",
	}}, "clear reset token")
}

func (r *MongoUserRepository) GetUserByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	return r.findOne(ctx, bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": bson.M{"$gt": now},
	}, "find user by reset token")
}
