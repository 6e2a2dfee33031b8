package mongodb

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// EventRepository stores events and joins organizer summaries from users.
type EventRepository struct {
	collection      *mongo.Collection
	usersCollection string
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection:      db.Collection("events"),
		usersCollection: "users",
	}
}

var _ contract.IEventRepository = (*EventRepository)(nil)

var sortKeys = map[string]string{
	"date":       "date",
	"title":      "title",
	"created_at": "created_at",
	"category":   "category",
	"location":   "location",
}

// buildEventFilterAndSort creates a BSON filter and a sort document from the options.
func buildEventFilterAndSort(opts *contract.EventFilterOptions) (bson.M, bson.D) {
	filter := bson.M{}
	if opts == nil {
		return filter, bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}
	}

	if opts.Keyword != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(opts.Keyword), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
		}
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Approved != nil {
		filter["is_approved"] = *opts.Approved
	}
	if opts.OrganizerID != "" {
		filter["organizer_id"] = opts.OrganizerID
	}

	dateFilter := bson.M{}
	if opts.DateFrom != nil {
		dateFilter["$gte"] = *opts.DateFrom
	}
	if opts.DateBefore != nil {
		dateFilter["$lt"] = *opts.DateBefore
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	key, ok := sortKeys[opts.SortBy]
	if !ok {
		key = "date"
	}
	order := 1
	if opts.SortOrder == "desc" {
		order = -1
	}
	return filter, bson.D{{Key: key, Value: order}, {Key: "_id", Value: 1}}
}

// organizerStages joins the organizer's id, name and email.
func (r *EventRepository) organizerStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         r.usersCollection,
			"localField":   "organizer_id",
			"foreignField": "_id",
			"as":           "organizer",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$organizer",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"organizer.password_hash":         0,
			"organizer.role":                  0,
			"organizer.profile_picture":       0,
			"organizer.gender":                0,
			"organizer.roll_no":               0,
			"organizer.department":            0,
			"organizer.society_name":          0,
			"organizer.registered_events":     0,
			"organizer.reset_password_token":  0,
			"organizer.reset_password_expire": 0,
			"organizer.created_at":            0,
			"organizer.updated_at":            0,
		}}},
	}
}

func (r *EventRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.Event, error) {
	pipeline = append(pipeline, r.organizerStages()...)
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapError("aggregate events", err)
	}
	defer cursor.Close(ctx)

	events := []*entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, mapError("decode events", err)
	}
	return events, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	organizer := event.Organizer
	event.Organizer = nil
	_, err := r.collection.InsertOne(ctx, event)
	event.Organizer = organizer
	return mapError("insert event", err)
}

func (r *EventRepository) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	events, err := r.aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$limit", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, contract.ErrDocumentNotFound
	}
	return events[0], nil
}

func (r *EventRepository) GetEvents(ctx context.Context, opts *contract.EventFilterOptions) ([]*entity.Event, error) {
	filter, sort := buildEventFilterAndSort(opts)
	return r.aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: sort}},
	})
}

func (r *EventRepository) updateAndFetch(ctx context.Context, id string, set bson.M, op string) (*entity.Event, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, mapError(op, err)
	}
	if res.MatchedCount == 0 {
		return nil, contract.ErrDocumentNotFound
	}
	return r.GetEventByID(ctx, id)
}

// UpdateEvent applies the given field updates. Keys are stored field names.
func (r *EventRepository) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) (*entity.Event, error) {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}
	if _, ok := set["updated_at"]; !ok {
		set["updated_at"] = time.Now()
	}
	return r.updateAndFetch(ctx, id, set, "update event")
}

func (r *EventRepository) SetApproval(ctx context.Context, id string, approved bool) (*entity.Event, error) {
	return r.updateAndFetch(ctx, id, bson.M{"is_approved": approved, "updated_at": time.Now()}, "set approval")
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete event", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrDocumentNotFound
	}
	return nil
}

func (r *EventRepository) CountEvents(ctx context.Context, approved *bool) (int64, error) {
	filter := bson.M{}
	if approved != nil {
		filter["is_approved"] = *approved
	}
	n, err := r.collection.CountDocuments(ctx, filter)
	return n, mapError("count events", err)
}

// categoryCountPipeline counts events per category, largest first.
func categoryCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "value": bson.M{"$sum": 1}}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "name": "$_id", "value": 1}}},
		{{Key: "$sort", Value: bson.D{{Key: "value", Value: -1}, {Key: "name", Value: 1}}}},
	}
}

// monthCountPipeline counts events per month of their scheduled date.
func monthCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$date"}},
			"events": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "month": "$_id", "events": 1}}},
		{{Key: "$sort", Value: bson.M{"month": 1}}},
	}
}

func (r *EventRepository) CountByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	out := []entity.CategoryCount{}
	if err := r.runCount(ctx, categoryCountPipeline(), &out, "count by category"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EventRepository) CountByMonth(ctx context.Context) ([]entity.MonthCount, error) {
	out := []entity.MonthCount{}
	if err := r.runCount(ctx, monthCountPipeline(), &out, "count by month"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EventRepository) runCount(ctx context.Context, pipeline mongo.Pipeline, out interface{}, op string) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return mapError(op, err)
	}
	defer cursor.Close(ctx)
	return mapError(op, cursor.All(ctx, out))
}
