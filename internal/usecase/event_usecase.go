package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const (
	msgNotEventOwner      = "Not authorized to update this event"
	msgCannotDeleteEvent  = "Not authorized to delete this event"
	msgEventFieldsMissing = "Please fill all required event fields"
)

// sortable maps accepted sortBy values to stored field names.
var sortable = map[string]string{
	"date":      "date",
	"title":     "title",
	"createdAt": "created_at",
	"category":  "category",
	"location":  "location",
}

// EventUsecase implements the event lifecycle and approval workflow.
type EventUsecase struct {
	eventRepo     contract.IEventRepository
	uuidgen       contract.IUUIDGenerator
	imageUploader contract.IImageUploader
	logger        usecasecontract.IAppLogger
	eventCache    contract.IEventCache
	now           func() time.Time
}

func NewEventUsecase(eventRepo contract.IEventRepository, uuidgen contract.IUUIDGenerator, imageUploader contract.IImageUploader, logger usecasecontract.IAppLogger) *EventUsecase {
	return &EventUsecase{
		eventRepo:     eventRepo,
		uuidgen:       uuidgen,
		imageUploader: imageUploader,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.IEventUseCase = (*EventUsecase)(nil)

// SetEventCache enables caching of public reads.
func (uc *EventUsecase) SetEventCache(cache contract.IEventCache) {
	uc.eventCache = cache
}

// buildEventsListCacheKey builds a stable key for a public listing query.
func buildEventsListCacheKey(q usecasecontract.EventQuery) string {
	return fmt.Sprintf("events:list:k=%s:c=%s:r=%s:sb=%s:o=%s",
		strings.ToLower(q.Keyword), q.Category, q.DateRange, q.SortBy, q.Order)
}

// publicFilter turns a listing query into repository filter options.
func (uc *EventUsecase) publicFilter(q usecasecontract.EventQuery) *contract.EventFilterOptions {
	approved := true
	opts := &contract.EventFilterOptions{
		Keyword:   strings.TrimSpace(q.Keyword),
		Category:  strings.TrimSpace(q.Category),
		Approved:  &approved,
		SortBy:    "date",
		SortOrder: "asc",
	}

	now := uc.now()
	switch q.DateRange {
	case "upcoming":
		opts.DateFrom = &now
	case "past":
		opts.DateBefore = &now
	}

	if field, ok := sortable[q.SortBy]; ok {
		opts.SortBy = field
	}
	if strings.EqualFold(q.Order, "desc") {
		opts.SortOrder = "desc"
	}
	return opts
}

// ListPublicEvents returns approved events matching the query.
func (uc *EventUsecase) ListPublicEvents(ctx context.Context, q usecasecontract.EventQuery) ([]*entity.Event, error) {
	// Time-relative ranges go stale, so only cache the rest.
	cacheable := uc.eventCache != nil && q.DateRange == ""
	key := buildEventsListCacheKey(q)
	if cacheable {
		t0 := time.Now()
		cached, found, err := uc.eventCache.GetEventList(ctx, key)
		metrics.ObserveCacheLookup(time.Since(t0).Seconds())
		switch {
		case err != nil:
			uc.logger.Warnf("cache error: events list key=%s err=%v", key, err)
		case found:
			metrics.IncCacheHit("list")
			uc.logger.Debugf("cache hit: events list key=%s", key)
			return cached, nil
		default:
			metrics.IncCacheMiss("list")
		}
	}

	events, err := uc.eventRepo.GetEvents(ctx, uc.publicFilter(q))
	if err != nil {
		uc.logger.Errorf("failed to list events: %v", err)
		return nil, storageError("list events", err)
	}

	if cacheable {
		if err := uc.eventCache.SetEventList(ctx, key, events); err != nil {
			uc.logger.Warnf("failed to cache events list key=%s: %v", key, err)
		}
	}
	return events, nil
}

// GetEvent returns one event in any approval state.
func (uc *EventUsecase) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	if uc.eventCache != nil {
		cached, found, err := uc.eventCache.GetEvent(ctx, eventID)
		if err != nil {
			uc.logger.Warnf("cache error: event id=%s err=%v", eventID, err)
		} else if found {
			metrics.IncCacheHit("detail")
			return cached, nil
		} else {
			metrics.IncCacheMiss("detail")
		}
	}

	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, classify(err, ErrEventNotFound, "get event")
	}

	if uc.eventCache != nil {
		if err := uc.eventCache.SetEvent(ctx, event); err != nil {
			uc.logger.Warnf("failed to cache event id=%s: %v", eventID, err)
		}
	}
	return event, nil
}

// CreateEvent stores a new pending event owned by organizerID.
func (uc *EventUsecase) CreateEvent(ctx context.Context, organizerID string, in usecasecontract.EventInput) (*entity.Event, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)
	category := strings.TrimSpace(in.Category)
	if title == "" || description == "" || in.Date == nil || in.Date.IsZero() ||
		in.StartTime == "" || in.EndTime == "" || location == "" || category == "" {
		return nil, newError(ErrInvalidInput, msgEventFieldsMissing)
	}
	if organizerID == "" {
		return nil, newError(ErrUnauthorized, "organizer ID is required")
	}

	image := entity.DefaultEventImage
	if url, ok, err := resolveImage(ctx, uc.imageUploader, in.EventImage, eventImageFolder, entity.DefaultEventImage); err != nil {
		return nil, err
	} else if ok {
		image = url
	}

	now := uc.now()
	event := &entity.Event{
		ID:          uc.uuidgen.NewUUID(),
		Title:       title,
		Description: description,
		Date:        in.Date.UTC(),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Location:    location,
		Category:    category,
		IsApproved:  false,
		OrganizerID: organizerID,
		EventImage:  image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to create event: %v", err)
		return nil, storageError("create event", err)
	}
	uc.logger.Infof("event %s created by organizer %s, awaiting approval", event.ID, organizerID)
	return event, nil
}

// UpdateEvent edits the content of an event. Only its organizer may do so and
// the approval flag is never touched.
func (uc *EventUsecase) UpdateEvent(ctx context.Context, eventID, userID string, in usecasecontract.EventInput) (*entity.Event, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, classify(err, ErrEventNotFound, "get event")
	}
	if !event.OwnedBy(userID) {
		return nil, newError(ErrUnauthorized, msgNotEventOwner)
	}

	updates := map[string]interface{}{}
	setIf := func(field, value string) {
		if v := strings.TrimSpace(value); v != "" {
			updates[field] = v
		}
	}
	setIf("title", in.Title)
	setIf("description", in.Description)
	setIf("start_time", in.StartTime)
	setIf("end_time", in.EndTime)
	setIf("location", in.Location)
	setIf("category", in.Category)
	if in.Date != nil && !in.Date.IsZero() {
		updates["date"] = in.Date.UTC()
	}
	if url, ok, err := resolveImage(ctx, uc.imageUploader, in.EventImage, eventImageFolder, entity.DefaultEventImage); err != nil {
		return nil, err
	} else if ok {
		updates["event_image"] = url
	}
	updates["updated_at"] = uc.now()

	updated, err := uc.eventRepo.UpdateEvent(ctx, eventID, updates)
	if err != nil {
		uc.logger.Errorf("failed to update event %s: %v", eventID, err)
		return nil, classify(err, ErrEventNotFound, "update event")
	}
	uc.invalidate(ctx, eventID)
	return updated, nil
}

// DeleteEvent removes an event. The owner or any admin may delete it.
// Registrations pointing at it are left in place.
func (uc *EventUsecase) DeleteEvent(ctx context.Context, eventID, userID string, role entity.UserRole) error {
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return classify(err, ErrEventNotFound, "get event")
	}
	if !event.OwnedBy(userID) && role != entity.UserRoleAdmin {
		return newError(ErrUnauthorized, msgCannotDeleteEvent)
	}
	if err := uc.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		uc.logger.Errorf("failed to delete event %s: %v", eventID, err)
		return classify(err, ErrEventNotFound, "delete event")
	}
	uc.invalidate(ctx, eventID)
	return nil
}

// ListMyEvents returns every event the organizer created, in any state.
func (uc *EventUsecase) ListMyEvents(ctx context.Context, organizerID string) ([]*entity.Event, error) {
	events, err := uc.eventRepo.GetEvents(ctx, &contract.EventFilterOptions{
		OrganizerID: organizerID,
		SortBy:      "created_at",
		SortOrder:   "desc",
	})
	if err != nil {
		return nil, storageError("list organizer events", err)
	}
	return events, nil
}

// ListPendingEvents returns events awaiting approval.
func (uc *EventUsecase) ListPendingEvents(ctx context.Context) ([]*entity.Event, error) {
	pending := false
	events, err := uc.eventRepo.GetEvents(ctx, &contract.EventFilterOptions{
		Approved:  &pending,
		SortBy:    "created_at",
		SortOrder: "asc",
	})
	if err != nil {
		return nil, storageError("list pending events", err)
	}
	return events, nil
}

func (uc *EventUsecase) ApproveEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	return uc.setApproval(ctx, eventID, true)
}

func (uc *EventUsecase) RejectEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	return uc.setApproval(ctx, eventID, false)
}

// setApproval writes the flag unconditionally, so repeating a decision is a no-op.
func (uc *EventUsecase) setApproval(ctx context.Context, eventID string, approved bool) (*entity.Event, error) {
	event, err := uc.eventRepo.SetApproval(ctx, eventID, approved)
	if err != nil {
		return nil, classify(err, ErrEventNotFound, "set approval")
	}
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	metrics.IncApproval(decision)
	uc.logger.Infof("event %s %s", eventID, decision)
	uc.invalidate(ctx, eventID)
	return event, nil
}

func (uc *EventUsecase) invalidate(ctx context.Context, eventID string) {
	if uc.eventCache == nil {
		return
	}
	if err := uc.eventCache.InvalidateEvent(ctx, eventID); err != nil {
		uc.logger.Warnf("failed to invalidate cached event %s: %v", eventID, err)
	}
	if err := uc.eventCache.InvalidateEventLists(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate cached event lists: %v", err)
	}
}
