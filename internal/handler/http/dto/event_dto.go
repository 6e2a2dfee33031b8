package dto

import (
	"errors"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// dateLayouts are the accepted event date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ErrInvalidDate is returned when an event date cannot be parsed.
var ErrInvalidDate = errors.New("Invalid event date")

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}

// EventRequest is the body of event create and update. On update empty
// fields keep the current value.
type EventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	EventImage  *string `json:"eventImage"`
}

func (r EventRequest) ToInput() (usecasecontract.EventInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecasecontract.EventInput{}, err
	}
	return usecasecontract.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Category:    r.Category,
		EventImage:  r.EventImage,
	}, nil
}

// EventQuery is the query string of GET /api/events.
type EventQuery struct {
	Keyword   string `form:"keyword"`
	Category  string `form:"category"`
	DateRange string `form:"dateRange"`
	SortBy    string `form:"sortBy"`
	Order     string `form:"order"`
}

func (q EventQuery) ToQuery() usecasecontract.EventQuery {
	return usecasecontract.EventQuery(q)
}

type VerifyCodeRequest struct {
	QRCode string `json:"qrCode"`
}

type OrganizerResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventResponse is the client view of an event.
type EventResponse struct {
	ID          string             `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	StartTime   string             `json:"startTime"`
	EndTime     string             `json:"endTime"`
	Location    string             `json:"location"`
	Category    string             `json:"category"`
	IsApproved  bool               `json:"isApproved"`
	Organizer   *OrganizerResponse `json:"organizer"`
	EventImage  string             `json:"eventImage"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

func ToEventResponse(e *entity.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        formatTime(e.Date),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Category:    e.Category,
		IsApproved:  e.IsApproved,
		EventImage:  e.EventImage,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
	if e.Organizer != nil {
		resp.Organizer = &OrganizerResponse{ID: e.Organizer.ID, Name: e.Organizer.Name, Email: e.Organizer.Email}
	}
	return resp
}

func ToEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(e))
	}
	return out
}

type RegisterEventResponse struct {
	Message          string `json:"message"`
	RegistrationCode string `json:"registrationCode"`
}

type QRCodeResponse struct {
	QRCode string `json:"qrCode"`
}

type VerifiedEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

type VerifiedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type VerifyCodeResponse struct {
	Message string        `json:"message"`
	Event   VerifiedEvent `json:"event"`
	User    VerifiedUser  `json:"user"`
}

func ToVerifyCodeResponse(message string, v *entity.Verification) VerifyCodeResponse {
	return VerifyCodeResponse{
		Message: message,
		Event:   VerifiedEvent{ID: v.Event.ID, Title: v.Event.Title, Location: v.Event.Location},
		User:    VerifiedUser{ID: v.User.ID, Name: v.User.Name, Email: v.User.Email, Role: string(v.User.Role)},
	}
}

// RegisteredEventResponse is one entry of GET /api/users/registeredevents.
// Event is null when the event was deleted.
type RegisteredEventResponse struct {
	Event            *EventResponse `json:"event"`
	RegistrationCode string         `json:"registrationCode"`
}

func ToRegisteredEventResponses(entries []entity.RegisteredEvent) []RegisteredEventResponse {
	out := make([]RegisteredEventResponse, 0, len(entries))
	for _, r := range entries {
		item := RegisteredEventResponse{RegistrationCode: r.RegistrationCode}
		if r.Event != nil {
			ev := ToEventResponse(r.Event)
			item.Event = &ev
		}
		out = append(out, item)
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
