package entity

import "time"

// DefaultEventImage is used when an event has no image.
const DefaultEventImage = "https://via.placeholder.com/400x200?text=Event+Image"

// Event is an organizer-submitted event. It is only publicly listed once an
// administrator has approved it.
type Event struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Date        time.Time    `bson:"date" json:"date"`
	StartTime   string       `bson:"start_time" json:"start_time"`
	EndTime     string       `bson:"end_time" json:"end_time"`
	Location    string       `bson:"location" json:"location"`
	Category    string       `bson:"category" json:"category"`
	IsApproved  bool         `bson:"is_approved" json:"is_approved"`
	OrganizerID string       `bson:"organizer_id" json:"organizer_id"`
	EventImage  string       `bson:"event_image" json:"event_image"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
	Organizer   *UserSummary `bson:"organizer,omitempty" json:"organizer,omitempty"`
}

// ApprovalState is the derived state of the approval flag.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
)

func (e *Event) State() ApprovalState {
	if e.IsApproved {
		return ApprovalApproved
	}
	return ApprovalPending
}

// OwnedBy reports whether userID created the event.
func (e *Event) OwnedBy(userID string) bool {
	return userID != "" && e.OrganizerID == userID
}

// EventSummary is the minimal event view returned by code verification.
type EventSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{ID: e.ID, Title: e.Title, Location: e.Location}
}
