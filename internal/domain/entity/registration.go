package entity

// RegistrationEntry is embedded in a user document. The event reference is
// non-owning; deleting the event leaves the entry in place as an orphan.
type RegistrationEntry struct {
	EventID          string `bson:"event_id" json:"event_id"`
	RegistrationCode string `bson:"registration_code" json:"registration_code"`
}

// Valid reports whether both sub-fields are present. Entries written by
// older code may lack one of them and must be ignored on read.
func (r RegistrationEntry) Valid() bool {
	return r.EventID != "" && r.RegistrationCode != ""
}

// CleanRegistrations drops corrupt entries, preserving order.
func CleanRegistrations(entries []RegistrationEntry) []RegistrationEntry {
	out := make([]RegistrationEntry, 0, len(entries))
	for _, e := range entries {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// FindByEvent returns the first well-formed entry for eventID.
func FindByEvent(entries []RegistrationEntry, eventID string) (RegistrationEntry, bool) {
	for _, e := range entries {
		if e.Valid() && e.EventID == eventID {
			return e, true
		}
	}
	return RegistrationEntry{}, false
}

// FindByCode returns the first well-formed entry carrying code.
func FindByCode(entries []RegistrationEntry, code string) (RegistrationEntry, bool) {
	for _, e := range entries {
		if e.Valid() && e.RegistrationCode == code {
			return e, true
		}
	}
	return RegistrationEntry{}, false
}

// RegisteredEvent pairs a registration entry with its event, which is nil
// when the event has been deleted.
type RegisteredEvent struct {
	RegistrationEntry
	Event *Event
}

// Verification is the result of resolving a registration code.
type Verification struct {
	Event EventSummary
	User  UserSummary
}
