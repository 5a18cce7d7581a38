package model

// Priority of a news item.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// AdmissionStatus is the review state of an application.
type AdmissionStatus string

const (
	AdmissionPending    AdmissionStatus = "pending"
	AdmissionApproved   AdmissionStatus = "approved"
	AdmissionRejected   AdmissionStatus = "rejected"
	AdmissionWaitlisted AdmissionStatus = "waitlisted"
)

// Valid reports whether s is one of the four admission states.
func (s AdmissionStatus) Valid() bool {
	switch s {
	case AdmissionPending, AdmissionApproved, AdmissionRejected, AdmissionWaitlisted:
		return true
	}
	return false
}

// ContactStatus is the triage state of a contact message.
type ContactStatus string

const (
	ContactUnread  ContactStatus = "unread"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactUnread, ContactRead, ContactReplied:
		return true
	}
	return false
}

// EventCategory groups events on the site.
type EventCategory string

const (
	EventAcademic EventCategory = "academic"
	EventSports   EventCategory = "sports"
	EventCultural EventCategory = "cultural"
	EventGeneral  EventCategory = "general"
)

// GalleryCategory groups gallery images.
type GalleryCategory string

const (
	GalleryEvents     GalleryCategory = "events"
	GalleryFacilities GalleryCategory = "facilities"
	GallerySports     GalleryCategory = "sports"
	GalleryAcademic   GalleryCategory = "academic"
	GalleryGeneral    GalleryCategory = "general"
)

// StatusAll disables the status filter on admin lists.
const StatusAll = "all"

// DefaultNewsEmoji marks news items created without one.
const DefaultNewsEmoji = "📢"
