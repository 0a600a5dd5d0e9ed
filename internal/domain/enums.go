package domain

// EntityType identifies the kind of domain entity (audit logs, association tables, cache keys).
type EntityType string

const (
	EntityTypeCategory        EntityType = "CATEGORY"
	EntityTypeCollectionPoint EntityType = "COLLECTION_POINT"
	EntityTypeEvent           EntityType = "EVENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCategory, EntityTypeCollectionPoint, EntityTypeEvent:
		return true
	}
	return false
}

// IsTaggable reports whether entities of this type carry category associations.
func (e EntityType) IsTaggable() bool {
	return e == EntityTypeCollectionPoint || e == EntityTypeEvent
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// ParticipantStatus is the state of a user's participation in an event.
type ParticipantStatus string

const (
	ParticipantStatusSubscribed ParticipantStatus = "subscribed"
	ParticipantStatusCancelled  ParticipantStatus = "cancelled"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusSubscribed, ParticipantStatusCancelled:
		return true
	}
	return false
}
