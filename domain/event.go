package domain

import "strings"

// EventCategory is the semantic family of an S3 notification event name.
type EventCategory string

const (
	CategoryCreate                EventCategory = "create"
	CategoryRemove                EventCategory = "remove"
	CategoryRestore               EventCategory = "restore"
	CategoryReducedRedundancyLoss EventCategory = "reduced-redundancy-loss"
	CategoryReplication           EventCategory = "replication"
	CategoryUnknown               EventCategory = "unknown"
)

// categoryPrefixes maps event-name prefixes to categories.
// Evaluated in order; first match wins.
var categoryPrefixes = []struct {
	prefix   string
	category EventCategory
}{
	{"ObjectCreated:", CategoryCreate},
	{"ObjectRemoved:", CategoryRemove},
	{"ObjectRestore:", CategoryRestore},
	{"ReducedRedundancyLostObject:", CategoryReducedRedundancyLoss},
	{"Replication:", CategoryReplication},
}

// Classify maps a raw S3 event name to its category. Every event name maps to
// exactly one category; names with no recognized prefix map to CategoryUnknown.
func Classify(eventName string) EventCategory {
	for _, entry := range categoryPrefixes {
		if strings.HasPrefix(eventName, entry.prefix) {
			return entry.category
		}
	}
	return CategoryUnknown
}

// EventSuffix returns the operation part of an event name, i.e. everything
// after the first colon ("ObjectCreated:Put" -> "Put"). Returns an empty
// string when the name carries no suffix.
func EventSuffix(eventName string) string {
	if i := strings.Index(eventName, ":"); i >= 0 {
		return eventName[i+1:]
	}
	return ""
}

// NotificationEvent is one record of an S3 change notification, reduced to
// the fields the bridge acts on.
type NotificationEvent struct {
	EventName  string
	BucketName string
	ObjectKey  string
	VersionID  string // Set for delete markers on versioned buckets; informational only.
}
