// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions recorded in ContentChangedEvent.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionReordered = "reordered"
	ActionToggled   = "toggled"
	ActionActivated = "set-active"
)

// ContentChangedEvent is published after every successful content
// mutation.  It carries enough for downstream consumers to log or
// invalidate derived state without querying the primary database.
type ContentChangedEvent struct {
	Entity    string `json:"entity"` // e.g. "skill", "service", "home-section"
	ID        uint64 `json:"id"`
	Action    string `json:"action"`
	ChangedAt string `json:"changed_at"` // RFC3339 UTC
}
