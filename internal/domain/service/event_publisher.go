package service

import (
	"context"
	"time"
)

// ModerationAction names what a reviewer did.
type ModerationAction string

const (
	ModerationActionApproved ModerationAction = "approved"
	ModerationActionRejected ModerationAction = "rejected"
)

// ModerationEvent is emitted after a moderation decision commits
type ModerationEvent struct {
	RequestID    string           `json:"request_id,omitempty"` // For distributed tracing
	Action       ModerationAction `json:"action"`
	Kind         string           `json:"kind"`
	SubmissionID int64            `json:"submission_id"`
	CityID       int64            `json:"city_id"`
	ReviewerID   string           `json:"reviewer_id"`
	SubmitterID  string           `json:"submitter_id,omitempty"`
	EntityKind   string           `json:"entity_kind,omitempty"` // "pin" or "zone" when something was published
	EntityID     int64            `json:"entity_id,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a moderation decision for downstream consumers
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
