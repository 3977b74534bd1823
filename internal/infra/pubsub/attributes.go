package pubsub

import (
	"strconv"

	"safemap/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.ModerationEvent) map[string]string {
	attributes := map[string]string{
		"action":        string(event.Action),
		"kind":          event.Kind,
		"submission_id": strconv.FormatInt(event.SubmissionID, 10),
		"city_id":       strconv.FormatInt(event.CityID, 10),
	}
	if event.EntityKind != "" {
		attributes["entity_kind"] = event.EntityKind
		attributes["entity_id"] = strconv.FormatInt(event.EntityID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
