package events

// Event type constants
const (
	// Fired once before any payload is launched. Cancelling it aborts the cast.
	EventTypeBeforeAreaCast EventType = "before_area_cast"
	// Fired once per affected cell, in cell order
	EventTypeOnPayloadLaunched EventType = "on_payload_launched"
	EventTypeAfterAreaCast     EventType = "after_area_cast"
)

// Priority levels for listener order. Lower runs first.
const (
	PriorityValidation = 0
	PriorityDispatch   = 100
	PriorityAudit      = 500
)
