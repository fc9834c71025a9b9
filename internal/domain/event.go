package domain

// EventType enumerates the upload widget lifecycle events.
type EventType int

const (
	// EventUnknown is any event the controller does not react to.
	EventUnknown EventType = iota
	EventAddedToQueue
	EventAllAddedToQueue
	EventUploading
	EventCancelled
	EventRemoved
	EventDragOver
	EventDragOut
	EventDrop
	EventRejected
)

var eventNames = map[EventType]string{
	EventUnknown:         "unknown",
	EventAddedToQueue:    "addedToQueue",
	EventAllAddedToQueue: "allAddedToQueue",
	EventUploading:       "uploading",
	EventCancelled:       "cancelled",
	EventRemoved:         "removed",
	EventDragOver:        "dragOver",
	EventDragOut:         "dragOut",
	EventDrop:            "drop",
	EventRejected:        "rejected",
}

// String returns the wire name of the event type.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return eventNames[EventUnknown]
}

// ParseEventType maps a wire name to an EventType. Unrecognized names map to
// EventUnknown.
func ParseEventType(name string) EventType {
	for t, n := range eventNames {
		if n == name {
			return t
		}
	}
	return EventUnknown
}

// Event is one lifecycle notification from the upload widget. File is nil for
// events that carry no file (drag events, allAddedToQueue).
type Event struct {
	Type EventType
	File *UploadFile
}
