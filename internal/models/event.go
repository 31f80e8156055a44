package models

// Blog event types
const (
	BlogCreated = "blog.created"
	BlogUpdated = "blog.updated"
	BlogDeleted = "blog.deleted"
)

// BlogEvent is published to Kafka whenever a post changes.
type BlogEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of blog.created, blog.updated, blog.deleted
	BlogID    string `json:"blog_id"`   // Affected post
	OwnerID   string `json:"owner_id"`  // Owner of the post
	ActorID   string `json:"actor_id"`  // User who performed the change
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds)
}
