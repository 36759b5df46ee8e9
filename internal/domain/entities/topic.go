// Package entities contains domain entities used across the application.
package entities

// Topic is a named category grouping questions.
type Topic struct {
	ID   int64  `json:"id"`   // generated topic_id
	Name string `json:"name"` // display name, not unique
}
