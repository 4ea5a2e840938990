package models

import "time"

// Meme mirrors the record owned by the external meme backend.
type Meme struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchQuery carries the supported backend search parameters.
type SearchQuery struct {
	Q        string `json:"q,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
	Template string `json:"template,omitempty"`
	Emotion  string `json:"emotion,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Sort     string `json:"sort,omitempty"`
}
