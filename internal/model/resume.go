package model

import (
	"encoding/json"
	"time"
)

type Resume struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	Template  string          `json:"template"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type CreateResumeRequest struct {
	Title    string          `json:"title" binding:"required"`
	Content  json.RawMessage `json:"content"`
	Template string          `json:"template"`
}

// UpdateResumeRequest uses pointers so omitted fields keep their stored values.
type UpdateResumeRequest struct {
	Title    *string         `json:"title"`
	Content  json.RawMessage `json:"content"`
	Template *string         `json:"template"`
}
