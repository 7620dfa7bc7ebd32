package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded file record. Size is in bytes; the bytes
// themselves are never stored, only the metadata.
type Document struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Size       int64      `json:"size"`
	UploadDate time.Time  `json:"upload_date"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`
}

// DocumentCreate represents document creation data. ID and UploadDate are
// assigned by the store.
type DocumentCreate struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Type      string     `json:"type" validate:"required,max=100"`
	Size      int64      `json:"size" validate:"gte=0"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
}
