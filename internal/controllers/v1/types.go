package v1

import (
	ez_uuid "github.com/envelope-zero/expenses/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIExport struct {
	Month string `uri:"month" example:"05" binding:"required"`  // Month, 1 to 12
	Year  string `uri:"year" example:"2024" binding:"required"` // Year
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-05"` // Year and month in YYYY-MM format
}
