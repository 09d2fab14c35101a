package assignment

// createRequest is the POST body for creating an assignment.
type createRequest struct {
	UserID      uint64  `json:"user_id" validate:"required"`
	Function    string  `json:"function" validate:"required"`
	DisplayName string  `json:"display_name" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Notes       *string `json:"notes"`
}

// updateRequest is the PATCH body; absent fields stay unchanged.
type updateRequest struct {
	Function    *string `json:"function"`
	DisplayName *string `json:"display_name"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Notes       *string `json:"notes"`
	IsActive    *bool   `json:"is_active"`
}
