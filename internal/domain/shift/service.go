package shift

import "context"

// ShiftService defines business logic for the shift catalog.
type ShiftService interface {
	// List retrieves all shifts
	List(ctx context.Context) ([]ShiftResponse, error)

	// GetByID retrieves one shift
	GetByID(ctx context.Context, id int64) (ShiftResponse, error)
}

type ShiftResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overnight bool   `json:"overnight"`
}
