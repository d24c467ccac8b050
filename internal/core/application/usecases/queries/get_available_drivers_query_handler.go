package queries

import (
	"context"
	"database/sql"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/driver"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler retrieves available drivers from the
// database. Uses direct SQL for the read and the domain dispatcher for
// proximity ranking so the sort rule lives in one place.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query. Without an origin the result is sorted by name;
// with one it is sorted nearest first, unknown positions last.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			latitude,
			longitude,
			delivered_count
		FROM drivers
		WHERE is_available = true
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]*driver.Driver, 0)

	for rows.Next() {
		var (
			id, userID          uuid.UUID
			name                string
			latitude, longitude sql.NullFloat64
			deliveredCount      int
		)

		if err = rows.Scan(&id, &userID, &name, &latitude, &longitude, &deliveredCount); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		driverUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		var location *kernel.GeoPoint
		if latitude.Valid && longitude.Valid {
			point, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			location = &point
		}

		restored, restoreErr := driver.RestoreDriver(driverID, driverUserID, name, true, location, deliveredCount)
		if restoreErr != nil {
			return nil, restoreErr
		}
		drivers = append(drivers, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranked := services.NewDriverDispatcher().RankByProximity(drivers, query.Origin())

	responses := make([]GetAvailableDriversQueryResponse, 0, len(ranked))
	for _, d := range ranked {
		responses = append(responses, GetAvailableDriversQueryResponse{
			ID:             d.ID(),
			Name:           d.Name(),
			Location:       d.Location(),
			DeliveredCount: d.DeliveredCount(),
		})
	}

	return responses, nil
}
