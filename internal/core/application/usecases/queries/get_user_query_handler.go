package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves contact records from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for contact directory lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. A missing record yields the empty default.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	resp := GetUserQueryResponse{Account: query.Account().String()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, phone, email FROM contacts WHERE account = ?
	`, query.Account().Bytes()).Row()

	if err := row.Scan(&resp.Name, &resp.Phone, &resp.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, nil
		}
		return GetUserQueryResponse{}, err
	}

	return resp, nil
}
