package repository

import (
	"context"
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const enquiryColumns = "id, name, email, phone, message, event_type, created_at"

type EnquiryRepository struct {
	db DBTX
}

func NewEnquiryRepository(db DBTX) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, params model.CreateEnquiryParams) (*model.Enquiry, error) {
	var enquiry *model.Enquiry
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO enquiries (name, email, phone, message, event_type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+enquiryColumns,
			params.Name, params.Email, params.Phone, params.Message, params.EventType,
		)
		if err != nil {
			return err
		}
		enquiry, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Enquiry])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit enquiry: %w", sqlerr.WithTable("enquiries", err))
	}
	return enquiry, nil
}
