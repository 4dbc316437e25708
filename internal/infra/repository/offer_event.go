package repository

//go:generate mockgen -source=offer_event.go -destination=../../../tests/mock/repository/mock_offer_event.go -package=repositorymock

import (
	"context"
	"log/slog"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	sqlc "brrow-engine/internal/infra/sqlc/generated"
	"brrow-engine/internal/pkg/pgconv"
	"brrow-engine/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferEventQueries interface {
	InsertOfferEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOfferEventParams) error
	ListOfferEventsBySession(ctx context.Context, db sqlc.DBTX, sessionID pgtype.UUID) ([]sqlc.OfferEvents, error)
}

// OfferEventRepository journals offer session transitions to Postgres.
type OfferEventRepository struct {
	queries OfferEventQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewOfferEventRepository(queries OfferEventQueries, db sqlc.DBTX, logger *slog.Logger) *OfferEventRepository {
	return &OfferEventRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *OfferEventRepository) Record(ctx context.Context, event usecase.OfferEvent) error {
	params := sqlc.InsertOfferEventParams{
		SessionID:  pgconv.UUIDToPgtype(event.SessionID),
		UserID:     event.UserID,
		ListingID:  event.ListingID,
		OfferID:    pgconv.StringPtrToPgtype(event.OfferID),
		FromState:  event.FromState.String(),
		ToState:    event.ToState.String(),
		Amount:     pgconv.DecimalToNumeric(event.Amount),
		Reason:     pgconv.StringPtrToPgtype(event.Reason),
		OccurredAt: pgconv.TimeToPgtype(event.OccurredAt),
	}

	if err := r.queries.InsertOfferEvent(ctx, r.db, params); err != nil {
		return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to record offer event", err)
	}
	return nil
}

func (r *OfferEventRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]usecase.OfferEvent, error) {
	rows, err := r.queries.ListOfferEventsBySession(ctx, r.db, pgconv.UUIDToPgtype(sessionID))
	if err != nil {
		return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "failed to list offer events", err)
	}

	events := make([]usecase.OfferEvent, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapErr(r.logger, infra.KindDBFailure, "offer event has an invalid amount", err)
		}
		events = append(events, usecase.OfferEvent{
			SessionID:  pgconv.UUIDFromPgtype(row.SessionID),
			UserID:     row.UserID,
			ListingID:  row.ListingID,
			OfferID:    pgconv.StringPtrFromPgtype(row.OfferID),
			FromState:  offer.State(row.FromState),
			ToState:    offer.State(row.ToState),
			Amount:     amount,
			Reason:     pgconv.StringPtrFromPgtype(row.Reason),
			OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
		})
	}
	return events, nil
}
