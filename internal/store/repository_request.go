package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/models"
)

// itemRequestRepository is the SQL implementation of
// [ItemRequestRepository] over the "requests" table. Fulfilling items are
// attached by the service layer.
type itemRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRequestRepository(db *DB, logger *logger.Logger) ItemRequestRepository {
	logger.Debug().Msg("creating item request repository")
	return &itemRequestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRequestRepository) CreateRequest(ctx context.Context, request models.ItemRequest) (models.ItemRequest, error) {
	insert := r.db.builder.
		Insert(request.TableName()).
		Columns("description", "requester_id", "created").
		Values(request.Description, request.RequesterID, request.Created)

	id, err := r.db.insertReturningID(ctx, insert)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRequestRepository.CreateRequest").
			Int64("requester_id", request.RequesterID).
			Msg("error inserting item request")
		return models.ItemRequest{}, err
	}

	request.ID = id
	return request, nil
}

func (r *itemRequestRepository) GetRequest(ctx context.Context, requestID int64) (models.ItemRequest, error) {
	query, args, err := selectRequests(r.db.builder).Where(sq.Eq{"id": requestID}).ToSql()
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ItemRequest{}, ErrRequestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRequestRepository.GetRequest").Int64("request_id", requestID).Msg("error scanning item request")
		return models.ItemRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return request, nil
}

// ListRequestsByRequester returns the requester's own requests, newest first.
func (r *itemRequestRepository) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	query, args, err := selectRequests(r.db.builder).
		Where(sq.Eq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRequests(ctx, "*itemRequestRepository.ListRequestsByRequester", query, args)
}

// ListRequestsOfOthers returns requests posted by anyone but requesterID,
// newest first, one page at a time.
func (r *itemRequestRepository) ListRequestsOfOthers(ctx context.Context, requesterID int64, page models.Page) ([]models.ItemRequest, error) {
	query, args, err := selectRequests(r.db.builder).
		Where(sq.NotEq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC").
		Offset(page.From).
		Limit(page.Size).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRequests(ctx, "*itemRequestRepository.ListRequestsOfOthers", query, args)
}

func (r *itemRequestRepository) queryRequests(ctx context.Context, fn, query string, args []any) ([]models.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying item requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanRequest)
}
