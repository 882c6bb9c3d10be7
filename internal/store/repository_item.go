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

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.
		Insert(item.TableName()).
		Columns("name", "description", "is_available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID)

	id, err := r.db.insertReturningID(ctx, insert)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.CreateItem").
			Int64("owner_id", item.OwnerID).
			Str("class", r.db.errorClassificator.Classify(err).String()).
			Msg("error inserting item")
		return models.Item{}, err
	}

	item.ID = id
	return item, nil
}

func (r *itemRepository) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	query, args, err := selectItems(r.db.builder).Where(sq.Eq{"id": itemID}).ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.GetItem").Int64("item_id", itemID).Msg("error scanning item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateItem overwrites the mutable fields of an item. Ownership and
// request link are not changed here.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	update := r.db.builder.
		Update(item.TableName()).
		SetMap(map[string]any{
			"name":         item.Name,
			"description":  item.Description,
			"is_available": item.Available,
		}).
		Where(sq.Eq{"id": item.ID})

	affected, err := r.db.execAffected(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", item.ID).Msg("error updating item")
		return models.Item{}, err
	}
	if affected == 0 {
		return models.Item{}, ErrItemNotFound
	}

	return item, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	affected, err := r.db.execAffected(ctx, r.db.builder.Delete(models.Item{}.TableName()).Where(sq.Eq{"id": itemID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", itemID).Msg("error deleting item")
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) ListItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	query, args, err := selectItems(r.db.builder).Where(sq.Eq{"owner_id": ownerID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.ListItemsByOwner", query, args)
}

func (r *itemRepository) SearchAvailableItems(ctx context.Context, text string) ([]models.Item, error) {
	query, args, err := buildSearchItemsQuery(r.db.builder, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.SearchAvailableItems", query, args)
}

// ListItemsByRequests returns the short form of every item listed in answer
// to one of the given requests.
func (r *itemRepository) ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]models.RequestItem, error) {
	if len(requestIDs) == 0 {
		return []models.RequestItem{}, nil
	}

	query, args, err := r.db.builder.
		Select("id", "name", "owner_id", "request_id").
		From(models.Item{}.TableName()).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.ListItemsByRequests").Msg("error querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, func(row rowScanner) (models.RequestItem, error) {
		var it models.RequestItem
		err := row.Scan(&it.ID, &it.Name, &it.OwnerID, &it.RequestID)
		return it, err
	})
}

func (r *itemRepository) queryItems(ctx context.Context, fn, query string, args []any) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanItem)
}
