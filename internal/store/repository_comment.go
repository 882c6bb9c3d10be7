package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment inserts the comment and resolves the author name.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	insert := r.db.builder.
		Insert(comment.TableName()).
		Columns("text", "item_id", "author_id", "created").
		Values(comment.Text, comment.ItemID, comment.AuthorID, comment.Created)

	id, err := r.db.insertReturningID(ctx, insert)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("item_id", comment.ItemID).
			Int64("author_id", comment.AuthorID).
			Msg("error inserting comment")
		return models.Comment{}, err
	}

	query, args, err := selectComments(r.db.builder).Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// ListCommentsByItems returns comments of the given items, oldest first.
func (r *commentRepository) ListCommentsByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return []models.Comment{}, nil
	}

	query, args, err := selectComments(r.db.builder).
		Where(sq.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created", "c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.ListCommentsByItems").Msg("error querying comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanComment)
}
