package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shareit/models"
)

var (
	userColumns    = []string{"id", "name", "email"}
	itemColumns    = []string{"id", "name", "description", "is_available", "owner_id", "request_id"}
	requestColumns = []string{"id", "description", "requester_id", "created"}
	commentColumns = []string{"c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created"}
	bookingColumns = []string{
		"b.id", "b.start_date", "b.end_date", "b.status",
		"i.id", "i.name", "i.owner_id",
		"u.id", "u.name",
	}
)

// likeEscape is the escape character used in every LIKE pattern built from
// user input. Neither PostgreSQL nor SQLite agree on a default, so it is
// always stated explicitly.
const likeEscape = "!"

type rowScanner interface {
	Scan(dest ...any) error
}

func selectUsers(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(models.User{}.TableName())
}

func selectItems(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(itemColumns...).From(models.Item{}.TableName())
}

func selectRequests(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(requestColumns...).From(models.ItemRequest{}.TableName())
}

func selectComments(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(commentColumns...).
		From(models.Comment{}.TableName() + " c").
		Join(models.User{}.TableName() + " u ON u.id = c.author_id")
}

func selectBookings(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(bookingColumns...).
		From(models.Booking{}.TableName() + " b").
		Join(models.Item{}.TableName() + " i ON i.id = b.item_id").
		Join(models.User{}.TableName() + " u ON u.id = b.booker_id")
}

// bookingStatePredicate translates a state filter into a WHERE fragment
// relative to now. StateAll yields nil: no filtering.
func bookingStatePredicate(state models.BookingState, now time.Time) (sq.Sqlizer, error) {
	approved := sq.Eq{"b.status": string(models.StatusApproved)}

	switch state {
	case models.StateAll:
		return nil, nil
	case models.StateCurrent:
		return sq.And{approved, sq.Gt{"b.end_date": now}}, nil
	case models.StatePast:
		return sq.And{approved, sq.Lt{"b.end_date": now}}, nil
	case models.StateFuture:
		return sq.And{approved, sq.Gt{"b.start_date": now}}, nil
	case models.StateWaiting:
		return sq.Eq{"b.status": string(models.StatusWaiting)}, nil
	case models.StateRejected:
		return sq.Eq{"b.status": string(models.StatusRejected)}, nil
	default:
		return nil, fmt.Errorf("unknown booking state %q", state)
	}
}

// buildListBookingsQuery selects the bookings of a booker, or of an owner's
// items when query.AsOwner is set, newest start first.
func buildListBookingsQuery(b sq.StatementBuilderType, query models.BookingQuery, now time.Time) (string, []any, error) {
	sel := selectBookings(b)

	if query.AsOwner {
		sel = sel.Where(sq.Eq{"i.owner_id": query.UserID})
	} else {
		sel = sel.Where(sq.Eq{"b.booker_id": query.UserID})
	}

	pred, err := bookingStatePredicate(query.State, now)
	if err != nil {
		return "", nil, err
	}
	if pred != nil {
		sel = sel.Where(pred)
	}

	return sel.
		OrderBy("b.start_date DESC", "b.id DESC").
		Offset(query.Page.From).
		Limit(query.Page.Size).
		ToSql()
}

// buildOverlapQuery looks for an approved booking of the item with
// b.start <= end AND b.end >= start.
func buildOverlapQuery(b sq.StatementBuilderType, itemID int64, start, end time.Time) sq.SelectBuilder {
	return b.Select("1").
		From(models.Booking{}.TableName() + " b").
		Where(sq.Eq{"b.item_id": itemID, "b.status": string(models.StatusApproved)}).
		Where(sq.LtOrEq{"b.start_date": end}).
		Where(sq.GtOrEq{"b.end_date": start})
}

// buildOverlapExceptQuery is buildOverlapQuery without the booking being
// decided, so approving it does not match itself.
func buildOverlapExceptQuery(b sq.StatementBuilderType, itemID, bookingID int64, start, end time.Time) sq.SelectBuilder {
	return buildOverlapQuery(b, itemID, start, end).Where(sq.NotEq{"b.id": bookingID})
}

func buildFinishedBookingQuery(b sq.StatementBuilderType, itemID, bookerID int64, now time.Time) sq.SelectBuilder {
	return b.Select("1").
		From(models.Booking{}.TableName() + " b").
		Where(sq.Eq{
			"b.item_id":   itemID,
			"b.booker_id": bookerID,
			"b.status":    string(models.StatusApproved),
		}).
		Where(sq.Lt{"b.end_date": now})
}

// buildSearchItemsQuery matches text against name and description of
// available items, case-insensitively.
func buildSearchItemsQuery(b sq.StatementBuilderType, text string) (string, []any, error) {
	pattern := searchPattern(text)

	return selectItems(b).
		Where(sq.Eq{"is_available": true}).
		Where(sq.Or{
			sq.Expr("LOWER(name) LIKE ? ESCAPE '"+likeEscape+"'", pattern),
			sq.Expr("LOWER(description) LIKE ? ESCAPE '"+likeEscape+"'", pattern),
		}).
		OrderBy("id").
		ToSql()
}

// searchPattern lowercases text, escapes LIKE wildcards and wraps it in %.
func searchPattern(text string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return "%" + r.Replace(strings.ToLower(text)) + "%"
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email)
	return u, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		it        models.Item
		requestID sql.NullInt64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
		return models.Item{}, err
	}
	if requestID.Valid {
		id := requestID.Int64
		it.RequestID = &id
	}
	return it, nil
}

func scanRequest(row rowScanner) (models.ItemRequest, error) {
	var r models.ItemRequest
	err := row.Scan(&r.ID, &r.Description, &r.RequesterID, &r.Created)
	return r, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created)
	return c, err
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		bk     models.Booking
		status string
	)
	err := row.Scan(
		&bk.ID, &bk.Start, &bk.End, &status,
		&bk.Item.ID, &bk.Item.Name, &bk.ItemOwnerID,
		&bk.Booker.ID, &bk.Booker.Name,
	)
	bk.Status = models.BookingStatus(status)
	return bk, err
}

// collect drains rows with scan, wrapping scan and iteration failures.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
