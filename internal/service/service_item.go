package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
)

type itemService struct {
	userRepository        store.UserRepository
	itemRepository        store.ItemRepository
	commentRepository     store.CommentRepository
	bookingRepository     store.BookingRepository
	itemRequestRepository store.ItemRequestRepository

	now    clock
	logger *logger.Logger
}

func NewItemService(storages *store.Storages, logger *logger.Logger) ItemService {
	return &itemService{
		userRepository:        storages.UserRepository,
		itemRepository:        storages.ItemRepository,
		commentRepository:     storages.CommentRepository,
		bookingRepository:     storages.BookingRepository,
		itemRequestRepository: storages.ItemRequestRepository,
		now:                   systemClock,
		logger:                logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, req models.CreateItemRequest) (models.ItemDetails, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" || req.Available == nil {
		return models.ItemDetails{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, ownerID); err != nil {
		return models.ItemDetails{}, err
	}

	if req.RequestID != nil {
		if _, err := s.itemRequestRepository.GetRequest(ctx, *req.RequestID); err != nil {
			return models.ItemDetails{}, err
		}
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	})
	if err != nil {
		log.Err(err).Str("func", "*itemService.CreateItem").Int64("owner_id", ownerID).Msg("error creating item")
		return models.ItemDetails{}, fmt.Errorf("error creating item: %w", err)
	}

	return models.ItemDetails{Item: item, Comments: []models.Comment{}}, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID int64) (models.ItemDetails, error) {
	if _, err := s.userRepository.GetUser(ctx, userID); err != nil {
		return models.ItemDetails{}, err
	}

	item, err := s.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		return models.ItemDetails{}, err
	}

	details, err := s.withDetails(ctx, userID, item)
	if err != nil {
		return models.ItemDetails{}, err
	}

	return details[0], nil
}

// UpdateItem applies the non-nil fields of patch. Only the owner may update;
// anyone else gets [ErrNotItemOwner].
func (s *itemService) UpdateItem(ctx context.Context, ownerID, itemID int64, patch models.UpdateItemRequest) (models.ItemDetails, error) {
	item, err := s.ownedItem(ctx, ownerID, itemID)
	if err != nil {
		return models.ItemDetails{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.ItemDetails{}, ErrInvalidDataProvided
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return models.ItemDetails{}, ErrInvalidDataProvided
		}
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	updated, err := s.itemRepository.UpdateItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemService.UpdateItem").Int64("item_id", itemID).Msg("error updating item")
		return models.ItemDetails{}, fmt.Errorf("error updating item: %w", err)
	}

	details, err := s.withDetails(ctx, ownerID, updated)
	if err != nil {
		return models.ItemDetails{}, err
	}

	return details[0], nil
}

func (s *itemService) DeleteItem(ctx context.Context, ownerID, itemID int64) error {
	if _, err := s.ownedItem(ctx, ownerID, itemID); err != nil {
		return err
	}

	return s.itemRepository.DeleteItem(ctx, itemID)
}

func (s *itemService) ListOwnerItems(ctx context.Context, ownerID int64) ([]models.ItemDetails, error) {
	if _, err := s.userRepository.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepository.ListItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.withDetails(ctx, ownerID, items...)
}

// SearchItems returns available items whose name or description contains
// text. Blank text matches nothing.
func (s *itemService) SearchItems(ctx context.Context, text string) ([]models.ItemDetails, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ItemDetails{}, nil
	}

	items, err := s.itemRepository.SearchAvailableItems(ctx, text)
	if err != nil {
		return nil, err
	}

	return s.withDetails(ctx, 0, items...)
}

// AddComment stores a comment if the author has an approved booking of the
// item that has already ended.
func (s *itemService) AddComment(ctx context.Context, authorID, itemID int64, req models.CreateCommentRequest) (models.Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, authorID); err != nil {
		return models.Comment{}, err
	}
	if _, err := s.itemRepository.GetItem(ctx, itemID); err != nil {
		return models.Comment{}, err
	}

	now := s.now()
	allowed, err := s.bookingRepository.HasFinishedApprovedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return models.Comment{}, err
	}
	if !allowed {
		return models.Comment{}, ErrCommentNotAllowed
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  models.NewTimestamp(now),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemService.AddComment").Int64("item_id", itemID).Msg("error creating comment")
		return models.Comment{}, fmt.Errorf("error creating comment: %w", err)
	}

	return comment, nil
}

// ownedItem loads the item and checks that ownerID exists and owns it.
func (s *itemService) ownedItem(ctx context.Context, ownerID, itemID int64) (models.Item, error) {
	if _, err := s.userRepository.GetUser(ctx, ownerID); err != nil {
		return models.Item{}, err
	}

	item, err := s.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	if item.OwnerID != ownerID {
		return models.Item{}, ErrNotItemOwner
	}

	return item, nil
}

// withDetails attaches comments to every item and, for items owned by
// viewerID, the last and next approved bookings.
func (s *itemService) withDetails(ctx context.Context, viewerID int64, items ...models.Item) ([]models.ItemDetails, error) {
	result := make([]models.ItemDetails, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(items))
	owned := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
		if it.OwnerID == viewerID {
			owned = append(owned, it.ID)
		}
	}

	comments, err := s.commentRepository.ListCommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]models.Comment, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	bookingsByItem := make(map[int64][]models.Booking)
	if len(owned) > 0 {
		bookings, err := s.bookingRepository.ListApprovedBookingsByItems(ctx, owned)
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			bookingsByItem[b.Item.ID] = append(bookingsByItem[b.Item.ID], b)
		}
	}

	now := s.now()
	for _, it := range items {
		d := models.ItemDetails{Item: it, Comments: commentsByItem[it.ID]}
		if d.Comments == nil {
			d.Comments = []models.Comment{}
		}
		if it.OwnerID == viewerID {
			d.LastBooking, d.NextBooking = lastAndNext(bookingsByItem[it.ID], now)
		}
		result = append(result, d)
	}

	return result, nil
}

// lastAndNext picks, among approved bookings, the one with the latest start
// not after now and the one with the earliest start after now.
func lastAndNext(bookings []models.Booking, now time.Time) (last, next *models.BookingShort) {
	var lastB, nextB *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.StatusApproved {
			continue
		}
		if !b.Start.After(now) {
			if lastB == nil || b.Start.After(lastB.Start.Time) {
				lastB = b
			}
			continue
		}
		if nextB == nil || b.Start.Before(nextB.Start.Time) {
			nextB = b
		}
	}

	if lastB != nil {
		last = lastB.Short()
	}
	if nextB != nil {
		next = nextB.Short()
	}
	return last, next
}
