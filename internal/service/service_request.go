package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
)

type itemRequestService struct {
	userRepository        store.UserRepository
	itemRepository        store.ItemRepository
	itemRequestRepository store.ItemRequestRepository

	now    clock
	logger *logger.Logger
}

func NewItemRequestService(storages *store.Storages, logger *logger.Logger) ItemRequestService {
	return &itemRequestService{
		userRepository:        storages.UserRepository,
		itemRepository:        storages.ItemRepository,
		itemRequestRepository: storages.ItemRequestRepository,
		now:                   systemClock,
		logger:                logger,
	}
}

func (s *itemRequestService) CreateRequest(ctx context.Context, requesterID int64, req models.CreateItemRequestRequest) (models.ItemRequest, error) {
	if strings.TrimSpace(req.Description) == "" {
		return models.ItemRequest{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, requesterID); err != nil {
		return models.ItemRequest{}, err
	}

	created, err := s.itemRequestRepository.CreateRequest(ctx, models.ItemRequest{
		Description: req.Description,
		RequesterID: requesterID,
		Created:     models.NewTimestamp(s.now()),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRequestService.CreateRequest").Int64("requester_id", requesterID).Msg("error creating item request")
		return models.ItemRequest{}, fmt.Errorf("error creating item request: %w", err)
	}

	created.Items = []models.RequestItem{}
	return created, nil
}

func (s *itemRequestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	if _, err := s.userRepository.GetUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.itemRequestRepository.ListRequestsByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return s.withItems(ctx, requests...)
}

// ListOtherRequests pages through requests posted by everyone except
// requesterID, newest first.
func (s *itemRequestService) ListOtherRequests(ctx context.Context, requesterID int64, page models.Page) ([]models.ItemRequest, error) {
	if page.Size == 0 {
		return nil, ErrInvalidPage
	}

	if _, err := s.userRepository.GetUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.itemRequestRepository.ListRequestsOfOthers(ctx, requesterID, page)
	if err != nil {
		return nil, err
	}

	return s.withItems(ctx, requests...)
}

func (s *itemRequestService) GetRequest(ctx context.Context, userID, requestID int64) (models.ItemRequest, error) {
	if _, err := s.userRepository.GetUser(ctx, userID); err != nil {
		return models.ItemRequest{}, err
	}

	request, err := s.itemRequestRepository.GetRequest(ctx, requestID)
	if err != nil {
		return models.ItemRequest{}, err
	}

	withItems, err := s.withItems(ctx, request)
	if err != nil {
		return models.ItemRequest{}, err
	}

	return withItems[0], nil
}

// withItems attaches the items listed in answer to each request.
func (s *itemRequestService) withItems(ctx context.Context, requests ...models.ItemRequest) ([]models.ItemRequest, error) {
	result := make([]models.ItemRequest, 0, len(requests))
	if len(requests) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.itemRepository.ListItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]models.RequestItem, len(requests))
	for _, it := range items {
		byRequest[it.RequestID] = append(byRequest[it.RequestID], it)
	}

	for _, r := range requests {
		r.Items = byRequest[r.ID]
		if r.Items == nil {
			r.Items = []models.RequestItem{}
		}
		result = append(result, r)
	}

	return result, nil
}
