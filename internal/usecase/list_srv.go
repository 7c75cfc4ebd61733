package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListService interface {
	CreateList(ctx context.Context, userID string, req *request.CreateListRequest) (*response.ListResponse, error)
	GetUserLists(ctx context.Context, userID string) ([]response.ListResponse, error)
	// GetList returns the list with its ordered entries. viewerID is
	// empty for anonymous requests and only drives the LikedByMe flag.
	GetList(ctx context.Context, listID, viewerID string) (*response.ListDetailResponse, error)
	UpdateList(ctx context.Context, listID, userID string, req *request.UpdateListRequest) (*response.ListResponse, error)
	DeleteList(ctx context.Context, listID, userID string) error

	AddRestaurant(ctx context.Context, listID, userID string, req *request.AddListEntryRequest) error
	RemoveRestaurant(ctx context.Context, listID, restaurantID, userID string) error
	UpdateEntryNote(ctx context.Context, listID, restaurantID, userID string, req *request.UpdateListEntryNoteRequest) error
	ReorderEntry(ctx context.Context, listID, restaurantID, userID string, req *request.ReorderListEntryRequest) error

	// SaveToWantToTry adds a restaurant to the caller's want-to-try list,
	// creating the list on first use.
	SaveToWantToTry(ctx context.Context, userID, restaurantID string) error

	LikeList(ctx context.Context, listID, userID string) error
	UnlikeList(ctx context.Context, listID, userID string) error
}

type listService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListService(repo *repository.Repository, log *zap.Logger) ListService {
	return &listService{
		repo: repo,
		log:  log.With(zap.String("service", "list")),
	}
}

func (s *listService) CreateList(ctx context.Context, userID string, req *request.CreateListRequest) (*response.ListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if req.Name == entity.WantToTryName {
		return nil, fmt.Errorf("list name %q is reserved", entity.WantToTryName)
	}

	now := time.Now()
	list := &entity.List{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.List.Create(ctx, list); err != nil {
		s.log.Error("Failed to create list",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.recordActivity(ctx, &entity.Activity{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userUUID,
		Type:       entity.ActivityListCreated,
		ListID:     &list.ID,
	})

	s.log.Info("List created",
		zap.String("list_id", list.ID.String()),
		zap.String("user_id", userID),
		zap.String("name", req.Name),
	)

	resp := response.ListToResponse(list, 0, 0)
	return &resp, nil
}

func (s *listService) GetUserLists(ctx context.Context, userID string) ([]response.ListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	lists, err := s.repo.List.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user lists",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user lists: %w", err)
	}

	results := make([]response.ListResponse, len(lists))
	for i, list := range lists {
		results[i] = s.summarize(ctx, list)
	}

	return results, nil
}

func (s *listService) GetList(ctx context.Context, listID, viewerID string) (*response.ListDetailResponse, error) {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return nil, fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	list, err := s.repo.List.FindByID(ctx, listUUID)
	if err != nil || list == nil {
		return nil, fmt.Errorf("list %s not found", listID)
	}

	entries, err := s.repo.ListRestaurant.FindByListID(ctx, listUUID)
	if err != nil {
		s.log.Error("Failed to get list entries",
			zap.Error(err),
			zap.String("list_id", listID),
		)
		return nil, fmt.Errorf("get list entries: %w", err)
	}

	entryResponses := make([]response.ListEntryResponse, 0, len(entries))
	for _, entry := range entries {
		restaurant, err := s.repo.Restaurant.FindByID(ctx, entry.RestaurantID)
		if err != nil || restaurant == nil {
			continue
		}
		entryResponses = append(entryResponses, response.ListEntryResponse{
			Restaurant: response.RestaurantToResponse(restaurant),
			Position:   entry.Position,
			Note:       entry.Note,
			AddedAt:    entry.AddedAt,
		})
	}

	likeCount, _ := s.repo.ListLike.CountByListID(ctx, listUUID)

	likedByMe := false
	if viewerID != "" {
		if viewerUUID, err := uuid.Parse(viewerID); err == nil {
			likedByMe, _ = s.repo.ListLike.Exists(ctx, listUUID, viewerUUID)
		}
	}

	return &response.ListDetailResponse{
		ListResponse: response.ListToResponse(list, len(entryResponses), likeCount),
		Entries:      entryResponses,
		LikedByMe:    likedByMe,
	}, nil
}

func (s *listService) UpdateList(ctx context.Context, listID, userID string, req *request.UpdateListRequest) (*response.ListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if list.IsWantToTry {
			return nil, fmt.Errorf("want-to-try list cannot be renamed")
		}
		if *req.Name == entity.WantToTryName {
			return nil, fmt.Errorf("list name %q is reserved", entity.WantToTryName)
		}
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = req.Description
	}

	if err := s.repo.List.Update(ctx, list); err != nil {
		s.log.Error("Failed to update list",
			zap.Error(err),
			zap.String("list_id", listID),
		)
		return nil, fmt.Errorf("update list: %w", err)
	}

	s.log.Info("List updated",
		zap.String("list_id", listID),
		zap.String("user_id", userID),
	)

	resp := s.summarize(ctx, list)
	return &resp, nil
}

func (s *listService) DeleteList(ctx context.Context, listID, userID string) error {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	if list.IsWantToTry {
		return fmt.Errorf("want-to-try list cannot be deleted")
	}

	if err := s.repo.List.Delete(ctx, list.ID); err != nil {
		s.log.Error("Failed to delete list",
			zap.Error(err),
			zap.String("list_id", listID),
		)
		return fmt.Errorf("delete list: %w", err)
	}

	if err := s.repo.Activity.DeleteByListID(ctx, list.ID); err != nil {
		s.log.Warn("Failed to delete list activities",
			zap.Error(err),
			zap.String("list_id", listID),
		)
	}

	s.log.Info("List deleted",
		zap.String("list_id", listID),
		zap.String("user_id", userID),
	)

	return nil
}

func (s *listService) AddRestaurant(ctx context.Context, listID, userID string, req *request.AddListEntryRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add list entry validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	return s.addEntry(ctx, list, restaurantUUID, req.Note)
}

func (s *listService) RemoveRestaurant(ctx context.Context, listID, restaurantID, userID string) error {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	entry, err := s.repo.ListRestaurant.FindEntry(ctx, list.ID, restaurantUUID)
	if err != nil || entry == nil {
		return fmt.Errorf("restaurant %s not found in list", restaurantID)
	}

	if err := s.repo.ListRestaurant.Remove(ctx, list.ID, restaurantUUID); err != nil {
		s.log.Error("Failed to remove list entry",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("restaurant_id", restaurantID),
		)
		return fmt.Errorf("remove list entry: %w", err)
	}

	s.log.Info("List entry removed",
		zap.String("list_id", listID),
		zap.String("restaurant_id", restaurantID),
	)

	return nil
}

func (s *listService) UpdateEntryNote(ctx context.Context, listID, restaurantID, userID string, req *request.UpdateListEntryNoteRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update entry note validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	entry, err := s.repo.ListRestaurant.FindEntry(ctx, list.ID, restaurantUUID)
	if err != nil || entry == nil {
		return fmt.Errorf("restaurant %s not found in list", restaurantID)
	}

	if err := s.repo.ListRestaurant.UpdateNote(ctx, list.ID, restaurantUUID, req.Note); err != nil {
		s.log.Error("Failed to update entry note",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("restaurant_id", restaurantID),
		)
		return fmt.Errorf("update entry note: %w", err)
	}

	return nil
}

func (s *listService) ReorderEntry(ctx context.Context, listID, restaurantID, userID string, req *request.ReorderListEntryRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reorder entry validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	entry, err := s.repo.ListRestaurant.FindEntry(ctx, list.ID, restaurantUUID)
	if err != nil || entry == nil {
		return fmt.Errorf("restaurant %s not found in list", restaurantID)
	}

	maxPos, err := s.repo.ListRestaurant.MaxPosition(ctx, list.ID)
	if err != nil {
		return fmt.Errorf("reorder entry: %w", err)
	}

	// Clamp instead of rejecting so a stale client still lands at the end.
	target := req.Position
	if target > maxPos {
		target = maxPos
	}

	if target == entry.Position {
		return nil
	}

	if err := s.repo.ListRestaurant.Reorder(ctx, list.ID, restaurantUUID, target); err != nil {
		s.log.Error("Failed to reorder list entry",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("restaurant_id", restaurantID),
			zap.Int("target", target),
		)
		return fmt.Errorf("reorder entry: %w", err)
	}

	s.log.Info("List entry reordered",
		zap.String("list_id", listID),
		zap.String("restaurant_id", restaurantID),
		zap.Int("from", entry.Position),
		zap.Int("to", target),
	)

	return nil
}

func (s *listService) SaveToWantToTry(ctx context.Context, userID, restaurantID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	list, err := s.repo.List.FindWantToTry(ctx, userUUID)
	if err != nil {
		return fmt.Errorf("get want-to-try list: %w", err)
	}

	if list == nil {
		now := time.Now()
		list = &entity.List{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:      userUUID,
			Name:        entity.WantToTryName,
			IsWantToTry: true,
		}
		if err := s.repo.List.Create(ctx, list); err != nil {
			s.log.Error("Failed to create want-to-try list",
				zap.Error(err),
				zap.String("user_id", userID),
			)
			return fmt.Errorf("create want-to-try list: %w", err)
		}
		s.log.Info("Want-to-try list created",
			zap.String("list_id", list.ID.String()),
			zap.String("user_id", userID),
		)
	}

	return s.addEntry(ctx, list, restaurantUUID, nil)
}

func (s *listService) LikeList(ctx context.Context, listID, userID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	list, err := s.repo.List.FindByID(ctx, listUUID)
	if err != nil || list == nil {
		return fmt.Errorf("list %s not found", listID)
	}

	if list.UserID == userUUID {
		return fmt.Errorf("cannot like your own list")
	}

	now := time.Now()
	inserted, err := s.repo.ListLike.Like(ctx, &entity.ListLike{
		ID:        uuid.New(),
		ListID:    listUUID,
		UserID:    userUUID,
		CreatedAt: now,
	})
	if err != nil {
		s.log.Error("Failed to like list",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("like list: %w", err)
	}

	// Repeat likes are a no-op, no duplicate activity either.
	if inserted {
		s.recordActivity(ctx, &entity.Activity{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			UserID:     userUUID,
			Type:       entity.ActivityListLiked,
			ListID:     &listUUID,
		})
	}

	return nil
}

func (s *listService) UnlikeList(ctx context.Context, listID, userID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.repo.ListLike.Unlike(ctx, listUUID, userUUID); err != nil {
		s.log.Error("Failed to unlike list",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("unlike list: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// ownedList loads a list and checks the caller owns it.
func (s *listService) ownedList(ctx context.Context, listID, userID string) (*entity.List, error) {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return nil, fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	list, err := s.repo.List.FindByID(ctx, listUUID)
	if err != nil || list == nil {
		return nil, fmt.Errorf("list %s not found", listID)
	}

	if list.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to modify this list")
	}

	return list, nil
}

func (s *listService) addEntry(ctx context.Context, list *entity.List, restaurantID uuid.UUID, note *string) error {
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil || restaurant == nil {
		return fmt.Errorf("restaurant %s not found", restaurantID)
	}

	existing, err := s.repo.ListRestaurant.FindEntry(ctx, list.ID, restaurantID)
	if err != nil {
		return fmt.Errorf("add list entry: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("restaurant already in list")
	}

	maxPos, err := s.repo.ListRestaurant.MaxPosition(ctx, list.ID)
	if err != nil {
		return fmt.Errorf("add list entry: %w", err)
	}

	entry := &entity.ListRestaurant{
		ID:           uuid.New(),
		ListID:       list.ID,
		RestaurantID: restaurantID,
		Position:     maxPos + 1,
		Note:         note,
		AddedAt:      time.Now(),
	}

	if err := s.repo.ListRestaurant.Add(ctx, entry); err != nil {
		s.log.Error("Failed to add list entry",
			zap.Error(err),
			zap.String("list_id", list.ID.String()),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return fmt.Errorf("add list entry: %w", err)
	}

	s.log.Info("List entry added",
		zap.String("list_id", list.ID.String()),
		zap.String("restaurant_id", restaurantID.String()),
		zap.Int("position", entry.Position),
	)

	return nil
}

func (s *listService) summarize(ctx context.Context, list *entity.List) response.ListResponse {
	maxPos, _ := s.repo.ListRestaurant.MaxPosition(ctx, list.ID)
	likeCount, _ := s.repo.ListLike.CountByListID(ctx, list.ID)
	return response.ListToResponse(list, maxPos, likeCount)
}

func (s *listService) recordActivity(ctx context.Context, activity *entity.Activity) {
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Warn("Failed to record activity",
			zap.Error(err),
			zap.String("type", string(activity.Type)),
		)
	}
}
