package service

import (
	"context"
	"strings"
	"time"

	"github.com/resume-system/backend/internal/db"
	"github.com/resume-system/backend/internal/model"
)

type AchievementStore interface {
	ListAchievements(ctx context.Context, userID int64) ([]model.Achievement, error)
	GetAchievement(ctx context.Context, id, userID int64) (*model.Achievement, error)
	CreateAchievement(ctx context.Context, userID int64, typ, title string, description *string, startDate, endDate *time.Time) (*model.Achievement, error)
	UpdateAchievement(ctx context.Context, id, userID int64, req model.UpdateAchievementRequest) (*model.Achievement, error)
	DeleteAchievement(ctx context.Context, id, userID int64) (bool, error)
}

type AchievementService struct {
	store AchievementStore
}

func NewAchievementService(store AchievementStore) *AchievementService {
	return &AchievementService{store: store}
}

func (s *AchievementService) List(ctx context.Context, userID int64) ([]model.Achievement, error) {
	listCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	list, err := s.store.ListAchievements(listCtx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

func (s *AchievementService) Get(ctx context.Context, id, userID int64) (*model.Achievement, error) {
	getCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	achievement, err := s.store.GetAchievement(getCtx, id, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}
	return achievement, nil
}

func (s *AchievementService) Create(ctx context.Context, userID int64, req model.CreateAchievementRequest) (*model.Achievement, error) {
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	createCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	achievement, err := s.store.CreateAchievement(createCtx, userID, req.Type, req.Title, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		return nil, storeError(err)
	}
	return achievement, nil
}

func (s *AchievementService) Update(ctx context.Context, id, userID int64, req model.UpdateAchievementRequest) (*model.Achievement, error) {
	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	achievement, err := s.store.UpdateAchievement(updateCtx, id, userID, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}
	return achievement, nil
}

func (s *AchievementService) Delete(ctx context.Context, id, userID int64) error {
	deleteCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	deleted, err := s.store.DeleteAchievement(deleteCtx, id, userID)
	if err != nil {
		return storeError(err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
