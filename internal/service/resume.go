package service

import (
	"context"
	"strings"

	"github.com/resume-system/backend/internal/db"
	"github.com/resume-system/backend/internal/model"
)

const defaultResumeTemplate = "default"

type ResumeStore interface {
	ListResumes(ctx context.Context, userID int64) ([]model.Resume, error)
	GetResume(ctx context.Context, id, userID int64) (*model.Resume, error)
	CreateResume(ctx context.Context, userID int64, title string, content []byte, template string) (*model.Resume, error)
	UpdateResume(ctx context.Context, id, userID int64, title *string, content []byte, template *string) (*model.Resume, error)
	DeleteResume(ctx context.Context, id, userID int64) (bool, error)
}

// ResumeService scopes every operation to the owning user; a resume belonging to
// someone else is indistinguishable from one that does not exist.
type ResumeService struct {
	store ResumeStore
}

func NewResumeService(store ResumeStore) *ResumeService {
	return &ResumeService{store: store}
}

func (s *ResumeService) List(ctx context.Context, userID int64) ([]model.Resume, error) {
	listCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	list, err := s.store.ListResumes(listCtx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

func (s *ResumeService) Get(ctx context.Context, id, userID int64) (*model.Resume, error) {
	getCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	resume, err := s.store.GetResume(getCtx, id, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}
	return resume, nil
}

func (s *ResumeService) Create(ctx context.Context, userID int64, req model.CreateResumeRequest) (*model.Resume, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	content := []byte(req.Content)
	if len(content) == 0 {
		content = []byte("{}")
	}
	template := req.Template
	if template == "" {
		template = defaultResumeTemplate
	}

	createCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	resume, err := s.store.CreateResume(createCtx, userID, req.Title, content, template)
	if err != nil {
		return nil, storeError(err)
	}
	return resume, nil
}

func (s *ResumeService) Update(ctx context.Context, id, userID int64, req model.UpdateResumeRequest) (*model.Resume, error) {
	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	resume, err := s.store.UpdateResume(updateCtx, id, userID, req.Title, []byte(req.Content), req.Template)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}
	return resume, nil
}

func (s *ResumeService) Delete(ctx context.Context, id, userID int64) error {
	deleteCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	deleted, err := s.store.DeleteResume(deleteCtx, id, userID)
	if err != nil {
		return storeError(err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
