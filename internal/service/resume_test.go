package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/resume-system/backend/internal/model"
)

type fakeResumeStore struct {
	resumes map[int64]*model.Resume
	nextID  int64
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{resumes: map[int64]*model.Resume{}, nextID: 1}
}

func (f *fakeResumeStore) ListResumes(ctx context.Context, userID int64) ([]model.Resume, error) {
	list := []model.Resume{}
	for _, r := range f.resumes {
		if r.UserID == userID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (f *fakeResumeStore) GetResume(ctx context.Context, id, userID int64) (*model.Resume, error) {
	if r, ok := f.resumes[id]; ok && r.UserID == userID {
		return r, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeResumeStore) CreateResume(ctx context.Context, userID int64, title string, content []byte, template string) (*model.Resume, error) {
	r := &model.Resume{
		ID:        f.nextID,
		UserID:    userID,
		Title:     title,
		Content:   content,
		Template:  template,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.nextID++
	f.resumes[r.ID] = r
	return r, nil
}

func (f *fakeResumeStore) UpdateResume(ctx context.Context, id, userID int64, title *string, content []byte, template *string) (*model.Resume, error) {
	r, ok := f.resumes[id]
	if !ok || r.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	if title != nil {
		r.Title = *title
	}
	if len(content) > 0 {
		r.Content = content
	}
	if template != nil {
		r.Template = *template
	}
	return r, nil
}

func (f *fakeResumeStore) DeleteResume(ctx context.Context, id, userID int64) (bool, error) {
	if r, ok := f.resumes[id]; ok && r.UserID == userID {
		delete(f.resumes, id)
		return true, nil
	}
	return false, nil
}

func TestResumeCreateDefaults(t *testing.T) {
	svc := NewResumeService(newFakeResumeStore())

	resume, err := svc.Create(context.Background(), 1, model.CreateResumeRequest{Title: "My Resume"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if string(resume.Content) != "{}" {
		t.Fatalf("expected empty-object content, got %q", resume.Content)
	}
	if resume.Template != "default" {
		t.Fatalf("expected default template, got %q", resume.Template)
	}
}

func TestResumeCreateRequiresTitle(t *testing.T) {
	svc := NewResumeService(newFakeResumeStore())
	if _, err := svc.Create(context.Background(), 1, model.CreateResumeRequest{Title: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResumeOwnershipScoping(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)
	ctx := context.Background()

	resume, err := svc.Create(ctx, 1, model.CreateResumeRequest{Title: "Mine"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another user's lookup must read as not-found, not forbidden.
	if _, err := svc.Get(ctx, resume.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
	if err := svc.Delete(ctx, resume.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if _, err := svc.Get(ctx, resume.ID, 1); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestResumePartialUpdate(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)
	ctx := context.Background()

	resume, _ := svc.Create(ctx, 1, model.CreateResumeRequest{Title: "Before"})

	newTitle := "After"
	updated, err := svc.Update(ctx, resume.ID, 1, model.UpdateResumeRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "After" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Template != "default" {
		t.Fatalf("omitted field must keep stored value, got %q", updated.Template)
	}
}

func TestResumeDeleteNotFound(t *testing.T) {
	svc := NewResumeService(newFakeResumeStore())
	if err := svc.Delete(context.Background(), 42, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
