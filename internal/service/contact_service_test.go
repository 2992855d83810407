package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kansah/site/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository: in-memory stub
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	insertFunc func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)
	listFunc   func(ctx context.Context) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Insert(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, in)
	}
	return &model.ContactMessage{ID: 1, Name: in.Name, Email: in.Email, Subject: in.Subject, Body: in.Body}, nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_ForwardsInput(t *testing.T) {
	var captured model.ContactInput
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			captured = in
			return &model.ContactMessage{ID: 7, SentAt: time.Now()}, nil
		},
	}
	svc := NewContactService(mock)

	in := model.ContactInput{Name: "Eliseo", Email: "e@example.com", Subject: "Hola", Body: "Mensaje"}
	msg, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != in {
		t.Errorf("expected input forwarded unchanged, got %+v", captured)
	}
	if msg.ID != 7 {
		t.Errorf("expected id=7, got %d", msg.ID)
	}
}

// TestContactService_Submit_ValidationError propagates validation errors untouched.
func TestContactService_Submit_ValidationError(t *testing.T) {
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			return nil, &model.ValidationError{Field: "name"}
		},
	}
	svc := NewContactService(mock)

	_, err := svc.Submit(context.Background(), model.ContactInput{})
	var vErr *model.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "name" {
		t.Errorf("expected ValidationError{name}, got %v", err)
	}
}

// TestContactService_Submit_RepositoryError propagates repository errors.
func TestContactService_Submit_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			return nil, model.ErrStore
		},
	}
	svc := NewContactService(mock)

	_, err := svc.Submit(context.Background(), model.ContactInput{Name: "a", Email: "b", Subject: "c", Body: "d"})
	if !errors.Is(err, model.ErrStore) {
		t.Errorf("expected ErrStore, got %v", err)
	}
}
