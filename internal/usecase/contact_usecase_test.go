package usecase

import (
	"context"
	"errors"
	"testing"

	"motorcar_consultancy/internal/domain/entities"
	mock_interfaces "motorcar_consultancy/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContactUseCase_Send(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		uc := NewContactUseCase(repo)

		_, err := uc.Send(context.Background(), SendContactInput{Name: "A", Email: "a@x.com"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Error() != "Missing required fields: name, email, and message are required" {
			t.Fatalf("unexpected message: %s", verr.Error())
		}
	})

	t.Run("defaults subject and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
				if m.Subject != "General Inquiry" {
					t.Fatalf("expected default subject, got %q", m.Subject)
				}
				if m.Status != entities.ContactStatusNew {
					t.Fatalf("expected new, got %s", m.Status)
				}
				if m.Phone != nil {
					t.Fatalf("expected nil phone")
				}
				m.ID = "msg-1"
				return m, nil
			},
		)

		res, err := uc.Send(context.Background(), SendContactInput{Name: "A", Email: "a@x.com", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "msg-1" || res.Message != "hi" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("explicit subject and phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
				if m.Subject != "Pricing" || m.Phone == nil || *m.Phone != "12345" {
					t.Fatalf("unexpected message: %+v", m)
				}
				return m, nil
			},
		)

		_, err := uc.Send(context.Background(), SendContactInput{Name: "A", Email: "a@x.com", Phone: "12345", Subject: "Pricing", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContactUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
	uc := NewContactUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ContactMessage{}, nil)

	if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrContactMessageNotFound) {
		t.Fatalf("expected ErrContactMessageNotFound, got %v", err)
	}
}
