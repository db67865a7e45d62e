package usecase

import (
	"context"
	"log"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"
	"strings"
	"time"
)

type SendContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// IContactUseCase handles general inquiries from the contact form.

type IContactUseCase interface {
	Send(ctx context.Context, in SendContactInput) (entities.ContactMessage, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo interfaces.IContactMessageRepository
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactMessageRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

func (u *ContactUseCase) Send(ctx context.Context, in SendContactInput) (entities.ContactMessage, error) {
	if err := requireFields(
		[2]string{"name", in.Name},
		[2]string{"email", in.Email},
		[2]string{"message", in.Message},
	); err != nil {
		return entities.ContactMessage{}, err
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = entities.DefaultContactSubject
	}

	m := entities.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     optionalString(in.Phone),
		Subject:   subject,
		Message:   in.Message,
		Status:    entities.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[contact][usecase] create failed email=%s err=%v", m.Email, err)
		return entities.ContactMessage{}, storageErr("create contact message", err)
	}
	log.Printf("[contact][usecase] stored id=%s subject=%q", created.ID, created.Subject)
	return created, nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactMessage{}, ErrContactMessageNotFound
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContactMessage{}, storageErr("get contact message", err)
	}
	if m.ID == "" {
		return entities.ContactMessage{}, ErrContactMessageNotFound
	}
	return m, nil
}

func (u *ContactUseCase) List(ctx context.Context) ([]entities.ContactMessage, error) {
	messages, err := u.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list contact messages", err)
	}
	sortNewestFirst(messages, func(m entities.ContactMessage) time.Time { return m.CreatedAt })
	return messages, nil
}
