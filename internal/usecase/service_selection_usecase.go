package usecase

import (
	"context"
	"log"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"
	"strings"
	"time"
)

// IServiceSelectionUseCase records and lists service selection events.

type IServiceSelectionUseCase interface {
	Record(ctx context.Context, service string, selectedAt *time.Time) (entities.ServiceSelection, error)
	GetByID(ctx context.Context, id string) (entities.ServiceSelection, error)
	List(ctx context.Context) ([]entities.ServiceSelection, error)
}

type ServiceSelectionUseCase struct {
	repo interfaces.IServiceSelectionRepository
}

var _ IServiceSelectionUseCase = (*ServiceSelectionUseCase)(nil)

func NewServiceSelectionUseCase(repo interfaces.IServiceSelectionRepository) *ServiceSelectionUseCase {
	return &ServiceSelectionUseCase{repo: repo}
}

// Record stores a selection. selectedAt defaults to the current time.
func (u *ServiceSelectionUseCase) Record(ctx context.Context, service string, selectedAt *time.Time) (entities.ServiceSelection, error) {
	if err := requireFields([2]string{"service", service}); err != nil {
		return entities.ServiceSelection{}, err
	}

	now := time.Now().UTC()
	s := entities.ServiceSelection{
		Service:    strings.TrimSpace(service),
		SelectedAt: now,
		CreatedAt:  now,
	}
	if selectedAt != nil && !selectedAt.IsZero() {
		s.SelectedAt = selectedAt.UTC()
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[selection][usecase] create failed service=%s err=%v", s.Service, err)
		return entities.ServiceSelection{}, storageErr("create service selection", err)
	}
	log.Printf("[selection][usecase] recorded id=%s service=%s", created.ID, created.Service)
	return created, nil
}

func (u *ServiceSelectionUseCase) GetByID(ctx context.Context, id string) (entities.ServiceSelection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceSelection{}, ErrServiceSelectionNotFound
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceSelection{}, storageErr("get service selection", err)
	}
	if s.ID == "" {
		return entities.ServiceSelection{}, ErrServiceSelectionNotFound
	}
	return s, nil
}

func (u *ServiceSelectionUseCase) List(ctx context.Context) ([]entities.ServiceSelection, error) {
	selections, err := u.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list service selections", err)
	}
	sortNewestFirst(selections, func(s entities.ServiceSelection) time.Time { return s.CreatedAt })
	return selections, nil
}
