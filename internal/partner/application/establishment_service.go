package application

import (
	"context"

	partnerdomain "github.com/petzim/petzim-services/api/internal/partner/domain"
)

// establishmentService implements EstablishmentService.
type establishmentService struct {
	repo EstablishmentRepository
}

func NewEstablishmentService(repo EstablishmentRepository) EstablishmentService {
	return &establishmentService{repo: repo}
}

func (s *establishmentService) List(ctx context.Context, ownerID string) ([]partnerdomain.Establishment, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *establishmentService) Detail(ctx context.Context, ownerID, establishmentID string) (*partnerdomain.Establishment, error) {
	return s.repo.FindByKey(ctx, ownerID, establishmentID)
}

func (s *establishmentService) Create(ctx context.Context, ownerID string, cmd UpsertEstablishmentCommand) (*partnerdomain.Establishment, error) {
	establishment, err := partnerdomain.NewEstablishment(
		ownerID,
		cmd.Name,
		cmd.Category,
		cmd.Address,
		cmd.Phone,
		cmd.Hours,
		cmd.Description,
		cmd.PriceTier,
		cmd.Services,
	)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, establishment); err != nil {
		return nil, err
	}
	return establishment, nil
}

func (s *establishmentService) Update(ctx context.Context, ownerID, establishmentID string, cmd UpdateEstablishmentCommand) (*partnerdomain.Establishment, error) {
	current, err := s.repo.FindByKey(ctx, ownerID, establishmentID)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if cmd.Name != nil {
		name = *cmd.Name
	}
	category := current.Category.String()
	if cmd.Category != nil {
		category = *cmd.Category
	}
	address := current.Address
	if cmd.Address != nil {
		address = *cmd.Address
	}
	phone := current.Phone
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	hours := current.Hours
	if cmd.Hours != nil {
		hours = *cmd.Hours
	}
	description := current.Description
	if cmd.Description != nil {
		description = *cmd.Description
	}
	priceTier := current.PriceTier
	if cmd.PriceTier != nil {
		priceTier = *cmd.PriceTier
	}
	services := current.Services
	if cmd.Services != nil {
		services = *cmd.Services
	}

	updated, err := partnerdomain.NewEstablishment(ownerID, name, category, address, phone, hours, description, priceTier, services)
	if err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.ReviewsCount = current.ReviewsCount
	updated.Rating = current.Rating
	updated.CreatedAt = current.CreatedAt

	// UpdateProfile grava apenas os campos descritivos; a sequência de
	// avaliações e seus caches ficam intocados.
	if err := s.repo.UpdateProfile(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *establishmentService) Delete(ctx context.Context, ownerID, establishmentID string) error {
	return s.repo.Delete(ctx, ownerID, establishmentID)
}
