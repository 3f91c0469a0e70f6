package service

import (
	"context"
	"strings"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// TechnicianService manages the technician roster. Workload is owned by
// the ticket flow and is read-only here.
type TechnicianService struct {
	technicians repository.TechnicianRepository
}

// NewTechnicianService constructs the service.
func NewTechnicianService(technicians repository.TechnicianRepository) *TechnicianService {
	return &TechnicianService{technicians: technicians}
}

// TechnicianInput describes create/update payloads.
type TechnicianInput struct {
	Name       string
	Email      string
	Speciality string
}

// TechnicianWorkload is the scaled workload view for dashboards.
type TechnicianWorkload struct {
	Technician domain.Technician `json:"technician"`
	Percentage int               `json:"percentage"`
}

// List returns all technicians.
func (s *TechnicianService) List(ctx context.Context, actor domain.User) ([]domain.Technician, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	technicians, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return technicians, nil
}

// Get fetches a single technician.
func (s *TechnicianService) Get(ctx context.Context, actor domain.User, id int) (*domain.Technician, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	technician, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return technician, nil
}

// Create registers a technician with zero workload.
func (s *TechnicianService) Create(ctx context.Context, actor domain.User, input TechnicianInput) (*domain.Technician, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("only administrators manage technicians")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	technician := &domain.Technician{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Speciality: strings.TrimSpace(input.Speciality),
	}
	if err := s.technicians.Create(ctx, technician); err != nil {
		return nil, apperrors.MapError(err)
	}
	return technician, nil
}

// Update merges profile changes. The repository keeps workload untouched.
func (s *TechnicianService) Update(ctx context.Context, actor domain.User, id int, input TechnicianInput) (*domain.Technician, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("only administrators manage technicians")
	}
	existing, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if strings.TrimSpace(input.Name) != "" {
		existing.Name = strings.TrimSpace(input.Name)
	}
	if strings.TrimSpace(input.Email) != "" {
		existing.Email = strings.TrimSpace(input.Email)
	}
	if strings.TrimSpace(input.Speciality) != "" {
		existing.Speciality = strings.TrimSpace(input.Speciality)
	}
	if err := s.technicians.Update(ctx, existing); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.technicians.GetByID(ctx, id)
}

// Delete removes a technician from the roster. Tickets still naming the
// technician keep their assignee string.
func (s *TechnicianService) Delete(ctx context.Context, actor domain.User, id int) error {
	if actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("only administrators manage technicians")
	}
	if err := s.technicians.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// WorkloadSummary scales each technician's open-ticket count against the
// busiest technician, with a floor so small teams do not render full bars.
func (s *TechnicianService) WorkloadSummary(ctx context.Context, actor domain.User) ([]TechnicianWorkload, error) {
	technicians, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	maxLoad := 0
	for _, t := range technicians {
		if t.Workload > maxLoad {
			maxLoad = t.Workload
		}
	}
	out := make([]TechnicianWorkload, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, TechnicianWorkload{
			Technician: t,
			Percentage: status.WorkloadPercentage(t.Workload, maxLoad),
		})
	}
	return out, nil
}
