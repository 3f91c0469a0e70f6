package service

import (
	"context"
	"strings"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// CustomerService coordinates customer CRUD with role scoping.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CustomerInput describes create/update payloads.
type CustomerInput struct {
	Name   string
	Email  string
	Phone  string
	Status domain.CustomerStatus
}

// List returns customers visible to the actor. Customer-role callers see
// only their own company.
func (s *CustomerService) List(ctx context.Context, actor domain.User) ([]domain.Customer, error) {
	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role != domain.RoleCustomer {
		return all, nil
	}
	scoped := make([]domain.Customer, 0, 1)
	for _, c := range all {
		if c.ID == actor.CustomerID {
			scoped = append(scoped, c)
		}
	}
	return scoped, nil
}

// Get fetches a customer, enforcing customer ownership.
func (s *CustomerService) Get(ctx context.Context, actor domain.User, id int) (*domain.Customer, error) {
	if actor.Role == domain.RoleCustomer && id != actor.CustomerID {
		return nil, apperrors.NewForbidden("access denied")
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// Create adds a customer. Customer-role callers are rejected.
func (s *CustomerService) Create(ctx context.Context, actor domain.User, input CustomerInput) (*domain.Customer, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("customers cannot manage customer records")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}

	customer := &domain.Customer{
		Name:   strings.TrimSpace(input.Name),
		Email:  input.Email,
		Phone:  input.Phone,
		Status: input.Status,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// Update modifies an existing customer.
func (s *CustomerService) Update(ctx context.Context, actor domain.User, id int, input CustomerInput) (*domain.Customer, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("customers cannot manage customer records")
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if input.Name != "" {
		customer.Name = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		customer.Email = input.Email
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}
	if input.Status != "" {
		customer.Status = input.Status
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, actor domain.User, id int) error {
	if actor.Role == domain.RoleCustomer {
		return apperrors.NewForbidden("customers cannot manage customer records")
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
