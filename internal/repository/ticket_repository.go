package repository

import (
	"context"
	"fmt"

	"github.com/qztech/asset-console/internal/domain"
)

// TicketFilter captures ticket listing parameters. Zero values are
// wildcards.
type TicketFilter struct {
	CustomerID int
	Status     domain.TicketStatus
	Priority   domain.TicketPriority
	AssignedTo string
}

// TicketRepository encapsulates ticket persistence. Create, Update and
// Delete apply the associated workload deltas in the same critical section
// as the ticket write, so the ticket/technician coupling is never observed
// half-applied.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket, deltas []domain.WorkloadDelta) error
	Update(ctx context.Context, ticket *domain.Ticket, deltas []domain.WorkloadDelta) error
	Delete(ctx context.Context, id string, deltas []domain.WorkloadDelta) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	AppendComment(ctx context.Context, id string, comment domain.TicketComment) (*domain.Ticket, error)
}

type ticketRepository struct {
	store *MemoryStore
}

func (r *ticketRepository) Create(_ context.Context, ticket *domain.Ticket, deltas []domain.WorkloadDelta) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.ID == "" {
		s.ticketSeq++
		ticket.ID = fmt.Sprintf("TK-%d-%03d", ticket.CreatedAt.Year(), s.ticketSeq)
	}
	if ticket.Comments == nil {
		ticket.Comments = []domain.TicketComment{}
	}
	s.tickets = append(s.tickets, copyTicket(*ticket))
	s.applyWorkloadDeltas(deltas)
	return nil
}

func (r *ticketRepository) Update(_ context.Context, ticket *domain.Ticket, deltas []domain.WorkloadDelta) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			s.tickets[i] = copyTicket(*ticket)
			s.applyWorkloadDeltas(deltas)
			return nil
		}
	}
	return ErrNotFound
}

func (r *ticketRepository) Delete(_ context.Context, id string, deltas []domain.WorkloadDelta) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			s.applyWorkloadDeltas(deltas)
			return nil
		}
	}
	return ErrNotFound
}

func (r *ticketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id {
			out := copyTicket(t)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ticketRepository) List(_ context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if filter.CustomerID != 0 && t.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		out = append(out, copyTicket(t))
	}
	return out, nil
}

func (r *ticketRepository) AppendComment(_ context.Context, id string, comment domain.TicketComment) (*domain.Ticket, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Comments = append(s.tickets[i].Comments, comment)
			s.tickets[i].UpdatedAt = comment.CreatedAt
			out := copyTicket(s.tickets[i])
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
