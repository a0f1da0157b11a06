package service

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
)

type Services struct {
	Users     *UserService
	Events    *EventService
	Bookings  *BookingService
	Enquiries *EnquiryService
}

// NewServices wires every service. Email jobs are only enqueued when the
// server runs a job service.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Users:     NewUserService(repos.Users),
		Events:    NewEventService(repos.Events, repos.Bookings),
		Bookings:  NewBookingService(repos, tasks),
		Enquiries: NewEnquiryService(repos.Enquiries, tasks),
	}, nil
}
