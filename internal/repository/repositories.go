package repository

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users     *UserRepository
	Events    *EventRepository
	Bookings  *BookingRepository
	Enquiries *EnquiryRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds every repository on db.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Events:    NewEventRepository(db),
		Bookings:  NewBookingRepository(db),
		Enquiries: NewEnquiryRepository(db),
	}
}
