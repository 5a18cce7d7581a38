package repository

import (
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/store"
)

// Repositories is a container for all repository instances, bound to one
// gateway: the server's store, or a transaction handed out by InTx.
type Repositories struct {
	db store.Gateway

	Admins     *AdminRepository
	News       *NewsRepository
	Admissions *AdmissionRepository
	Contact    *ContactRepository
	Events     *EventRepository
	Results    *ResultRepository
	Gallery    *GalleryRepository
	Faculty    *FacultyRepository
}

// NewRepositories binds the repositories to the server's persistence gateway.
func NewRepositories(s *server.Server) *Repositories {
	return newRepositories(s.Store)
}

func newRepositories(db store.Gateway) *Repositories {
	return &Repositories{
		db:         db,
		Admins:     &AdminRepository{db: db},
		News:       &NewsRepository{db: db},
		Admissions: &AdmissionRepository{db: db},
		Contact:    &ContactRepository{db: db},
		Events:     &EventRepository{db: db},
		Results:    &ResultRepository{db: db},
		Gallery:    &GalleryRepository{db: db},
		Faculty:    &FacultyRepository{db: db},
	}
}

// WithTx returns repositories that run against tx.
func (r *Repositories) WithTx(tx store.Gateway) *Repositories {
	return newRepositories(tx)
}

// Gateway returns the gateway these repositories are bound to.
func (r *Repositories) Gateway() store.Gateway {
	return r.db
}
