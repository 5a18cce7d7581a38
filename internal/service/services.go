package service

import (
	"github.com/deppfellow/schoolsite/internal/lib/job"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type Services struct {
	Auth       *AuthService
	News       *NewsService
	Admissions *AdmissionService
	Contact    *ContactService
	Events     *EventService
	Results    *ResultService
	Gallery    *GalleryService
	Faculty    *FacultyService
	Dashboard  *DashboardService
	Seed       *SeedService
	Job        *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Job:        s.Job,
		Auth:       NewAuthService(s, repos),
		News:       NewNewsService(s, repos),
		Admissions: NewAdmissionService(s, repos),
		Contact:    NewContactService(s, repos),
		Events:     NewEventService(s, repos),
		Results:    NewResultService(s, repos),
		Gallery:    NewGalleryService(s, repos),
		Faculty:    NewFacultyService(s, repos),
		Dashboard:  NewDashboardService(s, repos),
		Seed:       NewSeedService(s, repos),
	}, nil
}
