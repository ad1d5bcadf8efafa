package records

import (
	"context"
	"strings"

	"github.com/bigredeye/gradebook/internal/apperr"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

// CreateSubject allows duplicate names.
func (s *Service) CreateSubject(ctx context.Context, name string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ValidationFailed("Subject name must not be empty")
	}

	subject := &models.Subject{Name: name}
	if err := s.store.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Info("Created subject", lf.SubjectID(subject.ID))
	return subject, nil
}

func (s *Service) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.store.ListSubjects(ctx)
}
