package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

// ProjectService normalizes and validates inbound project payloads and
// produces the outward-facing representation on reads.
type ProjectService struct {
	projects ports.ProjectRepository
	baseURL  string
	clock    ports.Clock
	log      zerolog.Logger
}

// NewProjectService builds a ProjectService. baseURL is the server's public
// address, used to materialize locally hosted image paths into absolute URLs.
func NewProjectService(projects ports.ProjectRepository, baseURL string, clock ports.Clock, log zerolog.Logger) *ProjectService {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &ProjectService{
		projects: projects,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		clock:    clock,
		log:      log,
	}
}

func (s *ProjectService) Create(ctx context.Context, input ports.ProjectInput) (*ports.ProjectView, error) {
	project, err := s.normalize(input, nil)
	if err != nil {
		return nil, err
	}
	project.CreatedAt = s.clock()

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return s.serialize(created), nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*ports.ProjectView, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serialize(project), nil
}

func (s *ProjectService) List(ctx context.Context) ([]ports.ProjectView, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, *s.serialize(p))
	}
	return views, nil
}

// Update merges input over the stored project and persists the result.
// Validation completes before the single-document write, so a rejected payload
// leaves the stored project untouched.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.ProjectInput) (*ports.ProjectView, error) {
	existing, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project, err := s.normalize(input, existing)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Msg("project updated")
	return s.serialize(project), nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// normalize validates input and produces the storage form. With existing nil
// (create), title, description, and techs are required; on update, absent
// fields default to the stored values.
func (s *ProjectService) normalize(input ports.ProjectInput, existing *domain.Project) (*domain.Project, error) {
	p := &domain.Project{}
	if existing != nil {
		copied := *existing
		p = &copied
	}

	if err := mergeText(&p.Title, input.Title, "title", domain.MaxTitleLen); err != nil {
		return nil, err
	}
	if err := mergeText(&p.Description, input.Description, "description", domain.MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := mergeText(&p.TitleEN, input.TitleEN, "title_en", domain.MaxTitleLen); err != nil {
		return nil, err
	}
	if err := mergeText(&p.DescriptionEN, input.DescriptionEN, "description_en", domain.MaxDescriptionLen); err != nil {
		return nil, err
	}

	if p.Title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if p.Description == "" {
		return nil, domain.NewValidationError("description", "is required")
	}

	if input.Techs != nil {
		if err := validateList(input.Techs, "techs", domain.MaxTechs); err != nil {
			return nil, err
		}
		p.Techs = domain.EncodeList(input.Techs)
	} else if existing == nil {
		return nil, domain.NewValidationError("techs", "must be a list of at most %d entries", domain.MaxTechs)
	}

	if input.Images != nil {
		if err := validateList(input.Images, "images", domain.MaxImages); err != nil {
			return nil, err
		}
		p.Images = domain.EncodeList(input.Images)
	}

	if input.RepoURL != nil {
		p.RepoURL = strings.TrimSpace(*input.RepoURL)
	}
	if input.LiveURL != nil {
		p.LiveURL = strings.TrimSpace(*input.LiveURL)
	}
	if input.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*input.ImageURL)
	}

	if input.MainImageIndex != nil {
		if *input.MainImageIndex < 0 {
			return nil, domain.NewValidationError("main_image_index", "must not be negative")
		}
		p.MainImageIndex = *input.MainImageIndex
	}

	return p, nil
}

// serialize decodes the stored lists, resolves the main image, and rewrites
// locally hosted image paths to absolute URLs.
func (s *ProjectService) serialize(p *domain.Project) *ports.ProjectView {
	techs := domain.DecodeList(p.Techs)
	images := domain.DecodeList(p.Images)
	for i, img := range images {
		images[i] = s.resolveURL(img)
	}

	var mainImage *string
	if len(images) > 0 && p.MainImageIndex >= 0 && p.MainImageIndex < len(images) {
		mainImage = &images[p.MainImageIndex]
	} else if p.ImageURL != "" {
		resolved := s.resolveURL(p.ImageURL)
		mainImage = &resolved
	}

	var createdAt *string
	if !p.CreatedAt.IsZero() {
		ts := p.CreatedAt.UTC().Format(time.RFC3339)
		createdAt = &ts
	}

	return &ports.ProjectView{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		TitleEN:        p.TitleEN,
		DescriptionEN:  p.DescriptionEN,
		Techs:          techs,
		RepoURL:        p.RepoURL,
		LiveURL:        p.LiveURL,
		Images:         images,
		ImageURL:       p.ImageURL,
		MainImageIndex: p.MainImageIndex,
		MainImage:      mainImage,
		CreatedAt:      createdAt,
	}
}

// resolveURL prefixes locally hosted upload paths with the server's base
// address. External references pass through unchanged.
func (s *ProjectService) resolveURL(ref string) string {
	if strings.HasPrefix(ref, domain.UploadPathPrefix) {
		return s.baseURL + ref
	}
	return ref
}

func mergeText(dst *string, src *string, field string, max int) error {
	if src == nil {
		return nil
	}
	v := strings.TrimSpace(*src)
	if len(v) > max {
		return domain.NewValidationError(field, "must be at most %d characters", max)
	}
	*dst = v
	return nil
}

func validateList(items []string, field string, max int) error {
	if len(items) > max {
		return domain.NewValidationError(field, "must have at most %d entries", max)
	}
	for _, item := range items {
		if strings.Contains(item, domain.ListDelimiter) {
			return domain.NewValidationError(field, "entries must not contain %q", domain.ListDelimiter)
		}
	}
	return nil
}
