package ports

import "context"

// ProjectInput carries an inbound project payload. Nil pointers and nil slices
// mean "not supplied": required on create, defaulted from the stored project
// on update.
type ProjectInput struct {
	Title          *string
	Description    *string
	TitleEN        *string
	DescriptionEN  *string
	Techs          []string
	RepoURL        *string
	LiveURL        *string
	Images         []string
	ImageURL       *string
	MainImageIndex *int
}

// ProjectView is the outward-facing representation of a project: lists are
// decoded, the main image is resolved, and locally hosted image paths are
// already rewritten to absolute URLs.
type ProjectView struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TitleEN        string   `json:"title_en,omitempty"`
	DescriptionEN  string   `json:"description_en,omitempty"`
	Techs          []string `json:"techs"`
	RepoURL        string   `json:"repo_url"`
	LiveURL        string   `json:"live_url,omitempty"`
	Images         []string `json:"images"`
	ImageURL       string   `json:"image_url,omitempty"`
	MainImageIndex int      `json:"main_image_index"`
	MainImage      *string  `json:"main_image"`
	CreatedAt      *string  `json:"created_at"`
}

// ProjectService defines the project validation, serialization, and CRUD
// pipeline. Reads are anonymous; mutations sit behind authentication.
type ProjectService interface {
	Create(ctx context.Context, input ProjectInput) (*ProjectView, error)
	Get(ctx context.Context, id string) (*ProjectView, error)
	List(ctx context.Context) ([]ProjectView, error)
	Update(ctx context.Context, id string, input ProjectInput) (*ProjectView, error)
	Delete(ctx context.Context, id string) error
}
