package handler

import "github.com/devportfolio/portfolio-api/internal/core/ports"

// --- Request / Response types ---

// projectRequest is shared by create and update: nil means the field was
// absent from the payload, which the pipeline defaults from the stored
// project on update. Domain bounds (title ≤ 100, description ≤ 2000, lists
// ≤ 10 entries) are enforced by the pipeline itself; the tags here only
// reject structurally bad input early.
type projectRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	TitleEN        *string  `json:"title_en"`
	DescriptionEN  *string  `json:"description_en"`
	Techs          []string `json:"techs"`
	RepoURL        *string  `json:"repo_url"       validate:"omitempty,url"`
	LiveURL        *string  `json:"live_url"       validate:"omitempty,url"`
	Images         []string `json:"images"`
	ImageURL       *string  `json:"image_url"`
	MainImageIndex *int     `json:"main_image_index"`
}

func (r projectRequest) toInput() ports.ProjectInput {
	return ports.ProjectInput{
		Title:          r.Title,
		Description:    r.Description,
		TitleEN:        r.TitleEN,
		DescriptionEN:  r.DescriptionEN,
		Techs:          r.Techs,
		RepoURL:        r.RepoURL,
		LiveURL:        r.LiveURL,
		Images:         r.Images,
		ImageURL:       r.ImageURL,
		MainImageIndex: r.MainImageIndex,
	}
}

type projectResponse struct {
	Msg     string             `json:"msg,omitempty"`
	Project *ports.ProjectView `json:"project,omitempty"`
}
