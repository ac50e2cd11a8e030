package request

import (
	"storefront/internal/domain/content"
	"storefront/internal/pkg/patch"
)

type HeroRequest struct {
	Title     string `json:"title" binding:"required,max=120"`
	Subtitle  string `json:"subtitle" binding:"max=300"`
	ImageURL  string `json:"image_url" binding:"required"`
	LinkURL   string `json:"link_url"`
	SortOrder int32  `json:"sort_order"`
	Active    *bool  `json:"active,omitempty"`
}

func (r HeroRequest) ToParams() content.HeroParams {
	return content.HeroParams{
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		ImageURL:  r.ImageURL,
		LinkURL:   r.LinkURL,
		SortOrder: r.SortOrder,
		Active:    patch.Coalesce(r.Active, true),
	}
}

type BroadcastRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
}
