package content

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle    = errs.NewCategorized("title must be 1 to 120 characters", errs.ErrValidation)
	ErrInvalidImageURL = errs.NewCategorized("image url must be an absolute http(s) url", errs.ErrValidation)
	ErrInvalidLinkURL  = errs.NewCategorized("link url must be absolute or start with /", errs.ErrValidation)
)

type HeroParams struct {
	Title     string
	Subtitle  string
	ImageURL  string
	LinkURL   string
	SortOrder int32
	Active    bool
}

type HeroImage struct {
	id        uuid.UUID
	title     string
	subtitle  string
	imageURL  string
	linkURL   string
	sortOrder int32
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewHeroImage(p HeroParams, now time.Time) (*HeroImage, error) {
	h := &HeroImage{id: uuid.New(), createdAt: now}
	if err := h.apply(p, now); err != nil {
		return nil, err
	}
	return h, nil
}

func ReconstructHeroImage(id uuid.UUID, p HeroParams, createdAt, updatedAt time.Time) *HeroImage {
	return &HeroImage{
		id:        id,
		title:     p.Title,
		subtitle:  p.Subtitle,
		imageURL:  p.ImageURL,
		linkURL:   p.LinkURL,
		sortOrder: p.SortOrder,
		active:    p.Active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *HeroImage) Update(p HeroParams, now time.Time) error {
	next := *h
	if err := next.apply(p, now); err != nil {
		return err
	}
	*h = next
	return nil
}

func (h *HeroImage) apply(p HeroParams, now time.Time) error {
	title := strings.TrimSpace(p.Title)
	if title == "" || utf8.RuneCountInString(title) > 120 {
		return ErrInvalidTitle
	}
	if !isAbsoluteHTTP(p.ImageURL) {
		return ErrInvalidImageURL
	}
	link := strings.TrimSpace(p.LinkURL)
	if link != "" && !strings.HasPrefix(link, "/") && !isAbsoluteHTTP(link) {
		return ErrInvalidLinkURL
	}

	h.title = title
	h.subtitle = strings.TrimSpace(p.Subtitle)
	h.imageURL = strings.TrimSpace(p.ImageURL)
	h.linkURL = link
	h.sortOrder = p.SortOrder
	h.active = p.Active
	h.updatedAt = now
	return nil
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (h *HeroImage) ID() uuid.UUID        { return h.id }
func (h *HeroImage) Title() string        { return h.title }
func (h *HeroImage) Subtitle() string     { return h.subtitle }
func (h *HeroImage) ImageURL() string     { return h.imageURL }
func (h *HeroImage) LinkURL() string      { return h.linkURL }
func (h *HeroImage) SortOrder() int32     { return h.sortOrder }
func (h *HeroImage) Active() bool         { return h.active }
func (h *HeroImage) CreatedAt() time.Time { return h.createdAt }
func (h *HeroImage) UpdatedAt() time.Time { return h.updatedAt }
