package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	id        uuid.UUID
	name      Name
	slug      Slug
	createdAt time.Time
}

func NewCategory(id uuid.UUID, name, slug string, now time.Time) (*Category, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	s, err := slugOrDerive(slug, n)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Category{id: id, name: n, slug: s, createdAt: now}, nil
}

func ReconstructCategory(id uuid.UUID, name, slug string, createdAt time.Time) *Category {
	return &Category{id: id, name: Name(name), slug: Slug(slug), createdAt: createdAt}
}

func (c *Category) Rename(name, slug string) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	s, err := slugOrDerive(slug, n)
	if err != nil {
		return err
	}
	c.name = n
	c.slug = s
	return nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() Name           { return c.name }
func (c *Category) Slug() Slug           { return c.slug }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
