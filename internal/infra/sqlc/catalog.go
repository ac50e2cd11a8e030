package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, category_id, name, slug, description, price_cents, compare_at_cents, stock, image_url, active, created_at, updated_at`

const bundleColumns = `id, name, slug, mode, percent_off, amount_off_cents, active, created_at, updated_at`

// ---- categories

const createCategory = `-- name: CreateCategory :exec
INSERT INTO categories (id, name, slug, created_at) VALUES ($1, $2, $3, $4)
`

type CreateCategoryParams struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateCategory(ctx context.Context, db DBTX, arg CreateCategoryParams) error {
	_, err := db.Exec(ctx, createCategory, arg.ID, arg.Name, arg.Slug, arg.CreatedAt)
	return err
}

const updateCategory = `-- name: UpdateCategory :execrows
UPDATE categories SET name = $2, slug = $3 WHERE id = $1
`

type UpdateCategoryParams struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func (q *Queries) UpdateCategory(ctx context.Context, db DBTX, arg UpdateCategoryParams) (int64, error) {
	result, err := db.Exec(ctx, updateCategory, arg.ID, arg.Name, arg.Slug)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCategory = `-- name: DeleteCategory :execrows
DELETE FROM categories WHERE id = $1
`

func (q *Queries) DeleteCategory(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCategory, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findCategoryByID = `-- name: FindCategoryByID :one
SELECT id, name, slug, created_at FROM categories WHERE id = $1
`

func (q *Queries) FindCategoryByID(ctx context.Context, db DBTX, id uuid.UUID) (Categories, error) {
	row := db.QueryRow(ctx, findCategoryByID, id)
	var i Categories
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.CreatedAt)
	return i, err
}

const listCategories = `-- name: ListCategories :many
SELECT id, name, slug, created_at FROM categories ORDER BY name ASC
`

func (q *Queries) ListCategories(ctx context.Context, db DBTX) ([]Categories, error) {
	rows, err := db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Categories
	for rows.Next() {
		var i Categories
		if err := rows.Scan(&i.ID, &i.Name, &i.Slug, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ---- products

const createProduct = `-- name: CreateProduct :exec
INSERT INTO products (id, category_id, name, slug, description, price_cents, compare_at_cents, stock, image_url, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
`

type CreateProductParams struct {
	ID             uuid.UUID          `json:"id"`
	CategoryID     pgtype.UUID        `json:"category_id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	PriceCents     int64              `json:"price_cents"`
	CompareAtCents pgtype.Int8        `json:"compare_at_cents"`
	Stock          int32              `json:"stock"`
	ImageUrl       string             `json:"image_url"`
	Active         bool               `json:"active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateProduct(ctx context.Context, db DBTX, arg CreateProductParams) error {
	_, err := db.Exec(ctx, createProduct,
		arg.ID,
		arg.CategoryID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.PriceCents,
		arg.CompareAtCents,
		arg.Stock,
		arg.ImageUrl,
		arg.Active,
		arg.CreatedAt,
	)
	return err
}

const updateProduct = `-- name: UpdateProduct :execrows
UPDATE products
SET category_id = $2, name = $3, slug = $4, description = $5, price_cents = $6,
    compare_at_cents = $7, image_url = $8, active = $9, updated_at = $10
WHERE id = $1
`

type UpdateProductParams struct {
	ID             uuid.UUID          `json:"id"`
	CategoryID     pgtype.UUID        `json:"category_id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	PriceCents     int64              `json:"price_cents"`
	CompareAtCents pgtype.Int8        `json:"compare_at_cents"`
	ImageUrl       string             `json:"image_url"`
	Active         bool               `json:"active"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateProduct(ctx context.Context, db DBTX, arg UpdateProductParams) (int64, error) {
	result, err := db.Exec(ctx, updateProduct,
		arg.ID,
		arg.CategoryID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.PriceCents,
		arg.CompareAtCents,
		arg.ImageUrl,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteProduct = `-- name: DeleteProduct :execrows
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const adjustProductStock = `-- name: AdjustProductStock :one
UPDATE products SET stock = stock + $2, updated_at = now()
WHERE id = $1 AND stock + $2 >= 0
RETURNING stock
`

type AdjustProductStockParams struct {
	ID    uuid.UUID `json:"id"`
	Delta int32     `json:"delta"`
}

// AdjustProductStock returns pgx.ErrNoRows when the change would go below zero.
func (q *Queries) AdjustProductStock(ctx context.Context, db DBTX, arg AdjustProductStockParams) (int32, error) {
	row := db.QueryRow(ctx, adjustProductStock, arg.ID, arg.Delta)
	var stock int32
	err := row.Scan(&stock)
	return stock, err
}

const findProductByID = `-- name: FindProductByID :one
SELECT ` + productColumns + ` FROM products WHERE id = $1
`

func (q *Queries) FindProductByID(ctx context.Context, db DBTX, id uuid.UUID) (Products, error) {
	row := db.QueryRow(ctx, findProductByID, id)
	var i Products
	err := scanProduct(row, &i)
	return i, err
}

const findProductBySlug = `-- name: FindProductBySlug :one
SELECT ` + productColumns + ` FROM products WHERE slug = $1
`

func (q *Queries) FindProductBySlug(ctx context.Context, db DBTX, slug string) (Products, error) {
	row := db.QueryRow(ctx, findProductBySlug, slug)
	var i Products
	err := scanProduct(row, &i)
	return i, err
}

const listProductsByIDs = `-- name: ListProductsByIDs :many
SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListProductsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Products, error) {
	return q.queryProducts(ctx, db, listProductsByIDs, ids)
}

const listProducts = `-- name: ListProducts :many
SELECT ` + productColumns + ` FROM products
WHERE ($1::uuid IS NULL OR category_id = $1)
  AND ($2::text IS NULL OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
  AND (NOT $3::boolean OR active)
  AND ($4::timestamptz IS NULL OR (created_at, id) < ($4, $5::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $6
`

type ListProductsParams struct {
	CategoryID     pgtype.UUID        `json:"category_id"`
	Search         pgtype.Text        `json:"search"`
	ActiveOnly     bool               `json:"active_only"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListProducts(ctx context.Context, db DBTX, arg ListProductsParams) ([]Products, error) {
	return q.queryProducts(ctx, db, listProducts,
		arg.CategoryID,
		arg.Search,
		arg.ActiveOnly,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
}

func (q *Queries) queryProducts(ctx context.Context, db DBTX, sql string, args ...interface{}) ([]Products, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Products
	for rows.Next() {
		var i Products
		if err := scanProduct(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanProduct(row interface{ Scan(...any) error }, i *Products) error {
	return row.Scan(
		&i.ID,
		&i.CategoryID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.PriceCents,
		&i.CompareAtCents,
		&i.Stock,
		&i.ImageUrl,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

// ---- bundles

const createBundle = `-- name: CreateBundle :exec
INSERT INTO bundles (id, name, slug, mode, percent_off, amount_off_cents, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
`

type CreateBundleParams struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Mode           string             `json:"mode"`
	PercentOff     pgtype.Numeric     `json:"percent_off"`
	AmountOffCents pgtype.Int8        `json:"amount_off_cents"`
	Active         bool               `json:"active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBundle(ctx context.Context, db DBTX, arg CreateBundleParams) error {
	_, err := db.Exec(ctx, createBundle,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Mode,
		arg.PercentOff,
		arg.AmountOffCents,
		arg.Active,
		arg.CreatedAt,
	)
	return err
}

const updateBundle = `-- name: UpdateBundle :execrows
UPDATE bundles
SET name = $2, slug = $3, mode = $4, percent_off = $5, amount_off_cents = $6, active = $7, updated_at = $8
WHERE id = $1
`

type UpdateBundleParams struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Mode           string             `json:"mode"`
	PercentOff     pgtype.Numeric     `json:"percent_off"`
	AmountOffCents pgtype.Int8        `json:"amount_off_cents"`
	Active         bool               `json:"active"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBundle(ctx context.Context, db DBTX, arg UpdateBundleParams) (int64, error) {
	result, err := db.Exec(ctx, updateBundle,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Mode,
		arg.PercentOff,
		arg.AmountOffCents,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBundle = `-- name: DeleteBundle :execrows
DELETE FROM bundles WHERE id = $1
`

func (q *Queries) DeleteBundle(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBundle, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findBundleByID = `-- name: FindBundleByID :one
SELECT ` + bundleColumns + ` FROM bundles WHERE id = $1
`

func (q *Queries) FindBundleByID(ctx context.Context, db DBTX, id uuid.UUID) (Bundles, error) {
	row := db.QueryRow(ctx, findBundleByID, id)
	var i Bundles
	err := scanBundle(row, &i)
	return i, err
}

const listBundles = `-- name: ListBundles :many
SELECT ` + bundleColumns + ` FROM bundles
WHERE (NOT $1::boolean OR active)
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListBundles(ctx context.Context, db DBTX, activeOnly bool) ([]Bundles, error) {
	return q.queryBundles(ctx, db, listBundles, activeOnly)
}

const listBundlesByIDs = `-- name: ListBundlesByIDs :many
SELECT ` + bundleColumns + ` FROM bundles WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListBundlesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Bundles, error) {
	return q.queryBundles(ctx, db, listBundlesByIDs, ids)
}

func (q *Queries) queryBundles(ctx context.Context, db DBTX, sql string, args ...interface{}) ([]Bundles, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bundles
	for rows.Next() {
		var i Bundles
		if err := scanBundle(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanBundle(row interface{ Scan(...any) error }, i *Bundles) error {
	return row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Mode,
		&i.PercentOff,
		&i.AmountOffCents,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

const insertBundleItem = `-- name: InsertBundleItem :exec
INSERT INTO bundle_items (bundle_id, product_id, position) VALUES ($1, $2, $3)
`

type InsertBundleItemParams struct {
	BundleID  uuid.UUID `json:"bundle_id"`
	ProductID uuid.UUID `json:"product_id"`
	Position  int32     `json:"position"`
}

func (q *Queries) InsertBundleItem(ctx context.Context, db DBTX, arg InsertBundleItemParams) error {
	_, err := db.Exec(ctx, insertBundleItem, arg.BundleID, arg.ProductID, arg.Position)
	return err
}

const deleteBundleItems = `-- name: DeleteBundleItems :exec
DELETE FROM bundle_items WHERE bundle_id = $1
`

func (q *Queries) DeleteBundleItems(ctx context.Context, db DBTX, bundleID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteBundleItems, bundleID)
	return err
}

const listBundleItems = `-- name: ListBundleItems :many
SELECT bundle_id, product_id, position FROM bundle_items
WHERE bundle_id = ANY($1::uuid[])
ORDER BY bundle_id, position
`

func (q *Queries) ListBundleItems(ctx context.Context, db DBTX, bundleIds []uuid.UUID) ([]BundleItems, error) {
	rows, err := db.Query(ctx, listBundleItems, bundleIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BundleItems
	for rows.Next() {
		var i BundleItems
		if err := rows.Scan(&i.BundleID, &i.ProductID, &i.Position); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
