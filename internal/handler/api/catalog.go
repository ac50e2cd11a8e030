package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary List products
// @Description Active products with optional category and name search, keyset paginated
// @Tags catalog
// @Produce json
// @Param category_id query string false "Category ID"
// @Param q query string false "Name search"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.ProductResponse]
// @Failure 400 {object} httperr.Response
// @Router /catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.listProducts(c, true)
}

// @Summary List products (admin)
// @Description Includes inactive products
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PageResponse[resdto.ProductResponse]
// @Router /admin/products [get]
func (h *CatalogHandler) AdminListProducts(c *gin.Context) {
	h.listProducts(c, false)
}

func (h *CatalogHandler) listProducts(c *gin.Context, activeOnly bool) {
	var query reqdto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	filter := queries.ProductFilter{CategoryID: query.CategoryID, ActiveOnly: activeOnly}
	if query.Search != "" {
		filter.Search = &query.Search
	}
	cursor, limit := pageArgs(query.Cursor, query.Limit)

	items, next, err := h.q.ListProducts(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list products")
		return
	}
	products, err := resdto.FromProductViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(products, nextCursor(next)))
}

// @Summary Get product
// @Description Look up an active product by slug or id
// @Tags catalog
// @Produce json
// @Param slug path string true "Product slug or ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /catalog/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.q.GetProduct(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		httperr.Abort(c, err, "Failed to load product")
		return
	}
	product, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary List bundles
// @Description Active bundles whose every product is still on sale
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.BundleView
// @Router /catalog/bundles [get]
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	h.listBundles(c, true)
}

// @Summary List bundles (admin)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BundleView
// @Router /admin/bundles [get]
func (h *CatalogHandler) AdminListBundles(c *gin.Context) {
	h.listBundles(c, false)
}

func (h *CatalogHandler) listBundles(c *gin.Context, activeOnly bool) {
	bundles, err := h.q.ListBundles(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bundles")
		return
	}
	c.JSON(http.StatusOK, bundles)
}

// @Summary Create category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Create category failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 204 "No Content"
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Update category failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete category failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get product (admin)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Router /admin/products/{id} [get]
func (h *CatalogHandler) AdminGetProduct(c *gin.Context) {
	view, err := h.q.GetProduct(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		httperr.Abort(c, err, "Failed to load product")
		return
	}
	product, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Create product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.CreateProduct(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Create product failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 204 "No Content"
// @Router /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateProduct(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Update product failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteProduct(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete product failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust stock
// @Description Apply a signed delta to a product's stock
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.AdjustStockRequest true "Delta"
// @Success 200 {object} resdto.StockResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/products/{id}/stock [post]
func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	stock, err := h.cmds.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		httperr.Abort(c, err, "Stock adjustment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.StockResponse{ProductID: id, Stock: stock})
}

// @Summary Create bundle
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BundleRequest true "Bundle"
// @Success 201 {object} resdto.CreatedResponse
// @Router /admin/bundles [post]
func (h *CatalogHandler) CreateBundle(c *gin.Context) {
	var req reqdto.BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.CreateBundle(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Create bundle failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update bundle
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Bundle ID"
// @Param request body reqdto.BundleRequest true "Bundle"
// @Success 204 "No Content"
// @Router /admin/bundles/{id} [put]
func (h *CatalogHandler) UpdateBundle(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateBundle(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Update bundle failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete bundle
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 204 "No Content"
// @Router /admin/bundles/{id} [delete]
func (h *CatalogHandler) DeleteBundle(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBundle(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete bundle failed")
		return
	}
	c.Status(http.StatusNoContent)
}
