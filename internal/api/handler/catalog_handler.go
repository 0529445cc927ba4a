package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// CatalogHandler serves category and article CRUD. Reads are public; writes
// sit behind the admin gate in the router.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary  List categories
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  envelope.Envelope
// @Router   /category [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "categories", map[string]any{"categories": categories}))
}

// @Summary  Get a category
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Category ID"
// @Success  200  {object}  envelope.Envelope
// @Failure  404  {object}  envelope.Envelope
// @Router   /category/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalog.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "category", map[string]any{"category": category}))
}

// @Summary   Create a category
// @Tags      catalog
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      categoryRequest  true  "Category fields"
// @Success   201   {object}  envelope.Envelope
// @Failure   422   {object}  envelope.Envelope
// @Router    /category [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope.Success(http.StatusCreated, "category created", map[string]any{"category": category}))
}

// @Summary   Update a category
// @Tags      catalog
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string           true  "Category ID"
// @Param     body  body      categoryRequest  true  "Category fields"
// @Success   200   {object}  envelope.Envelope
// @Failure   404   {object}  envelope.Envelope
// @Router    /category/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.catalog.UpdateCategory(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "category updated", map[string]any{"category": category}))
}

// @Summary   Delete a category
// @Tags      catalog
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Category ID"
// @Success   200  {object}  envelope.Envelope
// @Failure   404  {object}  envelope.Envelope
// @Router    /category/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "category deleted", nil))
}

// @Summary  List articles
// @Tags     catalog
// @Produce  json
// @Param    category_id  query     string  false  "Filter by category"
// @Success  200          {object}  envelope.Envelope
// @Router   /article [get]
func (h *CatalogHandler) ListArticles(c echo.Context) error {
	articles, err := h.catalog.ListArticles(c.Request().Context(), c.QueryParam("category_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "articles", map[string]any{"articles": articles}))
}

// @Summary  Get an article
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Article ID"
// @Success  200  {object}  envelope.Envelope
// @Failure  404  {object}  envelope.Envelope
// @Router   /article/{id} [get]
func (h *CatalogHandler) GetArticle(c echo.Context) error {
	article, err := h.catalog.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "article", map[string]any{"article": article}))
}

// @Summary   Create an article
// @Tags      catalog
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      articleRequest  true  "Article fields"
// @Success   201   {object}  envelope.Envelope
// @Failure   422   {object}  envelope.Envelope
// @Router    /article [post]
func (h *CatalogHandler) CreateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	article, err := h.catalog.CreateArticle(c.Request().Context(), ports.ArticleInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope.Success(http.StatusCreated, "article created", map[string]any{"article": article}))
}

// @Summary   Update an article
// @Tags      catalog
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string          true  "Article ID"
// @Param     body  body      articleRequest  true  "Article fields"
// @Success   200   {object}  envelope.Envelope
// @Failure   404   {object}  envelope.Envelope
// @Router    /article/{id} [put]
func (h *CatalogHandler) UpdateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	article, err := h.catalog.UpdateArticle(c.Request().Context(), c.Param("id"), ports.ArticleInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "article updated", map[string]any{"article": article}))
}

// @Summary   Delete an article
// @Tags      catalog
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Article ID"
// @Success   200  {object}  envelope.Envelope
// @Failure   404  {object}  envelope.Envelope
// @Router    /article/{id} [delete]
func (h *CatalogHandler) DeleteArticle(c echo.Context) error {
	if err := h.catalog.DeleteArticle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "article deleted", nil))
}
