package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockwise/inventory-api/internal/models"
	"github.com/stockwise/inventory-api/internal/repo"
)

const maxImageMemory = 32 << 20 // form parse buffer, not an upload cap

// parseProductForm reads the multipart (or urlencoded) product fields.
// Absent optional fields keep their zero/default values, mirroring form
// model binding; malformed values are a decode error surfaced as 400.
func parseProductForm(r *http.Request) (models.Product, error) {
	if err := r.ParseMultipartForm(maxImageMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.Product{}, err
	}

	var p models.Product
	p.Name = r.FormValue("name")

	if s := r.FormValue("unitprice"); s != "" {
		price, err := decimal.NewFromString(s)
		if err != nil {
			return models.Product{}, err
		}
		p.UnitPrice = price
	}
	if s := r.FormValue("unitinstock"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return models.Product{}, err
		}
		p.UnitInStock = n
	}
	if s := r.FormValue("categoryid"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return models.Product{}, err
		}
		p.CategoryID = n
	}

	now := time.Now().UTC()
	p.CreatedDate = now
	p.ModifiedDate = now
	if s := r.FormValue("createddate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return models.Product{}, err
		}
		p.CreatedDate = t
	}
	if s := r.FormValue("modifieddate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return models.Product{}, err
		}
		p.ModifiedDate = t
	}

	return p, nil
}

// imageAttach wraps the optional "image" file part into an AttachFunc for
// the repository. It returns nil when no image was uploaded. The returned
// closer must be deferred by the caller.
func imageAttach(r *http.Request) (repo.AttachFunc, func()) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, func() {}
	}
	attach := func() (string, error) {
		return imageStore.Save(file, header.Filename)
	}
	return attach, func() { file.Close() }
}

// ListProductsHandler godoc
// @Summary List products joined with their category name
// @Description Paged listing with optional case-insensitive name search and category filter. Total counts the filtered set before paging; limit is not capped.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based, default 1)"
// @Param limit query int false "Page size (default 100)"
// @Param searchQuery query string false "Substring match on product name"
// @Param selectedCategory query int false "Exact category id"
// @Success 200 {object} ProductListResult
// @Failure 500 {string} string "Internal error"
// @Router /api/Product [get]
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	limit := 100
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 1 {
		page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n >= 1 {
		limit = n
	}

	filter := repo.ProductFilter{
		Page:             page,
		Limit:            limit,
		SearchQuery:      q.Get("searchQuery"),
		SelectedCategory: parseIntPtr(q.Get("selectedCategory")),
	}

	products, total, err := productRepo.Filter(r.Context(), filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.ProductWithCategory{}
	}

	writeJSON(w, http.StatusOK, ProductListResult{Total: total, Products: products})
}

// GetProductByIDHandler godoc
// @Summary Get a product by id, joined with its category name
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductWithCategory
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/Product/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a product
// @Description Multipart form with product fields and an optional image part. Without an image the picture is the no-image sentinel and nothing is written to disk.
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param unitprice formData number false "Unit price"
// @Param unitinstock formData int false "Units in stock"
// @Param categoryid formData int false "Category id"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /api/Product [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := parseProductForm(r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	attach, closeImage := imageAttach(r)
	defer closeImage()

	created, err := productRepo.Create(r.Context(), p, attach)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Copies name, unitprice, unitinstock, categoryid and modifieddate from the form. A new image part replaces the stored file; the old file is removed after the new one is committed, unless it is the sentinel.
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /api/Product/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	p, err := parseProductForm(r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	p.ID = id

	attach, closeImage := imageAttach(r)
	defer closeImage()

	updated, oldPicture, err := productRepo.Update(r.Context(), p, attach)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	// The replaced file goes away only after the new one is committed.
	if attach != nil {
		imageStore.Remove(oldPicture)
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product and its image file
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/Product/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	deleted, err := productRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	imageStore.Remove(deleted.Picture)

	writeJSON(w, http.StatusOK, deleted)
}
