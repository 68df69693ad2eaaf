package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stockwise/inventory-api/internal/auth"
	api "github.com/stockwise/inventory-api/internal/http"
	handler "github.com/stockwise/inventory-api/internal/http/handlers"
	"github.com/stockwise/inventory-api/internal/models"
)

func createProduct(r http.Handler, name, price, stock, categoryID string) *httptest.ResponseRecorder {
	return doForm(r, http.MethodPost, "/api/Product", map[string]string{
		"name":        name,
		"unitprice":   price,
		"unitinstock": stock,
		"categoryid":  categoryID,
	}, "", nil)
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) models.Product {
	t.Helper()
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	return p
}

func uploadedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		t.Fatalf("error reading upload dir: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func clearUploads(t *testing.T) {
	t.Helper()
	for _, name := range uploadedFiles(t) {
		os.Remove(filepath.Join(uploadDir, name))
	}
}

func TestCreateProduct_WithoutImage(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")

	w := createProduct(r, "Cola", "1.5", "50", "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	p := decodeProduct(t, w)
	if p.Picture != models.NoImage {
		t.Errorf("expected picture %q, got %q", models.NoImage, p.Picture)
	}
	if files := uploadedFiles(t); len(files) != 0 {
		t.Errorf("expected no uploaded files, got %v", files)
	}
}

func TestCreateProduct_WithImage(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")

	w := doForm(r, http.MethodPost, "/api/Product", map[string]string{
		"name":        "Cola",
		"unitprice":   "1.5",
		"unitinstock": "50",
		"categoryid":  "1",
	}, "cola.png", []byte("png-bytes"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	p := decodeProduct(t, w)
	if p.Picture == models.NoImage || p.Picture == "" {
		t.Fatalf("expected a generated picture name, got %q", p.Picture)
	}
	if filepath.Ext(p.Picture) != ".png" {
		t.Errorf("expected the original extension to be preserved, got %q", p.Picture)
	}
	if _, err := os.Stat(filepath.Join(uploadDir, p.Picture)); err != nil {
		t.Errorf("expected image file on disk: %v", err)
	}
}

func TestGetProductByID_Joined(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, createProduct(r, "Cola", "1.5", "50", "1"))

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/Product/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp models.ProductWithCategory
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.CategoryName != "Drinks" {
		t.Errorf("expected categoryname 'Drinks', got %q", resp.CategoryName)
	}
	if resp.Picture != models.NoImage {
		t.Errorf("expected sentinel picture, got %q", resp.Picture)
	}
	if !resp.UnitPrice.Equal(created.UnitPrice) {
		t.Errorf("expected unitprice %s, got %s", created.UnitPrice, resp.UnitPrice)
	}
}

func TestGetProductByID_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/api/Product/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func listProducts(t *testing.T, r http.Handler, query string) handler.ProductListResult {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/Product"+query, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for %q, got %d", query, w.Code)
	}
	var resp handler.ProductListResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding listing: %v", err)
	}
	return resp
}

func TestListProducts_PagingAndTotal(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createCategory(r, "Drinks", "active")
	for i := 1; i <= 5; i++ {
		createProduct(r, fmt.Sprintf("Product %d", i), "1.0", "10", "1")
	}

	page1 := listProducts(t, r, "?page=1&limit=2")
	if page1.Total != 5 {
		t.Errorf("expected total 5, got %d", page1.Total)
	}
	if len(page1.Products) != 2 {
		t.Fatalf("expected 2 products on page 1, got %d", len(page1.Products))
	}

	// Newest first.
	if page1.Products[0].ID != 5 || page1.Products[1].ID != 4 {
		t.Errorf("expected ids [5 4], got [%d %d]", page1.Products[0].ID, page1.Products[1].ID)
	}

	// Pages are non-overlapping and reproduce the ordered list.
	var ids []int
	for page := 1; page <= 3; page++ {
		resp := listProducts(t, r, fmt.Sprintf("?page=%d&limit=2", page))
		if resp.Total != 5 {
			t.Errorf("expected total 5 on page %d, got %d", page, resp.Total)
		}
		for _, p := range resp.Products {
			ids = append(ids, p.ID)
		}
	}
	expected := []int{5, 4, 3, 2, 1}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d ids across pages, got %d", len(expected), len(ids))
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("expected id %d at position %d, got %d", expected[i], i, ids[i])
		}
	}
}

func TestListProducts_Search(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createCategory(r, "Gadgets", "active")
	createProduct(r, "Blue Widget", "9.99", "3", "1")
	createProduct(r, "Red Gizmo", "8.99", "7", "1")

	for _, query := range []string{"blue", "WIDGET", "e Wid"} {
		resp := listProducts(t, r, "?searchQuery="+url.QueryEscape(query))
		if resp.Total != 1 || len(resp.Products) != 1 || resp.Products[0].Name != "Blue Widget" {
			t.Errorf("query %q: expected only 'Blue Widget', got %+v", query, resp.Products)
		}
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createCategory(r, "Drinks", "active")
	createCategory(r, "Snacks", "active")
	createProduct(r, "Cola", "1.5", "50", "1")
	createProduct(r, "Chips", "2.5", "20", "2")
	createProduct(r, "Water", "1.0", "80", "1")

	resp := listProducts(t, r, "?selectedCategory=1")
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	for _, p := range resp.Products {
		if p.CategoryID != 1 {
			t.Errorf("expected only category 1 products, got %+v", p)
		}
	}
}

func TestUpdateProduct_FieldsOnly(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, createProduct(r, "Cola", "1.5", "50", "1"))

	w := doForm(r, http.MethodPut, fmt.Sprintf("/api/Product/%d", created.ID), map[string]string{
		"name":        "Cola Zero",
		"unitprice":   "1.75",
		"unitinstock": "40",
		"categoryid":  "1",
	}, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated := decodeProduct(t, w)
	if updated.Name != "Cola Zero" || updated.UnitInStock != 40 {
		t.Errorf("expected copied fields, got %+v", updated)
	}
	if updated.Picture != models.NoImage {
		t.Errorf("expected picture untouched, got %q", updated.Picture)
	}
	if !updated.CreatedDate.Equal(created.CreatedDate) {
		t.Errorf("expected created date untouched, got %v", updated.CreatedDate)
	}
}

func TestUpdateProduct_ReplacesImage(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, doForm(r, http.MethodPost, "/api/Product", map[string]string{
		"name": "Cola", "unitprice": "1.5", "unitinstock": "50", "categoryid": "1",
	}, "old.jpg", []byte("old")))

	w := doForm(r, http.MethodPut, fmt.Sprintf("/api/Product/%d", created.ID), map[string]string{
		"name": "Cola", "unitprice": "1.5", "unitinstock": "50", "categoryid": "1",
	}, "new.png", []byte("new"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated := decodeProduct(t, w)
	if updated.Picture == created.Picture {
		t.Error("expected a new picture name")
	}
	if _, err := os.Stat(filepath.Join(uploadDir, updated.Picture)); err != nil {
		t.Errorf("expected new image on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(uploadDir, created.Picture)); !os.IsNotExist(err) {
		t.Errorf("expected old image removed, stat err: %v", err)
	}
	if files := uploadedFiles(t); len(files) != 1 {
		t.Errorf("expected exactly one image on disk, got %v", files)
	}
}

func TestUpdateProduct_SentinelNeverDeleted(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, createProduct(r, "Cola", "1.5", "50", "1"))

	w := doForm(r, http.MethodPut, fmt.Sprintf("/api/Product/%d", created.ID), map[string]string{
		"name": "Cola", "unitprice": "1.5", "unitinstock": "50", "categoryid": "1",
	}, "first.gif", []byte("gif"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated := decodeProduct(t, w)
	if files := uploadedFiles(t); len(files) != 1 || files[0] != updated.Picture {
		t.Errorf("expected only the new image on disk, got %v", files)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doForm(r, http.MethodPut, "/api/Product/123", map[string]string{"name": "X"}, "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProduct_RemovesImage(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, doForm(r, http.MethodPost, "/api/Product", map[string]string{
		"name": "Cola", "unitprice": "1.5", "unitinstock": "50", "categoryid": "1",
	}, "cola.jpg", []byte("jpg")))

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/Product/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/Product/%d", created.ID), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if files := uploadedFiles(t); len(files) != 0 {
		t.Errorf("expected image removed with the record, got %v", files)
	}
}

func TestDeleteProduct_SentinelLeavesNoFileOperation(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	clearUploads(t)

	createCategory(r, "Drinks", "active")
	created := decodeProduct(t, createProduct(r, "Cola", "1.5", "50", "1"))

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/Product/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	deleted := decodeProduct(t, w)
	if deleted.Picture != models.NoImage {
		t.Errorf("expected sentinel picture in response, got %q", deleted.Picture)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodDelete, "/api/Product/55", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestProduct_RoleRestriction(t *testing.T) {
	t.Cleanup(clearAll)

	restricted := api.NewRouter(api.Config{
		Auth: api.AuthConfig{Secret: []byte(testSecret), Roles: []string{"manager"}},
	})

	viewerToken, err := auth.GenerateToken([]byte(testSecret), "bob", "viewer")
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/Product", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	w := httptest.NewRecorder()
	restricted.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for viewer role, got %d", w.Code)
	}
}
