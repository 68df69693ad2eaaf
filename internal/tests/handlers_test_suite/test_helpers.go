package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/stockwise/inventory-api/internal/auth"
	api "github.com/stockwise/inventory-api/internal/http"
	handler "github.com/stockwise/inventory-api/internal/http/handlers"
	"github.com/stockwise/inventory-api/internal/repo"
	"github.com/stockwise/inventory-api/internal/storage"
)

const testSecret = "test-secret"

var (
	token        string
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
	uploadDir    string
)

func init() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo)
	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)

	dir, err := os.MkdirTemp("", "uploads")
	if err != nil {
		panic(fmt.Sprintf("error creating upload dir: %v", err))
	}
	uploadDir = dir
	handler.SetImageStore(storage.NewImageStore(dir))

	token, err = auth.GenerateToken([]byte(testSecret), "admin", "admin")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func newRouter() http.Handler {
	return api.NewRouter(api.Config{
		Auth: api.AuthConfig{Secret: []byte(testSecret)},
	})
}

func clearAll() {
	categoryRepo.Clear()
	productRepo.Clear()
}

// doJSON sends an authenticated request with an optional JSON body.
func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doForm sends an authenticated multipart request with the given fields and,
// when imageName is non-empty, an image part with that filename and content.
func doForm(r http.Handler, method, path string, fields map[string]string, imageName string, imageContent []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if imageName != "" {
		part, _ := mw.CreateFormFile("image", imageName)
		part.Write(imageContent)
	}
	mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, name, status string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/Category", handler.CategoryRequest{Name: name, Status: status})
}
