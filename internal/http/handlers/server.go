package handlers

import (
	"github.com/stockwise/inventory-api/internal/repo"
	"github.com/stockwise/inventory-api/internal/storage"
)

var (
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	imageStore   *storage.ImageStore
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetImageStore(s *storage.ImageStore) {
	imageStore = s
}
