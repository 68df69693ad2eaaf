package handlers

import "github.com/stockwise/inventory-api/internal/models"

// CategoryRequest is the JSON body of category create and update calls.
// Ids in the body are ignored; creation assigns one, update takes it from
// the path.
type CategoryRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ProductListResult is the paged product listing envelope. Total counts the
// whole filtered set, independent of paging.
type ProductListResult struct {
	Total    int64                        `json:"total"`
	Products []models.ProductWithCategory `json:"products"`
}
