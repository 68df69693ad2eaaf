package repo

// ProductFilter carries the product listing parameters. Page is 1-based;
// Limit is applied as-is, with no server-side cap.
type ProductFilter struct {
	Page             int
	Limit            int
	SearchQuery      string
	SelectedCategory *int
}

// Offset converts the 1-based page into the number of rows to skip.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
