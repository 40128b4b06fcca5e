package models

// ProductPreview is the supplementary display data fetched from the
// product lookup API after a confirmed payment. Losing it only loses
// the preview panel, never the confirmation outcome.
type ProductPreview struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
}
