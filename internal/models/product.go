package models

// Product is a catalog product as returned by the remote product API.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RichDescription string   `json:"richDescription"`
	Image           string   `json:"image"`
	Images          []string `json:"images,omitempty"`
	Brand           string   `json:"brand"`
	Price           float64  `json:"price"`
	Category        Category `json:"category"`
	CountInStock    int      `json:"countInStock"`
	Rating          float64  `json:"rating"`
	NumReviews      int      `json:"numReviews"`
	IsFeatured      bool     `json:"isFeatured"`
	DateCreated     string   `json:"dateCreated,omitempty"`
}

// ProductInput is the payload sent to the remote API when creating or
// updating a product. Category is the referenced category ID.
type ProductInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription,omitempty"`
	Image           string  `json:"image"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	CountInStock    int     `json:"countInStock"`
	Rating          float64 `json:"rating,omitempty"`
	NumReviews      int     `json:"numReviews,omitempty"`
	IsFeatured      bool    `json:"isFeatured,omitempty"`
}
