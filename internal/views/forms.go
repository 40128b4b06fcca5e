package views

import (
	"tienda/internal/models"
	"tienda/internal/utils/validation"
)

// ProductForm is the admin create/update form. The checks catch
// obviously bad input before the round trip; real validation is the
// remote API's job.
type ProductForm struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Image           string  `json:"image"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	CountInStock    int     `json:"countInStock"`
	Rating          float64 `json:"rating"`
	NumReviews      int     `json:"numReviews"`
	IsFeatured      bool    `json:"isFeatured"`
}

// Validate checks the form and returns the upstream payload.
func (f ProductForm) Validate() (models.ProductInput, error) {
	v := validation.New()
	v.Require(f.Name, "name")
	v.Require(f.Description, "description")
	v.Require(f.Image, "image")
	v.Require(f.Brand, "brand")
	v.Require(f.Category, "category")
	v.Check(f.Price > 0, "price", "must be greater than zero")
	v.Range(f.CountInStock, 0, 255, "countInStock")

	if err := v.Err(); err != nil {
		return models.ProductInput{}, err
	}

	return models.ProductInput{
		Name:            f.Name,
		Description:     f.Description,
		RichDescription: f.RichDescription,
		Image:           f.Image,
		Brand:           f.Brand,
		Price:           f.Price,
		Category:        f.Category,
		CountInStock:    f.CountInStock,
		Rating:          f.Rating,
		NumReviews:      f.NumReviews,
		IsFeatured:      f.IsFeatured,
	}, nil
}

// CategoryForm is the admin category form.
type CategoryForm struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (f CategoryForm) Validate() (models.CategoryInput, error) {
	v := validation.New()
	v.Require(f.Name, "name")

	if err := v.Err(); err != nil {
		return models.CategoryInput{}, err
	}

	return models.CategoryInput{
		Name:  f.Name,
		Icon:  f.Icon,
		Color: f.Color,
	}, nil
}
