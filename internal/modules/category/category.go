package category

// BaseURL is the collection path categories are served under.
const BaseURL = "/api/v1/categories"

// Category groups products, e.g. Fruits or Nuts.
type Category struct {
	ID   int64
	Name string
}

func (c *Category) Identity() int64   { return c.ID }
func (c *Category) AssignID(id int64) { c.ID = id }

// CategoryDTO is the wire representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	CategoryURL string `json:"category_url,omitempty"`
}

// CategoryPatch carries a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name *string `json:"name"`
}

// CategoryListDTO wraps the collection response.
type CategoryListDTO struct {
	Categories []*CategoryDTO `json:"categories"`
}
