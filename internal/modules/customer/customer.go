package customer

// BaseURL is the collection path customers are served under.
const BaseURL = "/api/v1/customers"

// Customer is the persisted customer record.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
}

func (c *Customer) Identity() int64   { return c.ID }
func (c *Customer) AssignID(id int64) { c.ID = id }

// CustomerDTO is the wire representation of a customer.
type CustomerDTO struct {
	ID          int64  `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CustomerURL string `json:"customer_url,omitempty"`
}

// CustomerPatch carries a partial update. Nil fields are left untouched.
type CustomerPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// CustomerListDTO wraps the collection response.
type CustomerListDTO struct {
	Customers []*CustomerDTO `json:"customers"`
}
