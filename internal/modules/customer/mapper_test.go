package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDTO(t *testing.T) {
	dto := ToDTO(Customer{ID: 1, FirstName: "Joe", LastName: "Dirt"})

	assert.Equal(t, CustomerDTO{ID: 1, FirstName: "Joe", LastName: "Dirt"}, dto)
}

func TestToEntity_DropsURL(t *testing.T) {
	c := ToEntity(CustomerDTO{ID: 2, FirstName: "Ann", LastName: "Other", CustomerURL: "/api/v1/customers/2"})

	assert.Equal(t, Customer{ID: 2, FirstName: "Ann", LastName: "Other"}, c)
}

func TestMapper_RoundTrip(t *testing.T) {
	for _, c := range []Customer{
		{},
		{ID: 3, FirstName: "Bob", LastName: "Marley"},
		{ID: 4, FirstName: "Sid"},
	} {
		assert.Equal(t, c, ToEntity(ToDTO(c)))
	}
}
