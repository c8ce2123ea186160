package customer

func ToDTO(c Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// ToEntity copies the DTO fields, dropping CustomerURL.
func ToEntity(dto CustomerDTO) Customer {
	return Customer{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}
}
