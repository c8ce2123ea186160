package category

// ToDTO copies the entity fields. CategoryURL is left for the service to fill.
func ToDTO(c Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}

// ToEntity copies the DTO fields, dropping CategoryURL.
func ToEntity(dto CategoryDTO) Category {
	return Category{
		ID:   dto.ID,
		Name: dto.Name,
	}
}
