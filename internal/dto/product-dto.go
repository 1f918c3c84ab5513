package dto

type ProductDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
	Active    bool   `json:"active"`
}
