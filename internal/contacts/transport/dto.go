package transport

import "github.com/google/uuid"

// CreateRequest contains the fields for adding a contact.
type CreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100,personname"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phonenum"`
}

// ContactResponse is a single contact in API responses.
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   string    `json:"createdAt"`
}

// CreateResponse is returned after a contact is stored.
type CreateResponse struct {
	Message string          `json:"message"`
	Contact ContactResponse `json:"contact"`
}

// ListResponse is the owner's full phone book.
type ListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}
