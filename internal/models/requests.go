package models

// TokenRequest is the POST /jwt body. Clients send the identity email under
// either key; at least one must be present.
type TokenRequest struct {
	Email     string `json:"email" validate:"required_without=UserEmail"`
	UserEmail string `json:"userEmail" validate:"required_without=Email"`
}

// IdentityEmail returns whichever email field the client filled in.
func (r *TokenRequest) IdentityEmail() string {
	if r.Email != "" {
		return r.Email
	}
	return r.UserEmail
}

// StatusUpdateRequest is the PATCH /job-applications/:id body. Any fields
// other than status are ignored.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
