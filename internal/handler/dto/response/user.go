package response

import (
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Occupation string    `json:"occupation"`
	Phone      string    `json:"phone"`
	DOB        string    `json:"dob"`
}

func FromUserProfileView(view *queries.UserProfileView) *UserProfileResponse {
	var resp UserProfileResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
