package request

type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	Occupation string `json:"occupation"`
	DOB        string `json:"dob"`
}
