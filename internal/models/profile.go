package models

// Profile is the editable account profile shared by all roles. Role
// specific endpoints return the same shape with role specific fields
// filled in.
type Profile struct {
	ID             int64  `json:"id,omitempty"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Country        string `json:"country,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`

	// Guide only.
	Languages  string `json:"languages,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// UploadResult is returned by the profile picture upload endpoint.
type UploadResult struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}
