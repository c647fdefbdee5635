package models

// Profile is the editable public profile of the signed-in user.
type Profile struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// ProfileInput carries a profile update. When Image is set the request is
// sent as multipart with the file under "profile_image"; otherwise JSON.
type ProfileInput struct {
	Name         string
	JobTitle     string
	Bio          string
	ProfileImage string
	Image        *Upload
}
