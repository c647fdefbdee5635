package models

// PublicUser is the subset of a user shown on the public portfolio page.
type PublicUser struct {
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// Portfolio is the public view of a user and their projects.
type Portfolio struct {
	User     PublicUser `json:"user"`
	Projects []Project  `json:"projects"`
}

// ContactMessage is a visitor message delivered to a portfolio owner.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
