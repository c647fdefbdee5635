package models

// Project is one portfolio item.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DemoURL     string `json:"demo_url"`
	RepoURL     string `json:"repo_url"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProjectInput carries project create/update fields. When Image is set the
// request is multipart with the file under "image".
type ProjectInput struct {
	Name        string
	DemoURL     string
	RepoURL     string
	Description string
	Image       *Upload
}
