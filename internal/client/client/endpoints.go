package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name         string  `json:"name"`
	JobTitle     string  `json:"job_title"`
	Bio          string  `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

type projectRequest struct {
	Name        string `json:"name"`
	DemoURL     string `json:"demo_url"`
	RepoURL     string `json:"repo_url"`
	Description string `json:"description"`
}

type contactRequest struct {
	UserID int64 `json:"user_id"`
	models.ContactMessage
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (Result[models.AuthPayload], error) {
	res := c.do(ctx, http.MethodPost, PathLogin, jsonBody{credentials{Email: email, Password: password}})
	return decode[models.AuthPayload](res)
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (Result[models.AuthPayload], error) {
	res := c.do(ctx, http.MethodPost, PathSignup, jsonBody{signupRequest{Email: email, Password: password, Name: name}})
	return decode[models.AuthPayload](res)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (Result[json.RawMessage], error) {
	res := c.do(ctx, http.MethodPost, PathForgotPassword, jsonBody{map[string]string{"email": email}})
	return settle(res)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, password string) (Result[json.RawMessage], error) {
	res := c.do(ctx, http.MethodPost, PathResetPassword, jsonBody{resetRequest{Token: token, Password: password}})
	return settle(res)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (Result[models.Profile], error) {
	return decode[models.Profile](c.do(ctx, http.MethodGet, PathProfile, nil))
}

// UpdateProfile sends multipart when in.Image is set and JSON otherwise.
func (c *HTTPClient) UpdateProfile(ctx context.Context, in models.ProfileInput) (Result[models.Profile], error) {
	var body requestBody
	if in.Image != nil {
		body = multipartBody{
			fields: []formField{
				{"name", in.Name},
				{"job_title", in.JobTitle},
				{"bio", in.Bio},
			},
			fileField: "profile_image",
			file:      in.Image,
		}
	} else {
		req := profileRequest{Name: in.Name, JobTitle: in.JobTitle, Bio: in.Bio}
		if in.ProfileImage != "" {
			req.ProfileImage = &in.ProfileImage
		}
		body = jsonBody{req}
	}
	return decode[models.Profile](c.do(ctx, http.MethodPut, PathProfile, body))
}

func (c *HTTPClient) GetProjects(ctx context.Context) (Result[[]models.Project], error) {
	res, err := decode[[]models.Project](c.do(ctx, http.MethodGet, PathProjects, nil))
	if err == nil && res.Data == nil {
		res.Data = []models.Project{}
	}
	return res, err
}

func (c *HTTPClient) AddProject(ctx context.Context, in models.ProjectInput) (Result[models.Project], error) {
	return decode[models.Project](c.do(ctx, http.MethodPost, PathProjects, projectBody(in)))
}

// UpdateProject accepts both the envelope reply (data is the project) and the
// legacy {"message", "project"} reply.
func (c *HTTPClient) UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (Result[models.Project], error) {
	if id <= 0 {
		return settle(Failure[models.Project](ClassifySetup(errEmptyID)))
	}
	res := c.do(ctx, http.MethodPut, projectPath(id), projectBody(in))
	if res.OK {
		res.Data = unwrapProject(res.Data)
	}
	return decode[models.Project](res)
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id int64) (Result[json.RawMessage], error) {
	if id <= 0 {
		return settle(Failure[json.RawMessage](ClassifySetup(errEmptyID)))
	}
	return settle(c.do(ctx, http.MethodDelete, projectPath(id), nil))
}

func (c *HTTPClient) GetPortfolio(ctx context.Context, userID int64) (Result[models.Portfolio], error) {
	if userID <= 0 {
		return settle(Failure[models.Portfolio](ClassifySetup(errEmptyID)))
	}
	path := PathPortfolio + "/" + strconv.FormatInt(userID, 10)
	return decode[models.Portfolio](c.do(ctx, http.MethodGet, path, nil))
}

func (c *HTTPClient) SendContactMessage(ctx context.Context, userID int64, msg models.ContactMessage) (Result[json.RawMessage], error) {
	res := c.do(ctx, http.MethodPost, PathContact, jsonBody{contactRequest{UserID: userID, ContactMessage: msg}})
	return settle(res)
}

func projectPath(id int64) string {
	return PathProjects + "/" + strconv.FormatInt(id, 10)
}

func projectBody(in models.ProjectInput) requestBody {
	if in.Image != nil {
		return multipartBody{
			fields: []formField{
				{"name", in.Name},
				{"demo_url", in.DemoURL},
				{"repo_url", in.RepoURL},
				{"description", in.Description},
			},
			fileField: "image",
			file:      in.Image,
		}
	}
	return jsonBody{projectRequest{
		Name:        in.Name,
		DemoURL:     in.DemoURL,
		RepoURL:     in.RepoURL,
		Description: in.Description,
	}}
}

func unwrapProject(data json.RawMessage) json.RawMessage {
	var wrapper struct {
		Project json.RawMessage `json:"project"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return data
	}
	if len(wrapper.Project) > 0 && wrapper.Project[0] == '{' {
		return wrapper.Project
	}
	return data
}

var _ Client = (*HTTPClient)(nil)
