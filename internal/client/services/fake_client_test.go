package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/models"
)

// fakeClient implements client.Client; unset hooks answer with an empty
// success.
type fakeClient struct {
	LoginFn          func(email, password string) client.Result[models.AuthPayload]
	RegisterFn       func(email, password, name string) client.Result[models.AuthPayload]
	ForgotFn         func(email string) client.Result[json.RawMessage]
	ResetFn          func(token, password string) client.Result[json.RawMessage]
	GetProfileFn     func() client.Result[models.Profile]
	UpdateProfileFn  func(in models.ProfileInput) client.Result[models.Profile]
	GetProjectsFn    func() client.Result[[]models.Project]
	AddProjectFn     func(in models.ProjectInput) client.Result[models.Project]
	UpdateProjectFn  func(id int64, in models.ProjectInput) client.Result[models.Project]
	DeleteProjectFn  func(id int64) client.Result[json.RawMessage]
	GetPortfolioFn   func(userID int64) client.Result[models.Portfolio]
	SendContactFn    func(userID int64, msg models.ContactMessage) client.Result[json.RawMessage]
	Calls            int
	LastRegisterName string
}

func ok[T any](v T) client.Result[T] { return client.Success(v, "") }

func failed[T any](code int, msg string) client.Result[T] {
	kind := client.KindValidation
	switch code {
	case 0:
		kind = client.KindNetwork
	case 401:
		kind = client.KindAuth
	case 413:
		kind = client.KindPayloadTooLarge
	}
	return client.Failure[T](&client.APIError{Kind: kind, Message: msg, Code: code})
}

func answer[T any](f *fakeClient, fn func() client.Result[T]) (client.Result[T], error) {
	f.Calls++
	var res client.Result[T]
	if fn == nil {
		var zero T
		res = ok(zero)
	} else {
		res = fn()
	}
	return res, res.Err()
}

func (f *fakeClient) Login(_ context.Context, email, password string) (client.Result[models.AuthPayload], error) {
	return answer(f, bind2(f.LoginFn, email, password))
}

func (f *fakeClient) Register(_ context.Context, email, password, name string) (client.Result[models.AuthPayload], error) {
	f.LastRegisterName = name
	var fn func() client.Result[models.AuthPayload]
	if f.RegisterFn != nil {
		fn = func() client.Result[models.AuthPayload] { return f.RegisterFn(email, password, name) }
	}
	return answer(f, fn)
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) (client.Result[json.RawMessage], error) {
	return answer(f, bind1(f.ForgotFn, email))
}

func (f *fakeClient) ResetPassword(_ context.Context, token, password string) (client.Result[json.RawMessage], error) {
	return answer(f, bind2(f.ResetFn, token, password))
}

func (f *fakeClient) GetProfile(context.Context) (client.Result[models.Profile], error) {
	return answer(f, f.GetProfileFn)
}

func (f *fakeClient) UpdateProfile(_ context.Context, in models.ProfileInput) (client.Result[models.Profile], error) {
	return answer(f, bind1(f.UpdateProfileFn, in))
}

func (f *fakeClient) GetProjects(context.Context) (client.Result[[]models.Project], error) {
	return answer(f, f.GetProjectsFn)
}

func (f *fakeClient) AddProject(_ context.Context, in models.ProjectInput) (client.Result[models.Project], error) {
	return answer(f, bind1(f.AddProjectFn, in))
}

func (f *fakeClient) UpdateProject(_ context.Context, id int64, in models.ProjectInput) (client.Result[models.Project], error) {
	return answer(f, bind2(f.UpdateProjectFn, id, in))
}

func (f *fakeClient) DeleteProject(_ context.Context, id int64) (client.Result[json.RawMessage], error) {
	return answer(f, bind1(f.DeleteProjectFn, id))
}

func (f *fakeClient) GetPortfolio(_ context.Context, userID int64) (client.Result[models.Portfolio], error) {
	return answer(f, bind1(f.GetPortfolioFn, userID))
}

func (f *fakeClient) SendContactMessage(_ context.Context, userID int64, msg models.ContactMessage) (client.Result[json.RawMessage], error) {
	return answer(f, bind2(f.SendContactFn, userID, msg))
}

func (f *fakeClient) UploadURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "http://api.test/uploads/" + filename
}

func bind1[A, T any](fn func(A) T, a A) func() T {
	if fn == nil {
		return nil
	}
	return func() T { return fn(a) }
}

func bind2[A, B, T any](fn func(A, B) T, a A, b B) func() T {
	if fn == nil {
		return nil
	}
	return func() T { return fn(a, b) }
}

var _ client.Client = (*fakeClient)(nil)
