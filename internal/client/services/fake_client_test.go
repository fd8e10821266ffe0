package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/netx"
)

type call struct {
	Method string
	Path   string
	Params url.Values
	Body   any
	Form   *netx.MultipartForm
	Public bool
}

// fakeClient implements client.Client. Every call is recorded; resp is
// JSON-encoded into the caller's out value.
type fakeClient struct {
	calls []call

	resp any
	err  error

	loginPair *models.TokenPair
	loggedOut bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) reply(out any) error {
	if f.err != nil {
		return f.err
	}
	if out == nil || f.resp == nil {
		return nil
	}
	b, err := json.Marshal(f.resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (f *fakeClient) Login(ctx context.Context, creds models.LoginRequest) (*models.TokenPair, error) {
	f.calls = append(f.calls, call{Method: "LOGIN", Body: creds, Public: true})
	if f.err != nil {
		return nil, f.err
	}
	return f.loginPair, nil
}

func (f *fakeClient) Register(ctx context.Context, data models.RegisterRequest) (*models.TokenPair, error) {
	f.calls = append(f.calls, call{Method: "REGISTER", Body: data, Public: true})
	if f.err != nil {
		return nil, f.err
	}
	if f.loginPair == nil {
		return &models.TokenPair{}, nil
	}
	return f.loginPair, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.loggedOut = true
	return f.err
}

func (f *fakeClient) Do(ctx context.Context, req *client.Request) (*client.Response, error) {
	var body any
	if len(req.Body) > 0 {
		_ = json.Unmarshal(req.Body, &body)
	}
	f.calls = append(f.calls, call{Method: req.Method, Path: req.Path, Params: req.Query, Body: body, Public: req.Public})
	if f.err != nil {
		return nil, f.err
	}
	return &client.Response{StatusCode: 200}, nil
}

func (f *fakeClient) Get(ctx context.Context, path string, params url.Values, out any) error {
	f.calls = append(f.calls, call{Method: "GET", Path: path, Params: params})
	return f.reply(out)
}

func (f *fakeClient) Post(ctx context.Context, path string, body any, out any) error {
	f.calls = append(f.calls, call{Method: "POST", Path: path, Body: body})
	return f.reply(out)
}

func (f *fakeClient) Put(ctx context.Context, path string, body any, out any) error {
	f.calls = append(f.calls, call{Method: "PUT", Path: path, Body: body})
	return f.reply(out)
}

func (f *fakeClient) PostMultipart(ctx context.Context, path string, form *netx.MultipartForm, out any) error {
	f.calls = append(f.calls, call{Method: "POST", Path: path, Form: form})
	return f.reply(out)
}

func (f *fakeClient) last() call {
	return f.calls[len(f.calls)-1]
}
