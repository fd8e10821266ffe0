package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/netx"
)

// Client is the call surface the services use to reach the backend.
type Client interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.TokenPair, error)
	Register(ctx context.Context, data models.RegisterRequest) (*models.TokenPair, error)
	Logout(ctx context.Context) error

	Do(ctx context.Context, req *Request) (*Response, error)
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	PostMultipart(ctx context.Context, path string, form *netx.MultipartForm, out any) error
}
