package client

import (
	"context"
	"time"
)

// Service sends domain objects through a Client and reports the API's
// success indicator.
type Service struct {
	client *Client
}

// NewService returns a Service backed by c.
func NewService(c *Client) *Service {
	return &Service{client: c}
}

// Client returns the underlying client.
func (s *Service) Client() *Client {
	return s.client
}

// Identify sends u's traits. If at is omitted the current instant is used.
func (s *Service) Identify(ctx context.Context, u Identifiable, at ...time.Time) (bool, error) {
	resp, err := s.client.Identify(ctx, u.ThreadsUserID(), instant(at), u.ThreadsTraits())
	return succeeded(resp, err)
}

// Track sends e for u. If at is omitted the current instant is used.
func (s *Service) Track(ctx context.Context, u Identifiable, e Trackable, at ...time.Time) (bool, error) {
	resp, err := s.client.Track(ctx, u.ThreadsUserID(), e.ThreadsEventName(), instant(at), e.ThreadsProperties())
	return succeeded(resp, err)
}

// Page records that u viewed p. If at is omitted the current instant is used.
func (s *Service) Page(ctx context.Context, u Identifiable, p Viewable, at ...time.Time) (bool, error) {
	resp, err := s.client.Page(ctx, u.ThreadsUserID(), p.ThreadsTitle(), p.ThreadsProperties(), instant(at))
	return succeeded(resp, err)
}

// Remove deletes u. If at is omitted the current instant is used.
func (s *Service) Remove(ctx context.Context, u Identifiable, at ...time.Time) (bool, error) {
	resp, err := s.client.Remove(ctx, u.ThreadsUserID(), instant(at))
	return succeeded(resp, err)
}

// instant returns the first of at, or the zero time which the client
// replaces with now.
func instant(at []time.Time) time.Time {
	if len(at) == 0 {
		return time.Time{}
	}
	return at[0]
}

func succeeded(resp *Response, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return resp.Success(), nil
}
