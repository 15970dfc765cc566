package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimani/safarihub/internal/models"
)

// recorded captures what the backend saw for one request.
type recorded struct {
	method  string
	path    string
	query   string
	headers http.Header
	body    []byte
}

// newBackend starts a chi-routed test backend that records every
// request and responds per the handler map. Routes not in the map get
// a JSON 404.
func newBackend(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *[]recorded) {
	t.Helper()

	var seen []recorded
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			body := make([]byte, 0)
			if req.Body != nil {
				buf := make([]byte, 1<<16)
				n, _ := req.Body.Read(buf)
				body = buf[:n]
			}
			seen = append(seen, recorded{
				method:  req.Method,
				path:    req.URL.Path,
				query:   req.URL.RawQuery,
				headers: req.Header.Clone(),
				body:    body,
			})
			next.ServeHTTP(w, req)
		})
	})
	for pattern, h := range routes {
		r.HandleFunc(pattern, h)
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &seen
}

func jsonOK(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestDo_BearerHeaderPresentWithToken(t *testing.T) {
	srv, seen := newBackend(t, map[string]http.HandlerFunc{
		"/admin/dashboard": jsonOK(`{"total_users":3}`),
	})
	c := New(srv.URL)

	_, err := c.AdminDashboard(context.Background(), "tok-123")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	got := (*seen)[0]
	require.Equal(t, []string{"Bearer tok-123"}, got.headers.Values("Authorization"))
	assert.NotEmpty(t, got.headers.Get("X-Request-Id"))
	// GET with no body carries no Content-Type.
	assert.Empty(t, got.headers.Get("Content-Type"))
}

func TestDo_NoBearerHeaderWithoutToken(t *testing.T) {
	srv, seen := newBackend(t, map[string]http.HandlerFunc{
		"/destinations/7/reviews": jsonOK(`[]`),
	})
	c := New(srv.URL)

	_, err := c.ListDestinationReviews(context.Background(), "", 7)
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	_, present := (*seen)[0].headers["Authorization"]
	assert.False(t, present, "no Authorization header may be sent without a token")
}

func TestDo_ContentTypeSetWithBody(t *testing.T) {
	srv, seen := newBackend(t, map[string]http.HandlerFunc{
		"/auth/login": jsonOK(`{"access_token":"t","user":{"id":1}}`),
	})
	c := New(srv.URL)

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	got := (*seen)[0]
	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(got.body))
}

func TestDo_AuthRequiredIsLocal(t *testing.T) {
	srv, seen := newBackend(t, nil)
	c := New(srv.URL)

	_, err := c.AdminDashboard(context.Background(), "")
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, *seen, "no request may be sent when the token is missing")
}

func TestDo_ErrorMessageFromBody(t *testing.T) {
	srv, _ := newBackend(t, map[string]http.HandlerFunc{
		"/guide/profile": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"guides only"}`))
		},
	})
	c := New(srv.URL)

	_, err := c.GuideProfile(context.Background(), "tok")
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Status)
	assert.Equal(t, "guides only", he.Message)
}

func TestDo_ErrorMessageFallbackOnEmptyBody(t *testing.T) {
	srv, _ := newBackend(t, map[string]http.HandlerFunc{
		"/guide/profile": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	c := New(srv.URL)

	_, err := c.GuideProfile(context.Background(), "tok")
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "failed to fetch guide profile", he.Message)
}

func TestDo_NotFoundClassification(t *testing.T) {
	srv, _ := newBackend(t, nil)
	c := New(srv.URL)

	_, err := c.TravelerProfile(context.Background(), "tok")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestDo_NetworkError(t *testing.T) {
	srv, _ := newBackend(t, nil)
	srv.Close()
	c := New(srv.URL)

	_, err := c.AdminDashboard(context.Background(), "tok")
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)

	var he *HTTPError
	assert.False(t, errors.As(err, &he), "a network failure must not be status-coded")
}

func TestDo_QueryParamsEncoded(t *testing.T) {
	srv, seen := newBackend(t, map[string]http.HandlerFunc{
		"/admin/bookings": jsonOK(`[]`),
	})
	c := New(srv.URL)

	_, err := c.ListAllBookings(context.Background(), "tok", &ListOptions{Page: 2, Status: "pending"})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, "page=2&status=pending", (*seen)[0].query)
}

func TestDo_NilOptionsMeanNoQuery(t *testing.T) {
	srv, seen := newBackend(t, map[string]http.HandlerFunc{
		"/admin/bookings": jsonOK(`[]`),
	})
	c := New(srv.URL)

	_, err := c.ListAllBookings(context.Background(), "tok", nil)
	require.NoError(t, err)
	require.Len(t, *seen, 1)
	assert.Empty(t, (*seen)[0].query)
}
