package wallhaven

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(ts *httptest.Server, opts ...Option) *Client {
	opts = append([]Option{
		WithBaseURL(ts.URL + "/api/v1"),
		WithLimiter(rate.NewLimiter(rate.Inf, 1)),
		WithPageFunc(func() int { return 3 }),
	}, opts...)
	return NewClient(ts.Client(), opts...)
}

func baseQuery() Query {
	return Query{
		APIKey:      "abcdefghijklmnopqrstuvwxyz012345",
		Q:           "mountains",
		Categories:  "100",
		Purity:      "100",
		Resolutions: "1920x1080",
		Ratios:      "16x9",
		Sorting:     "random",
		Order:       "desc",
		TopRange:    "1M",
	}
}

func TestClient_SearchSendsFilters(t *testing.T) {
	var got url.Values
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		got = r.URL.Query()
		gotKey = r.Header.Get(APIKeyHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"abc123","path":"https://w.wallhaven.cc/full/ab/wallhaven-abc123.png"}],"meta":{"current_page":3,"last_page":9}}`))
	}))
	defer ts.Close()

	results, err := newTestClient(ts).Search(context.Background(), baseQuery())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc123", results[0].ID)

	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz012345", gotKey)
	assert.Equal(t, "mountains", got.Get("q"))
	assert.Equal(t, "100", got.Get("categories"))
	assert.Equal(t, "100", got.Get("purity"))
	assert.Equal(t, "1920x1080", got.Get("resolutions"))
	assert.Equal(t, "1920x1080", got.Get("atleast"))
	assert.Equal(t, "16x9", got.Get("ratios"))
	assert.Equal(t, "random", got.Get("sorting"))
	assert.Equal(t, "desc", got.Get("order"))
	assert.Equal(t, "3", got.Get("page"))
	assert.Equal(t, "24", got.Get("per_page"))
	assert.False(t, got.Has("topRange"), "topRange must only be sent for toplist sorting")
}

func TestClient_TopRangeOnlyForToplist(t *testing.T) {
	for _, sorting := range []string{"random", "date_added", "toplist"} {
		t.Run(sorting, func(t *testing.T) {
			q := baseQuery()
			q.Sorting = sorting
			v := q.Values(1)
			if sorting == "toplist" {
				assert.Equal(t, "1M", v.Get("topRange"))
			} else {
				assert.False(t, v.Has("topRange"))
			}
		})
	}
}

func TestClient_NoAPIKeyHeaderWhenEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(APIKeyHeader)]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	q := baseQuery()
	q.APIKey = ""
	_, err := newTestClient(ts).Search(context.Background(), q)
	assert.NoError(t, err)
}

func TestClient_EmptyAndMissingData(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":   `{"data":[],"meta":{"last_page":1}}`,
		"missing data": `{"meta":{"last_page":1}}`,
	} {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer ts.Close()

			results, err := newTestClient(ts).Search(context.Background(), baseQuery())
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Search(context.Background(), baseQuery())
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(ts)
	ts.Close()

	_, err := c.Search(context.Background(), baseQuery())
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Zero(t, reqErr.StatusCode)
	assert.NotNil(t, reqErr.Unwrap())
}

func TestClient_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid_json`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Search(context.Background(), baseQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRandomPageBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		p := RandomPage()
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, MaxRandomPage)
	}
}

func TestUserAgentTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
	}))
	defer ts.Close()

	c := NewHTTPClient()
	resp, err := c.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestWallpaper_Extension(t *testing.T) {
	tests := []struct {
		name string
		w    Wallpaper
		want string
	}{
		{"png path", Wallpaper{Path: "https://w.wallhaven.cc/full/ab/wallhaven-abc123.png"}, "png"},
		{"jpg path with query", Wallpaper{Path: "https://w.wallhaven.cc/full/ab/wallhaven-x.jpg?v=2"}, "jpg"},
		{"no ext png mime", Wallpaper{Path: "https://example.com/img", FileType: "image/png"}, "png"},
		{"no ext unknown mime", Wallpaper{Path: "https://example.com/img"}, "jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Extension())
		})
	}
}
