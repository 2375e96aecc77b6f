package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newServer(t *testing.T, h http.HandlerFunc, opts ...Option) (*httptest.Server, *Client) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	opts = append([]Option{WithHTTPClient(ts.Client()), WithTimeout(2 * time.Second)}, opts...)
	return ts, New(opts...)
}

func TestGetOK(t *testing.T) {
	defer goleak.VerifyNone(t)

	var gotUA atomic.Value
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		fmt.Fprint(w, "<title>hello</title>")
	})

	body, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "<title>hello</title>", body)
	assert.Contains(t, gotUA.Load(), "profilecard")
	ts.Close()
}

func TestGetFollowsFound(t *testing.T) {
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/start":
			w.Header().Set("Location", "/middle")
			w.WriteHeader(http.StatusFound)
		case "/middle":
			w.Header().Set("Location", "/final")
			w.WriteHeader(http.StatusFound)
		case "/final":
			fmt.Fprint(w, "landed")
		default:
			http.NotFound(w, r)
		}
	})

	body, err := c.Get(context.Background(), ts.URL+"/start")
	require.NoError(t, err)
	assert.Equal(t, "landed", body)
}

func TestGetCapsRedirects(t *testing.T) {
	var hits atomic.Int32
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Location", "/loop")
		w.WriteHeader(http.StatusFound)
	})

	_, err := c.Get(context.Background(), ts.URL+"/loop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyRedirects))
	assert.Equal(t, int32(c.MaxRedirects+1), hits.Load())

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, ts.URL+"/loop", opErr.URL)
}

func TestGetHonoursMaxRedirects(t *testing.T) {
	for _, limit := range []int{0, 2} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			var hits atomic.Int32
			ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.Header().Set("Location", "/loop")
				w.WriteHeader(http.StatusFound)
			}, WithMaxRedirects(limit))

			_, err := c.Get(context.Background(), ts.URL+"/loop")
			assert.True(t, errors.Is(err, ErrTooManyRedirects))
			assert.Equal(t, int32(limit+1), hits.Load())
		})
	}
}

func TestGetRedirectWithoutLocation(t *testing.T) {
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	_, err := c.Get(context.Background(), ts.URL)
	assert.True(t, errors.Is(err, ErrBadRedirect))
}

func TestGetOtherStatusesFail(t *testing.T) {
	for _, code := range []int{http.StatusMovedPermanently, http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/elsewhere")
				w.WriteHeader(code)
			})

			_, err := c.Get(context.Background(), ts.URL)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr), "got %v", err)
			assert.Equal(t, code, statusErr.Code)
		})
	}
}

func TestGetLimitsBody(t *testing.T) {
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("x", 64))
	})
	c.MaxBodyBytes = 16

	body, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Len(t, body, 16)
}

func TestGetTimesOut(t *testing.T) {
	release := make(chan struct{})
	ts, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	c.Timeout = 50 * time.Millisecond

	_, err := c.Get(context.Background(), ts.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestGetBadURL(t *testing.T) {
	c := New()
	_, err := c.Get(context.Background(), "://nope")
	require.Error(t, err)
	var opErr *OpError
	assert.True(t, errors.As(err, &opErr))
}
