package client

import (
	"blogfeed/storage/in_memory"
	"blogfeed/storage/models"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func servePosts(w http.ResponseWriter, r *http.Request) {
	posts, _ := in_memory.CreateInMemoryStorage().GetPosts(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PostsResponse{BlogPost: posts})
}

func TestGetPosts(t *testing.T) {
	var gotOrigin string
	srv := contentServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.Header.Get("Origin")
		servePosts(w, r)
	})

	posts, err := New(srv.URL, "http://localhost:5174", srv.Client()).GetPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "A volta do Neymar ao Santos e como isso influência o Grêmio", posts[0].Title)
	require.Equal(t, "http://localhost:5174", gotOrigin)
}

func TestGetPostsWithoutOrigin(t *testing.T) {
	srv := contentServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Origin"))
		servePosts(w, r)
	})

	_, err := New(srv.URL, "", nil).GetPosts(context.Background())
	require.NoError(t, err)
}

func TestGetPostsUnexpectedStatus(t *testing.T) {
	srv := contentServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})

	_, err := New(srv.URL, "", srv.Client()).GetPosts(context.Background())

	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnexpectedStatus))
	require.Contains(t, err.Error(), "503")
}

func TestGetPostsMalformedBody(t *testing.T) {
	srv := contentServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := New(srv.URL, "", srv.Client()).GetPosts(context.Background())

	require.True(t, errors.Is(err, ErrDecode))
}

func TestGetPostsMissingCollection(t *testing.T) {
	srv := contentServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts":[]}`))
	})

	_, err := New(srv.URL, "", srv.Client()).GetPosts(context.Background())

	require.True(t, errors.Is(err, ErrDecode))
}

func TestGetPostsConnectionRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	_, err = New("http://"+addr, "", nil).GetPosts(context.Background())

	require.True(t, errors.Is(err, ErrTransport))
}

func TestGetPostsCanceled(t *testing.T) {
	srv := contentServer(t, servePosts)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, "", srv.Client()).GetPosts(ctx)

	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestFetchResult(t *testing.T) {
	srv := contentServer(t, servePosts)

	res := New(srv.URL, "", srv.Client()).Fetch(context.Background())
	require.True(t, res.OK())
	require.Len(t, res.Posts, 3)

	srv.Close()
	res = New(srv.URL, "", nil).Fetch(context.Background())
	require.False(t, res.OK())
	require.Nil(t, res.Posts)
	require.True(t, errors.Is(res.Err, ErrTransport))
}
