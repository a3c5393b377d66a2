package potter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func azkaban() Book {
	return Book{
		Number:        3,
		Title:         "Harry Potter and the Prisoner of Azkaban",
		OriginalTitle: "The Prisoner of Azkaban",
		ReleaseDate:   "Jul 8, 1999",
		Description:   "Harry's third year at Hogwarts.",
		Pages:         317,
		Cover:         "https://example.com/covers/3.png",
		Index:         2,
	}
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "potterapi-fedeperin.vercel.app", u.Host)

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234", u.String())

	u, err = parseBaseURL("books.local")
	require.NoError(t, err)
	assert.Equal(t, "https://books.local", u.String())
}

func TestParseBaseURL_MissingHostFails(t *testing.T) {
	_, err := parseBaseURL("http://")
	require.Error(t, err)
}

func TestClient_EndpointUsesLanguage(t *testing.T) {
	c, err := NewClient("http://example.com", WithLanguage(" /pt/ "))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/pt/books/random", c.Endpoint())

	c, err = NewClient("http://example.com", WithLanguage(""))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/en/books/random", c.Endpoint())
}

func TestClient_FetchRandomBook(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(azkaban())
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	book, err := c.FetchRandomBook(ctx)
	require.NoError(t, err)
	assert.Equal(t, azkaban(), book)
	assert.Equal(t, "/en/books/random", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
}

func TestClient_FetchRandomBookFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		stage   Stage
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
			stage: StageStatus,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"number": `))
			},
			stage: StageDecode,
		},
		{
			name: "missing number",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"originalTitle":"Untitled"}`))
			},
			stage: StageValidate,
		},
		{
			name: "bad cover",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"number":1,"originalTitle":"x","cover":"not a url"}`))
			},
			stage: StageValidate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			require.NoError(t, err)

			_, err = c.FetchRandomBook(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFetch)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.stage, fe.Stage)
		})
	}
}

func TestClient_FetchRandomBookNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.FetchRandomBook(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, StageRequest, fe.Stage)
}

func TestClient_NilFetchFails(t *testing.T) {
	var c *Client
	_, err := c.FetchRandomBook(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}

func TestBookLabel(t *testing.T) {
	assert.Equal(t, "Book 3 - The Prisoner of Azkaban", azkaban().Label())

	b := Book{Number: 1, Title: "Harry Potter and the Sorcerer's Stone"}
	assert.Equal(t, "Book 1 - Harry Potter and the Sorcerer's Stone", b.Label())
}
