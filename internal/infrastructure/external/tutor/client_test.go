package tutor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMath(t *testing.T) {
	assert.Equal(t, "E = mc²", SanitizeMath("$E = mc²$"))
	assert.Equal(t, "F = ma", SanitizeMath("$$F = ma$$"))
	assert.Equal(t, "a + b", SanitizeMath(`\(a + b\)`))
	assert.Equal(t, "x = y", SanitizeMath(`\[x = y\]`))
	assert.Equal(t, "plain text stays", SanitizeMath("plain text stays"))

	mixed := "Heading\n$$v = u + at$$\nand inline $s = ut$ too"
	assert.Equal(t, "Heading\nv = u + at\nand inline s = ut too", SanitizeMath(mixed))
}

func TestSanitizeMath_MultilineBlocks(t *testing.T) {
	in := "$$\nΔx = v₀t + ½at²\n$$"
	assert.Equal(t, "\nΔx = v₀t + ½at²\n", SanitizeMath(in))
}

func newTestClient(url string) *Client {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = url
	cfg.Retry.MaxAttempts = 1
	return NewClient(cfg)
}

func TestExplain(t *testing.T) {
	var gotPath string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidateDTO{{Content: contentDTO{Parts: []partDTO{
				{Text: "### Vectors\nThe formula is $F = ma$."},
			}}}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Explain(context.Background(), "Physics 1st", "Ch2: Vectors", "T-07: Dot Product")
	require.NoError(t, err)

	// The response is sanitized and the prompt carries the topic triple.
	assert.Equal(t, "### Vectors\nThe formula is F = ma.", got)
	assert.Contains(t, gotPath, "generateContent")
	require.Len(t, gotReq.Contents, 1)
	prompt := gotReq.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Subject: Physics 1st")
	assert.Contains(t, prompt, "Chapter: Ch2: Vectors")
	assert.Contains(t, prompt, "Topic: T-07: Dot Product")
}

func TestExplain_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Explain(context.Background(), "s", "c", "t")
	assert.Error(t, err)
}

func TestExplain_EmptyCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Explain(context.Background(), "s", "c", "t")
	assert.Error(t, err)
}

func TestExplain_NoAPIKey(t *testing.T) {
	c := NewClient(DefaultConfig(""))
	assert.False(t, c.Enabled())

	_, err := c.Explain(context.Background(), "s", "c", "t")
	assert.Error(t, err)
}
