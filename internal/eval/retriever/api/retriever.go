package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
)

const DefaultSearchPath = "/search"

// Retriever queries a deployed search API: GET {baseURL}{path}?q=...&size=...
type Retriever struct {
	name    string
	baseURL string
	path    string
	client  *http.Client
}

var _ retriever.Retriever = (*Retriever)(nil)

func New(name, baseURL, path string) *Retriever {
	if path == "" {
		path = DefaultSearchPath
	}
	return &Retriever{
		name:    name,
		baseURL: baseURL,
		path:    path,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type searchResponse struct {
	Hits []searchHit `json:"hits"`
}

type searchHit struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]retriever.Hit, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("size", strconv.Itoa(topK))
	reqURL := r.baseURL + r.path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("api parse response: %w", err)
	}

	hits := make([]retriever.Hit, 0, min(len(sr.Hits), topK))
	for _, h := range sr.Hits {
		if len(hits) == topK {
			break
		}
		hits = append(hits, retriever.Hit{DocumentID: h.ID, Score: h.Score})
	}
	return hits, nil
}

func (r *Retriever) Name() string { return r.name }
func (r *Retriever) Close() error { return nil }
