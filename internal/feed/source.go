package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"petgallery/internal/domain/models"
)

// HTTPDataSource fetches feed pages from the gallery API.
type HTTPDataSource struct {
	client  *http.Client
	baseURL string
}

func NewHTTPDataSource(client *http.Client, baseURL string) *HTTPDataSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDataSource{
		client:  client,
		baseURL: baseURL,
	}
}

func (s *HTTPDataSource) FetchPage(ctx context.Context, offset, limit int) (models.FeedPage, error) {
	const op = "feed.HTTPDataSource.FetchPage"

	url := s.baseURL + "/api/v1/gallery?offset=" + strconv.Itoa(offset) + "&limit=" + strconv.Itoa(limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr == nil && apiErr.Error != "" {
			return models.FeedPage{}, fmt.Errorf("%s: %s", op, apiErr.Error)
		}
		return models.FeedPage{}, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var page models.FeedPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return models.FeedPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}
