package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/logger"
)

// catImageService calls the public cat image API backing the bot's /cat
// command.
type catImageService struct {
	client *http.Client
	url    string
}

// NewCatImageService creates a new CatImageServicer.
func NewCatImageService(url string, timeout time.Duration) CatImageServicer {
	return &catImageService{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// RandomImageURL fetches one random cat image URL. Any upstream problem is
// logged and reported as ErrUpstream; the caller shows a friendly retry
// message instead of the raw failure.
func (s *catImageService) RandomImageURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Get().Errorw("cat API request failed", "error", err.Error())
		return "", apperrors.Wrap(apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Get().Errorw("cat API returned non-OK status", "status", resp.StatusCode)
		return "", apperrors.Wrap(apperrors.ErrUpstream, fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload []struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.Wrap(apperrors.ErrUpstream, err)
	}
	if len(payload) == 0 || payload[0].URL == "" {
		return "", apperrors.Wrap(apperrors.ErrUpstream, fmt.Errorf("empty response"))
	}
	return payload[0].URL, nil
}
