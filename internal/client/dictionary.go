package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/DanRulev/lingobot.git/internal/models"
)

const dictionaryURL = "https://ftapi.pythonanywhere.com/translate"

type DictionaryAPI struct {
	http    *http.Client
	baseURL string
}

func NewDictionaryAPI(httpClient *http.Client, baseURL string) *DictionaryAPI {
	return &DictionaryAPI{
		http:    httpClient,
		baseURL: baseURL,
	}
}

func (d *DictionaryAPI) DictionaryData(ctx context.Context, text, src, dst string) (models.DictionaryResponse, error) {
	q := url.Values{}
	q.Set("sl", src)
	q.Set("dl", dst)
	q.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.DictionaryResponse{}, err
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return models.DictionaryResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.DictionaryResponse{}, fmt.Errorf("dictionary: unexpected status %d for %q", resp.StatusCode, text)
	}

	var result models.DictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.DictionaryResponse{}, fmt.Errorf("dictionary: failed to decode %q: %w", text, err)
	}

	return result, nil
}
