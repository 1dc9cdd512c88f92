package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/DanRulev/lingobot.git/internal/models"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

type MyMemoryAPI struct {
	http    *http.Client
	baseURL string
	email   string
}

func NewMyMemoryAPI(httpClient *http.Client, baseURL, email string) *MyMemoryAPI {
	return &MyMemoryAPI{
		http:    httpClient,
		baseURL: baseURL,
		email:   email,
	}
}

func (m *MyMemoryAPI) Translate(ctx context.Context, text, src, dst string) (models.MachineTranslation, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", src+"|"+dst)
	if m.email != "" {
		q.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.MachineTranslation{}, err
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return models.MachineTranslation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.MachineTranslation{}, fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.MachineTranslation{}, fmt.Errorf("mymemory: decode: %w", err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.MachineTranslation{
			Source: src,
			Target: dst,
			Error:  data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != "" && m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.MachineTranslation{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       src,
		Target:       dst,
		Alternatives: alternatives,
	}, nil
}
