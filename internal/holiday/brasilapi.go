package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultBrasilAPIURL = "https://brasilapi.com.br/api/feriados/v1"

// BrasilAPI fetches national holidays from GET {baseURL}/{year}.
type BrasilAPI struct {
	baseURL string
	client  *http.Client
}

func NewBrasilAPI(baseURL string, timeout time.Duration) *BrasilAPI {
	if baseURL == "" {
		baseURL = DefaultBrasilAPIURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BrasilAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (b *BrasilAPI) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/%d", b.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays %d: %w", year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch holidays %d: unexpected status %d", year, resp.StatusCode)
	}

	var list []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode holidays %d: %w", year, err)
	}
	return list, nil
}
