package ffcalendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/Messiiiejejj/ForexDiscordBot/pkg/errlvl"
)

// fetchClient issues calendar page requests with a browser-like profile.
// The cookie jar is shared across calls so that anti-bot challenge cookies
// set by the site are presented on subsequent requests instead of
// re-solving the challenge every time.
type fetchClient struct {
	http *http.Client
}

func newFetchClient() *fetchClient {
	jar, _ := cookiejar.New(nil)
	return &fetchClient{
		http: &http.Client{
			Jar:     jar,
			Timeout: 20 * time.Second,
		},
	}
}

// fetch performs a single GET for the given url. One attempt, no retry:
// a failure surfaces synchronously to the caller.
func (c *fetchClient) fetch(ctx context.Context, url, referer string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errlvl.Wrap(err, errlvl.Error)
	}
	req = req.WithContext(ctx)
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9")
	req.Header.Set("referer", referer+"/calendar")
	req.Header.Set("upgrade-insecure-requests", "1")
	req.Header.Set("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errlvl.Wrap(err, errlvl.Error)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errlvl.Wrap(fmt.Errorf("invalid status code: %d, value %s", res.StatusCode, res.Status), errlvl.Warn)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errlvl.Wrap(fmt.Errorf("error reading response body: %w", err), errlvl.Error)
	}

	return body, nil
}
