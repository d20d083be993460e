package app

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

const maxHops = 15

// FetchError reports that retrieving the source page failed. The pipeline
// never writes the output file once one is raised.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func newClient(timeoutSec int) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutSec) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxHops {
				return fmt.Errorf("stopped after %d redirects (maxHops exceeded)", maxHops)
			}
			return nil
		},
	}
}

// fetchHTML downloads the source page with the configured browser-like header
// set, decoding the body to UTF-8 from whatever charset the server declares.
// It also returns an MD5 hash of the decoded body for the history archive.
func (u *Updater) fetchHTML(ctx context.Context, urlStr string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", "", &FetchError{URL: urlStr, Err: err}
	}

	req.Header.Set("User-Agent", u.cfg.Source.UserAgent)
	req.Header.Set("Accept", u.cfg.Source.Accept)
	req.Header.Set("Accept-Language", u.cfg.Source.AcceptLanguage)
	req.Header.Set("Referer", u.cfg.Source.Referer)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", "", &FetchError{URL: urlStr, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", &FetchError{URL: urlStr, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		utf8Reader = resp.Body
	}

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", "", &FetchError{URL: urlStr, Err: err}
	}

	html := string(body)
	lower := strings.ToLower(html)
	if strings.Contains(lower, "captcha") || strings.Contains(lower, "security check") {
		return "", "", &FetchError{URL: urlStr, Err: errors.New("captcha detected")}
	}

	return html, fmt.Sprintf("%x", md5.Sum(body)), nil
}
