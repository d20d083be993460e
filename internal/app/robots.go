package app

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/temoto/robotstxt"
)

// checkRobots applies the host's robots.txt to the source path. Load and
// parse problems are logged and ignored so an unreachable robots.txt never
// blocks a run; only an explicit disallow does.
func (u *Updater) checkRobots(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	resp, err := u.client.Get(robotsURL)
	if err != nil {
		log.Printf("robots.txt unavailable (ignoring): %v", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		log.Printf("robots.txt unreadable (ignoring): %v", err)
		return nil
	}

	group := data.FindGroup(u.cfg.Source.UserAgent)
	if group != nil && !group.Test(parsed.Path) {
		return &FetchError{URL: urlStr, Err: errors.New("blocked by robots.txt")}
	}
	return nil
}
