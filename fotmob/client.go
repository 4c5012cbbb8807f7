// Package fotmob fetches player photos from a club's FotMob squad page.
// Photos are cosmetic: every failure path degrades to an empty map so a
// scraping hiccup can never take the dashboard down.
package fotmob

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const photoURLFormat = "https://images.fotmob.com/image_resources/playerimages/%s.png"

// Client looks up the photo map for a squad page: normalized player name to
// image URL.
type Client interface {
	SquadPhotos(squadURL string) (map[string]string, error)
}

type client struct {
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
	return c, nil
}

// The squad page embeds its data as JSON inside script tags. There is no
// stable public API, so match the id/name pairs directly.
var (
	idNameRe   = regexp.MustCompile(`"id"\s*:\s*(\d+)\s*,\s*"name"\s*:\s*"([^"]+)"`)
	playerIDRe = regexp.MustCompile(`(?s)"playerId"\s*:\s*(\d+).*?"name"\s*:\s*"([^"]+)"`)
)

func (c *client) SquadPhotos(squadURL string) (map[string]string, error) {
	if squadURL == "" {
		return map[string]string{}, nil
	}

	req, err := http.NewRequest(http.MethodGet, squadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing squad page: %w", err)
	}

	var scripts strings.Builder
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		scripts.WriteString(s.Text())
		scripts.WriteString("\n")
	})

	pairs := idNameRe.FindAllStringSubmatch(scripts.String(), -1)
	if len(pairs) == 0 {
		pairs = playerIDRe.FindAllStringSubmatch(scripts.String(), -1)
	}

	photos := make(map[string]string, len(pairs))
	for _, m := range pairs {
		name := Normalize(m[2])
		if name == "" {
			continue
		}
		photos[name] = fmt.Sprintf(photoURLFormat, m[1])
	}
	return photos, nil
}
