// Package preview fetches a URL and extracts readable content locally,
// without going through the Firecrawl API. It backs the `firegate preview`
// command for quick inspection of a page before spending API quota on it.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	userAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_7_2) AppleWebKit/537.36"
	maxRedirects = 5
)

// Result is the extracted content of one page.
type Result struct {
	URL       string `json:"url"`
	FinalURL  string `json:"finalUrl"`
	Status    int    `json:"status"`
	Title     string `json:"title,omitempty"`
	Extractor string `json:"extractor"`
	Truncated bool   `json:"truncated"`
	Text      string `json:"text"`
}

// Extractor fetches pages and reduces them to readable text or markdown.
type Extractor struct {
	maxChars int
	client   *http.Client
}

// NewExtractor creates an Extractor. maxChars defaults to 50000.
func NewExtractor(maxChars int) *Extractor {
	if maxChars <= 0 {
		maxChars = 50000
	}
	return &Extractor{
		maxChars: maxChars,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Extract fetches rawURL and returns its readable content.
// mode is "markdown" (default) or "text".
func (e *Extractor) Extract(ctx context.Context, rawURL, mode string) (*Result, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("only http/https allowed, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("missing domain in URL")
	}
	if mode == "" {
		mode = "markdown"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	result := &Result{
		URL:      rawURL,
		FinalURL: resp.Request.URL.String(),
		Status:   resp.StatusCode,
	}

	ctype := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(ctype, "application/json"):
		result.Extractor = "json"
		result.Text = prettyJSON(body)
	case strings.Contains(ctype, "text/html") || looksLikeHTML(body):
		result.Extractor = "readability"
		article, rerr := readability.FromReader(strings.NewReader(string(body)), parsed)
		if rerr != nil {
			result.Text = stripTags(string(body))
			break
		}
		result.Title = article.Title
		if mode == "text" {
			result.Text = stripTags(article.Content)
		} else {
			result.Text = toMarkdown(article.Content)
		}
	default:
		result.Extractor = "raw"
		result.Text = string(body)
	}

	if len(result.Text) > e.maxChars {
		result.Text = result.Text[:e.maxChars]
		result.Truncated = true
	}
	return result, nil
}

func prettyJSON(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(out)
}

// looksLikeHTML returns true if the body starts with an HTML declaration.
func looksLikeHTML(body []byte) bool {
	head := body
	if len(head) > 256 {
		head = head[:256]
	}
	prefix := strings.ToLower(strings.TrimSpace(string(head)))
	return strings.HasPrefix(prefix, "<!doctype") || strings.HasPrefix(prefix, "<html")
}

var (
	reScript   = regexp.MustCompile(`(?is)<script[\s\S]*?</script>`)
	reStyle    = regexp.MustCompile(`(?is)<style[\s\S]*?</style>`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
	reSpaces   = regexp.MustCompile(`[ \t]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
	reAnchor   = regexp.MustCompile(`(?is)<a\s+[^>]*href=["']([^"']+)["'][^>]*>([\s\S]*?)</a>`)
	reHeading  = regexp.MustCompile(`(?is)<h([1-6])[^>]*>([\s\S]*?)</h[1-6]>`)
	reListItem = regexp.MustCompile(`(?is)<li[^>]*>([\s\S]*?)</li>`)
	reBlockEnd = regexp.MustCompile(`(?is)</(p|div|section|article)>`)
	reBreak    = regexp.MustCompile(`(?is)<(br|hr)\s*/?>`)
)

// stripTags removes all HTML tags and normalizes whitespace.
func stripTags(s string) string {
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = reTag.ReplaceAllString(s, "")
	return tidy(s)
}

// toMarkdown converts HTML to a simple markdown rendering: links, headings,
// and list items survive; everything else is flattened to text.
func toMarkdown(html string) string {
	s := reAnchor.ReplaceAllStringFunc(html, func(m string) string {
		parts := reAnchor.FindStringSubmatch(m)
		if len(parts) < 3 {
			return m
		}
		return fmt.Sprintf("[%s](%s)", stripTags(parts[2]), parts[1])
	})
	s = reHeading.ReplaceAllStringFunc(s, func(m string) string {
		parts := reHeading.FindStringSubmatch(m)
		if len(parts) < 3 {
			return m
		}
		level := int(parts[1][0] - '0')
		return "\n" + strings.Repeat("#", level) + " " + stripTags(parts[2]) + "\n"
	})
	s = reListItem.ReplaceAllStringFunc(s, func(m string) string {
		parts := reListItem.FindStringSubmatch(m)
		if len(parts) < 2 {
			return m
		}
		return "\n- " + stripTags(parts[1])
	})
	s = reBlockEnd.ReplaceAllString(s, "\n\n")
	s = reBreak.ReplaceAllString(s, "\n")
	return stripTags(s)
}

func tidy(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
