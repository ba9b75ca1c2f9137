package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies fetches from this tool.
const defaultUserAgent = "Mozilla/5.0 (compatible; GapAdvisor/1.0)"

// FetchError represents a failure while fetching a job posting URL.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// jobContentSelectors locate the posting body on common job board pages,
// tried in order before falling back to the whole document body.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// FromURL fetches a job posting page, extracts its main text, and cleans it.
func FromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", nil, err
	}

	text, err := ExtractMainText(html)
	if err != nil {
		return "", nil, &FetchError{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, urlStr), nil
}

func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// ExtractMainText parses HTML and returns the posting body text. Noise
// elements (navigation, scripts, ads) are removed first; if no content
// selector matches, the whole body is used.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	var lines []string
	for _, line := range strings.Split(main.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
