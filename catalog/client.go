package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const defaultBaseUrl = "https://courses.illinois.edu/cisapp/explorer/catalog"

// Client talks to the catalog explorer API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseUrl    string
	maxRetries uint64
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseUrl overrides the catalog API root, mainly for tests.
func WithBaseUrl(baseUrl string) Option {
	return func(c *Client) { c.baseUrl = strings.TrimSuffix(baseUrl, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithLogger sets the logger for per-item fetch warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseUrl:    defaultBaseUrl,
		maxRetries: 3,
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// get fetches url and parses the response body. Server errors and
// transport failures are retried with exponential backoff; client errors
// and unparseable bodies are not.
func (c *Client) get(ctx context.Context, url string) (*goquery.Document, error) {
	var document *goquery.Document

	operation := func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		request.Header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.8")

		response, err := c.httpClient.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			err := fmt.Errorf("GET %v: %v", url, response.Status)
			if response.StatusCode >= 400 && response.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		document, err = goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return document, nil
}

// Subjects lists the subject codes available for a catalog year and term.
func (c *Client) Subjects(ctx context.Context, year, term string) ([]string, error) {
	document, err := c.get(ctx, fmt.Sprintf("%v/%v/%v.xml", c.baseUrl, year, term))
	if err != nil {
		return nil, fmt.Errorf("list subjects for %v %v: %w", year, term, err)
	}

	var subjects []string
	document.Find("subject").Each(func(i int, subject *goquery.Selection) {
		if id, exists := subject.Attr("id"); exists {
			subjects = append(subjects, id)
		}
	})
	return subjects, nil
}

// CourseNumbers lists the catalog numbers offered under one subject.
func (c *Client) CourseNumbers(ctx context.Context, year, term, subject string) ([]string, error) {
	document, err := c.get(ctx, fmt.Sprintf("%v/%v/%v/%v.xml", c.baseUrl, year, term, subject))
	if err != nil {
		return nil, fmt.Errorf("list courses for %v: %w", subject, err)
	}

	var numbers []string
	document.Find("course").Each(func(i int, course *goquery.Selection) {
		if id, exists := course.Attr("id"); exists {
			numbers = append(numbers, id)
		}
	})
	return numbers, nil
}

var prereqSentenceRE = regexp.MustCompile(`(?is)prerequisite[s]?:\s*(.*)$`)

// CourseDetail fetches one course record.
func (c *Client) CourseDetail(ctx context.Context, year, term, subject, number string) (Course, error) {
	document, err := c.get(ctx, fmt.Sprintf("%v/%v/%v/%v/%v.xml", c.baseUrl, year, term, subject, number))
	if err != nil {
		return Course{}, fmt.Errorf("fetch %v %v: %w", subject, number, err)
	}

	course := Course{Index: subject + " " + number}

	if name := elementText(document, "label"); name == nil {
		course.Name = elementText(document, "title")
	} else {
		course.Name = name
	}
	course.Description = elementText(document, "description")
	course.Prerequisites = extractPrerequisiteText(document)

	return course, nil
}

// extractPrerequisiteText prefers an explicitly labeled prerequisite
// element, then a "Prerequisite:" sentence in the section information,
// then one in the description.
func extractPrerequisiteText(document *goquery.Document) *string {
	for _, tag := range []string{"prerequisites", "prerequisite"} {
		if text := elementText(document, tag); text != nil {
			return text
		}
	}

	// The html parser lowercases element names, so <courseSectionInformation>
	// is matched by its lowercase form.
	for _, tag := range []string{"coursesectioninformation", "description"} {
		text := elementText(document, tag)
		if text == nil {
			continue
		}
		if m := prereqSentenceRE.FindStringSubmatch(*text); m != nil {
			matched := strings.TrimSpace(m[1])
			return &matched
		}
	}

	return nil
}

// elementText returns the trimmed text of the first matching element.
// Catalog payloads sometimes carry double-escaped entities that survive
// the parse-time decode, so the extracted text is unescaped once more.
func elementText(document *goquery.Document, tag string) *string {
	text := strings.TrimSpace(html.UnescapeString(document.Find(tag).First().Text()))
	if text == "" {
		return nil
	}
	return &text
}
