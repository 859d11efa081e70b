package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchOptions controls a full catalog fetch.
type FetchOptions struct {
	// Year and Term select the catalog edition; when either is empty the
	// most recent reachable edition is detected.
	Year string
	Term string
	// Subject limits the fetch to one subject code.
	Subject string
	// Concurrency bounds the number of subjects fetched in parallel.
	Concurrency int
	// Sleep is an optional pause before each request, to stay polite.
	Sleep time.Duration
}

// FetchCatalog fetches every course record for the selected catalog
// edition. A subject or course that fails after retries is logged and
// skipped; the rest of the batch continues. Results are sorted
// deterministically.
func (c *Client) FetchCatalog(ctx context.Context, options FetchOptions) ([]Course, error) {
	year, term := options.Year, options.Term
	if year == "" || term == "" {
		var err error
		if year, term, err = c.DetectYearTerm(ctx); err != nil {
			return nil, err
		}
		c.logger.Info("detected catalog edition", zap.String("year", year), zap.String("term", term))
	}

	var subjects []string
	if options.Subject != "" {
		subjects = []string{options.Subject}
	} else {
		var err error
		if subjects, err = c.Subjects(ctx, year, term); err != nil {
			return nil, err
		}
	}
	c.logger.Info("fetching subjects", zap.Int("count", len(subjects)))

	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = 12
	}

	var mu sync.Mutex
	var all []Course

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for _, subject := range subjects {
		subject := subject
		group.Go(func() error {
			courses, err := c.fetchSubject(groupCtx, year, term, subject, options.Sleep)
			if err != nil {
				c.logger.Warn("subject fetch failed", zap.String("subject", subject), zap.Error(err))
				return nil
			}
			c.logger.Info("subject fetched", zap.String("subject", subject), zap.Int("courses", len(courses)))

			mu.Lock()
			all = append(all, courses...)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	SortCourses(all)
	return all, nil
}

func (c *Client) fetchSubject(ctx context.Context, year, term, subject string, sleep time.Duration) ([]Course, error) {
	if err := pause(ctx, sleep); err != nil {
		return nil, err
	}
	numbers, err := c.CourseNumbers(ctx, year, term, subject)
	if err != nil {
		return nil, err
	}

	var courses []Course
	for _, number := range numbers {
		if err := pause(ctx, sleep); err != nil {
			return nil, err
		}
		course, err := c.CourseDetail(ctx, year, term, subject, number)
		if err != nil {
			c.logger.Warn("course fetch failed",
				zap.String("subject", subject), zap.String("number", number), zap.Error(err))
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// DetectYearTerm probes recent catalog editions in likely order and
// returns the first reachable one, falling back to a known historical
// edition.
func (c *Client) DetectYearTerm(ctx context.Context) (string, string, error) {
	currentYear := time.Now().UTC().Year()
	terms := []string{"fall", "summer", "spring", "winter"}

	for _, year := range []int{currentYear, currentYear - 1} {
		for _, term := range terms {
			ok, err := c.probe(ctx, strconv.Itoa(year), term)
			if err != nil {
				return "", "", err
			}
			if ok {
				return strconv.Itoa(year), term, nil
			}
		}
	}
	return "2024", "fall", nil
}

// probe checks edition reachability with a single request, no retries.
func (c *Client) probe(ctx context.Context, year, term string) (bool, error) {
	url := fmt.Sprintf("%v/%v/%v.xml", c.baseUrl, year, term)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK, nil
}

func pause(ctx context.Context, sleep time.Duration) error {
	if sleep <= 0 {
		return nil
	}
	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
