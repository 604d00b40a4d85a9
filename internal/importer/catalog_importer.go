package importer

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"talent-pulse/internal/config"
	"talent-pulse/internal/domain/jobs"
	"talent-pulse/internal/repository"

	"github.com/gocolly/colly/v2"
)

// CatalogImporter scrapes an occupation catalog and upserts rows into
// the job bank. Expected markup is a table where each occupation row
// carries a RIASEC code, a title and a sector:
//
//	<tr class="occupation">
//	  <td class="code">RIS</td>
//	  <td class="title">Field Engineer</td>
//	  <td class="sector">Industrial</td>
//	</tr>
type CatalogImporter struct {
	jobBank     repository.JobBankRepository
	catalogURL  string
	allowedHost string
	logger      *log.Logger
}

type catalogRow struct {
	code   string
	title  string
	sector string
}

func NewCatalogImporter(jobBank repository.JobBankRepository, cfg config.ImporterConfig, logger *log.Logger) *CatalogImporter {
	if logger == nil {
		logger = log.Default()
	}
	host := strings.TrimSpace(cfg.AllowedDomain)
	if host == "" {
		host = hostFromURL(cfg.CatalogURL)
	}
	return &CatalogImporter{
		jobBank:     jobBank,
		catalogURL:  strings.TrimSpace(cfg.CatalogURL),
		allowedHost: host,
		logger:      logger,
	}
}

// Run fetches the catalog and imports every valid row. Rows with a
// malformed code or empty title are skipped, not fatal.
func (imp *CatalogImporter) Run(ctx context.Context, workers int) error {
	if imp == nil || imp.jobBank == nil {
		return fmt.Errorf("nil importer/job bank")
	}
	if imp.catalogURL == "" {
		return fmt.Errorf("catalog url not configured")
	}

	rows, err := imp.fetchCatalog()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		imp.logger.Printf("catalog import | rows=0 url=%s", imp.catalogURL)
		return nil
	}

	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	// Drain results while submitting. The results channel is bounded,
	// so a catalog larger than the buffer would block the workers if
	// nobody consumed it until after the submit loop.
	var failed int
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for res := range results {
			if res.Err != nil {
				failed++
				imp.logger.Printf("catalog import row failed | error=%v", res.Err)
			}
		}
	}()

	// Positions must be stable per key so re-imports keep the same
	// ordering in the bank.
	var mu sync.Mutex
	nextPos := make(map[string]int)

	submitted := 0
	for _, row := range rows {
		key := jobs.NormalizeKey(row.code)
		if len(key) != 3 || row.title == "" {
			imp.logger.Printf("catalog import skipped | code=%q title=%q", row.code, row.title)
			continue
		}

		suggestion := jobs.Suggestion{Title: row.title, Sector: row.sector}
		submitted++
		pool.Submit(func(ctx context.Context) error {
			mu.Lock()
			pos := nextPos[key]
			nextPos[key] = pos + 1
			mu.Unlock()
			return imp.jobBank.Upsert(ctx, key, pos, suggestion)
		})
	}

	pool.Close()
	<-drained

	imp.logger.Printf("catalog import done | rows=%d imported=%d failed=%d", len(rows), submitted-failed, failed)
	if submitted > 0 && failed == submitted {
		return fmt.Errorf("catalog import: all %d rows failed", failed)
	}
	return nil
}

func (imp *CatalogImporter) fetchCatalog() ([]catalogRow, error) {
	var c *colly.Collector
	if imp.allowedHost != "" {
		c = colly.NewCollector(colly.AllowedDomains(imp.allowedHost))
	} else {
		c = colly.NewCollector()
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 300 * time.Millisecond})

	rows := make([]catalogRow, 0)
	c.OnHTML("tr.occupation", func(e *colly.HTMLElement) {
		row := catalogRow{
			code:   strings.ToUpper(strings.TrimSpace(e.ChildText("td.code"))),
			title:  strings.TrimSpace(e.ChildText("td.title")),
			sector: strings.TrimSpace(e.ChildText("td.sector")),
		}
		rows = append(rows, row)
	})

	var visitErr error
	c.OnError(func(_ *colly.Response, err error) {
		visitErr = err
	})

	if err := c.Visit(imp.catalogURL); err != nil {
		return nil, err
	}
	c.Wait()

	if visitErr != nil && len(rows) == 0 {
		return nil, visitErr
	}
	return rows, nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
