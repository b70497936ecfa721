// Package catalog holds the service catalog shown on the public site: the
// ordered listing of service summaries and the per-slug detail records.
//
// A Catalog is immutable once built. Hot reloads build a new Catalog and swap
// it into a Store, so readers never observe a half-updated catalog.
package catalog

import (
	"slices"
	"sort"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// Catalog is a validated, read-only service catalog.
type Catalog struct {
	summaries []domain.ServiceSummary
	details   map[string]domain.ServiceDetail
}

// New validates the records and builds a Catalog from them. The summaries keep
// their given order.
func New(summaries []domain.ServiceSummary, details map[string]domain.ServiceDetail) (*Catalog, error) {
	if err := Validate(summaries, details); err != nil {
		return nil, err
	}

	c := &Catalog{
		summaries: cloneSummaries(summaries),
		details:   make(map[string]domain.ServiceDetail, len(details)),
	}
	for slug, d := range details {
		c.details[slug] = cloneDetail(d)
	}
	return c, nil
}

// Summaries returns a copy of the listing in declaration order.
func (c *Catalog) Summaries() []domain.ServiceSummary {
	return cloneSummaries(c.summaries)
}

// Len returns the number of listed services.
func (c *Catalog) Len() int {
	return len(c.summaries)
}

// Resolve looks a slug up with an exact, case-sensitive match.
// A miss is a normal outcome, not an error.
func (c *Catalog) Resolve(slug string) (domain.ServiceDetail, bool) {
	d, ok := c.details[slug]
	if !ok {
		return domain.ServiceDetail{}, false
	}
	return cloneDetail(d), true
}

// Titles returns the listed service titles in declaration order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.summaries))
	for i, s := range c.summaries {
		titles[i] = s.Title
	}
	return titles
}

// Orphans returns, sorted, the detail slugs that no summary links to.
// Such pages are reachable only by typing their URL.
func (c *Catalog) Orphans() []string {
	listed := make(map[string]struct{}, len(c.summaries))
	for _, s := range c.summaries {
		listed[s.Slug] = struct{}{}
	}

	var orphans []string
	for slug := range c.details {
		if _, ok := listed[slug]; !ok {
			orphans = append(orphans, slug)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// cloneSummaries copies the listing down to its slices, so no caller edit can
// reach a published catalog.
func cloneSummaries(in []domain.ServiceSummary) []domain.ServiceSummary {
	out := slices.Clone(in)
	for i := range out {
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}

func cloneDetail(d domain.ServiceDetail) domain.ServiceDetail {
	d.Services = slices.Clone(d.Services)
	d.Benefits = slices.Clone(d.Benefits)
	d.Process = slices.Clone(d.Process)
	d.Images = slices.Clone(d.Images)
	return d
}
