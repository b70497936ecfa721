package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// Validate checks the records one by one and then the cross-record rules:
// slugs are unique and every summary slug has a detail record.
// The returned error wraps domain.ErrCatalogInconsistent and lists every problem found.
func Validate(summaries []domain.ServiceSummary, details map[string]domain.ServiceDetail) error {
	var problems []string

	if len(summaries) == 0 {
		problems = append(problems, "catalog lists no services")
	}

	seen := make(map[string]int, len(summaries))
	for i, s := range summaries {
		if err := s.Validate(); err != nil {
			problems = append(problems, describe(fmt.Sprintf("services[%d]", i), err)...)
		}
		if first, dup := seen[s.Slug]; dup {
			problems = append(problems, fmt.Sprintf("services[%d]: slug %q already used by services[%d]", i, s.Slug, first))
			continue
		}
		seen[s.Slug] = i
		if _, ok := details[s.Slug]; !ok {
			problems = append(problems, fmt.Sprintf("services[%d]: no detail record for slug %q", i, s.Slug))
		}
	}

	slugs := make([]string, 0, len(details))
	for slug := range details {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		d := details[slug]
		if !domain.ValidSlug(slug) {
			problems = append(problems, fmt.Sprintf("details[%q]: slug is not URL-safe", slug))
		}
		if err := d.Validate(); err != nil {
			problems = append(problems, describe(fmt.Sprintf("details[%q]", slug), err)...)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrCatalogInconsistent, strings.Join(problems, "; "))
}

// describe flattens validator errors into one line per failing field.
func describe(prefix string, err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s: %v", prefix, err)}
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		lines = append(lines, fmt.Sprintf("%s.%s: failed %q", prefix, fe.Field(), fe.Tag()))
	}
	return lines
}
