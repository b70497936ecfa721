// Package format renders cjr-cli listings as tables or JSON.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
)

// ServiceDisplay represents a service summary for display purposes
type ServiceDisplay struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Icon     string   `json:"icon"`
	Features []string `json:"features"`
}

// ServicesTable writes the summaries as an aligned table.
func ServicesTable(w io.Writer, services []domain.ServiceSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SLUG\tTITLE\tICON\tFEATURES")
	fmt.Fprintln(tw, "----\t-----\t----\t--------")

	if len(services) == 0 {
		fmt.Fprintln(tw, "No services found")
	}
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			s.Slug,
			Truncate(s.Title, 40),
			s.Icon,
			len(s.Features))
	}
	return tw.Flush()
}

// ServicesJSON writes the summaries as an indented JSON document.
func ServicesJSON(w io.Writer, services []domain.ServiceSummary) error {
	displays := make([]ServiceDisplay, len(services))
	for i, s := range services {
		displays[i] = ServiceDisplay{
			Slug:     s.Slug,
			Title:    s.Title,
			Icon:     string(s.Icon),
			Features: s.Features,
		}
	}

	output := struct {
		Services []ServiceDisplay `json:"services"`
		Count    int              `json:"count"`
	}{
		Services: displays,
		Count:    len(displays),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// EventsTable writes the declared bus events.
func EventsTable(w io.Writer, events []pubsub.EventInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----------")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, Truncate(e.Description, 60))
	}
	return tw.Flush()
}

// ServicesRegistryTable writes the registry contents.
func ServicesRegistryTable(w io.Writer, services []registry.Service) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "KEY\tTYPE")
	fmt.Fprintln(tw, "---\t----")
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\n", s.Key, s.Type)
	}
	return tw.Flush()
}

// Truncate shortens s to at most n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}
