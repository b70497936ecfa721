// Package animation declares the entrance, scroll and hover animations of the
// site. Pages attach the declarations to their markup as JSON data attributes;
// the browser script turns them into animation-engine timelines that are
// created when a page is shown and reverted when it is hidden.
package animation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
)

const (
	// BatchAttr holds a page's Batch.
	BatchAttr = "data-animations"
	// HoverAttr holds a card's Hover.
	HoverAttr = "data-hover"
)

// Props are animated properties (opacity, x, y, scale, rotation) and their
// values. Keys serialize in sorted order.
type Props map[string]float64

// ScrollTrigger starts a tween when Trigger scrolls into view.
type ScrollTrigger struct {
	Trigger string `json:"trigger"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// Tween animates every element matching Targets from the given property
// values to their natural state.
type Tween struct {
	Targets  string         `json:"targets"`
	From     Props          `json:"from"`
	Duration float64        `json:"duration"`
	Ease     string         `json:"ease,omitempty"`
	Stagger  float64        `json:"stagger,omitempty"`
	Position string         `json:"position,omitempty"`
	Scroll   *ScrollTrigger `json:"scrollTrigger,omitempty"`
}

// Batch is everything a page registers when it is shown. Sequence tweens
// run as one timeline after Delay; Tweens run independently.
type Batch struct {
	Scope    string  `json:"scope"`
	Delay    float64 `json:"delay,omitempty"`
	Sequence []Tween `json:"sequence,omitempty"`
	Tweens   []Tween `json:"tweens,omitempty"`
}

// HoverStep animates a part of a card. An empty Selector means the card
// itself.
type HoverStep struct {
	Selector string  `json:"selector,omitempty"`
	To       Props   `json:"to"`
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease,omitempty"`
}

// Hover is the enter and leave choreography of one card.
type Hover struct {
	Enter []HoverStep `json:"enter"`
	Leave []HoverStep `json:"leave"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid animation")

// Validate checks the batch for declarations the browser would reject.
func (b Batch) Validate() error {
	if strings.TrimSpace(b.Scope) == "" {
		return fmt.Errorf("%w: batch without scope", ErrInvalid)
	}
	var problems []string
	for i, t := range b.Sequence {
		problems = append(problems, t.problems(fmt.Sprintf("sequence[%d]", i))...)
	}
	for i, t := range b.Tweens {
		problems = append(problems, t.problems(fmt.Sprintf("tweens[%d]", i))...)
		if t.Position != "" {
			problems = append(problems, fmt.Sprintf("tweens[%d]: position only applies to sequences", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalid, b.Scope, strings.Join(problems, "; "))
	}
	return nil
}

func (t Tween) problems(prefix string) []string {
	var out []string
	if strings.TrimSpace(t.Targets) == "" {
		out = append(out, prefix+": no targets")
	}
	if t.Duration <= 0 {
		out = append(out, prefix+": duration must be positive")
	}
	if len(t.From) == 0 {
		out = append(out, prefix+": nothing to animate")
	}
	if t.Stagger < 0 {
		out = append(out, prefix+": negative stagger")
	}
	return out
}

// JSON returns the batch as the browser script reads it.
func (b Batch) JSON() string {
	return mustJSON(b)
}

// Attr attaches the batch to an element.
func (b Batch) Attr() g.Node {
	return g.Attr(BatchAttr, b.JSON())
}

// JSON returns the hover declaration as the browser script reads it.
func (h Hover) JSON() string {
	return mustJSON(h)
}

// Attr attaches the hover declaration to a card.
func (h Hover) Attr() g.Node {
	return g.Attr(HoverAttr, h.JSON())
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only maps of float64 and plain strings are marshalled.
		panic(fmt.Sprintf("animation: %v", err))
	}
	return string(data)
}
