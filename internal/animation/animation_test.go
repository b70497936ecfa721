package animation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

func TestPresetsAreValid(t *testing.T) {
	for name, b := range map[string]Batch{
		"home":    Home(),
		"about":   About(),
		"services": Services(),
		"detail":  ServiceDetail(),
		"contact": Contact(),
	} {
		assert.NoError(t, b.Validate(), name)
	}
}

func TestBatchValidate(t *testing.T) {
	assert.ErrorIs(t, Batch{}.Validate(), ErrInvalid)

	b := Batch{
		Scope: "#page",
		Tweens: []Tween{
			{Targets: "", From: Props{"opacity": 0}, Duration: 1},
			{Targets: ".card", Duration: 0},
			{Targets: ".card", From: Props{"y": 10}, Duration: 1, Position: "-=0.5"},
		},
	}
	err := b.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "tweens[0]: no targets")
	assert.ErrorContains(t, err, "tweens[1]: duration must be positive")
	assert.ErrorContains(t, err, "tweens[1]: nothing to animate")
	assert.ErrorContains(t, err, "tweens[2]: position only applies to sequences")
}

func TestBatchJSON(t *testing.T) {
	b := Batch{
		Scope: "#page",
		Tweens: []Tween{{
			Targets:  ".stat-item",
			From:     Props{"scale": 0.8, "opacity": 0},
			Duration: 0.6,
			Stagger:  0.1,
			Ease:     "back.out(1.7)",
			Scroll:   &ScrollTrigger{Trigger: "#stats", Start: "top 80%"},
		}},
	}

	assert.Equal(t,
		`{"scope":"#page","tweens":[{"targets":".stat-item","from":{"opacity":0,"scale":0.8},"duration":0.6,"ease":"back.out(1.7)","stagger":0.1,"scrollTrigger":{"trigger":"#stats","start":"top 80%"}}]}`,
		b.JSON())
	assert.Equal(t, b.JSON(), b.JSON(), "serialization is deterministic")
}

func TestHomeSequenceOrder(t *testing.T) {
	var decoded Batch
	require.NoError(t, json.Unmarshal([]byte(Home().JSON()), &decoded))

	var targets []string
	for _, tw := range decoded.Sequence {
		targets = append(targets, tw.Targets)
	}
	assert.Equal(t, []string{".hero-badge", ".hero-logo", ".hero-title", ".hero-subtitle", ".hero-description", ".hero-buttons", ".hero-stats"}, targets)
	assert.Equal(t, 0.5, decoded.Delay)
}

func TestAttr(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, h.Div(ServiceCardHover().Attr()).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `data-hover="{&#34;enter&#34;:`)
	assert.Contains(t, out, `.more-info-arrow`)

	buf.Reset()
	require.NoError(t, h.Main(Contact().Attr()).Render(&buf))
	assert.Contains(t, buf.String(), BatchAttr+`="`)
}
