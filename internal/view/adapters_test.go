package view

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdapters(t *testing.T) {
	t.Run("gomponents inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		err := AdaptGomponentToTempl(h.Span(g.Text("5G"))).Render(context.Background(), &buf)
		require.NoError(t, err)
		assert.Equal(t, "<span>5G</span>", buf.String())
	})

	t.Run("nil node renders nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
		assert.Empty(t, buf.String())
	})

	t.Run("templ inside gomponents keeps the context", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			v, _ := ctx.Value(ctxKey{}).(string)
			_, err := io.WriteString(w, "<b>"+v+"</b>")
			return err
		})
		ctx := context.WithValue(context.Background(), ctxKey{}, "LTE")

		var buf bytes.Buffer
		require.NoError(t, h.Div(AdaptTemplToGomponentCtx(ctx, comp)).Render(&buf))
		assert.Equal(t, "<div><b>LTE</b></div>", buf.String())

		buf.Reset()
		require.NoError(t, AdaptTemplToGomponent(comp).Render(&buf))
		assert.Equal(t, "<b></b>", buf.String())
	})
}
