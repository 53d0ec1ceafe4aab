package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// AdaptGomponentToTempl lets a gomponents page body sit inside the templ
// layout. The render context is ignored since gomponents has no use for it.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// AdaptTemplToGomponent embeds a templ component in a gomponents tree. ctx is
// captured here because gomponents does not pass one down; nil means
// context.Background.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return gomponents.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
