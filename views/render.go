package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// RenderString renders cmp into a string. A nil component renders as "".
func RenderString(ctx context.Context, cmp templ.Component) (string, error) {
	if cmp == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
