package middleware

import (
	"context"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
)

const labHolderKey contextKey = "lab_holder"

// labHolder lets outer middleware observe the lab resolved further down the
// chain, since context values only flow inwards.
type labHolder struct {
	lab *domain.Lab
}

func withLabHolder(ctx context.Context, h *labHolder) context.Context {
	return context.WithValue(ctx, labHolderKey, h)
}

func recordLab(ctx context.Context, l *domain.Lab) {
	if h, ok := ctx.Value(labHolderKey).(*labHolder); ok {
		h.lab = l
	}
}
