package generate

import (
	"context"

	"github.com/questmaster/questmaster/models"
)

// Generator wraps the primary provider with the local fallback. A nil
// primary means local-only generation (no service configured), which is
// not a degradation.
type Generator struct {
	primary  Provider
	fallback Provider
}

// NewGenerator builds a generator around the primary provider.
func NewGenerator(primary Provider) *Generator {
	return &Generator{primary: primary, fallback: NewFallbackProvider()}
}

// GenerateQuest asks the primary provider for a quest and falls back to
// local generation on any failure. Degraded reports that the fallback
// covered for a failing service, so the caller can show a soft notice
// instead of an error; quest creation itself never blocks on the
// service.
func (g *Generator) GenerateQuest(ctx context.Context, req QuestRequest) (gen models.GeneratedQuest, degraded bool, err error) {
	if g.primary != nil {
		gen, err = g.primary.GenerateQuest(ctx, req)
		if err == nil {
			return gen, false, nil
		}
		degraded = true
	}

	gen, err = g.fallback.GenerateQuest(ctx, req)
	return gen, degraded, err
}
