// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"fmt"

	"github.com/pdiddy/search-agent/internal/provider"
)

// withFallback runs the grounded call and, if it fails, the plain call.
// Every two-tier stage routes through here so failure semantics stay
// consistent: one fallback, no retries, the plain error (if any) is the
// caller's to degrade on.
func (a *Agent) withFallback(stage string, grounded, plain func() (provider.Completion, error)) (provider.Completion, error) {
	c, err := grounded()
	if err == nil {
		return c, nil
	}
	fmt.Fprintf(a.log, "warning: %s: grounded tier failed, falling back: %v\n", stage, err)
	return plain()
}
