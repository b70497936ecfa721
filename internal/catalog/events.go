package catalog

import "github.com/cjrsolutions/cjrweb/internal/pubsub"

// ReloadedEvent is published after a catalog file change has been applied.
type ReloadedEvent struct {
	Path     string   `json:"path"`
	Services int      `json:"services"`
	Orphans  []string `json:"orphans,omitempty"`
}

// Reloaded is the topic announcing a successful catalog hot reload.
var Reloaded = pubsub.NewEvent[ReloadedEvent]("catalog.reloaded", "A catalog file change was validated and applied")
