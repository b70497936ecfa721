package app

import (
	"github.com/spf13/afero"

	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/modules/announcer"
	"github.com/cjrsolutions/cjrweb/internal/modules/catalogsync"
	"github.com/cjrsolutions/cjrweb/internal/modules/marketing"
	"github.com/cjrsolutions/cjrweb/internal/modules/quote"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/site"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Shell      *site.Shell
	Submitter  domain.ContactSubmitter
	// Fs backs the catalog file. Nil means the OS file system.
	Fs afero.Fs
}

// NewModules creates and returns the list of all active modules for the application.
// Order matters: catalogsync registers the store the page modules read during Boot.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		catalogsync.New(catalogsync.Dependencies{
			Fs:        deps.Fs,
			Publisher: deps.Publisher,
		}),
		marketing.New(marketing.Dependencies{
			Shell: deps.Shell,
		}),
		quote.New(quote.Dependencies{
			Shell:     deps.Shell,
			Submitter: deps.Submitter,
			Publisher: deps.Publisher,
		}),
		announcer.New(announcer.Dependencies{
			Subscriber: deps.Subscriber,
		}),
	}
}
