package modules

import (
	"github.com/leasedesk/leasedesk/internal/services/web/modules/account"
	"github.com/leasedesk/leasedesk/internal/services/web/modules/leases"
	"github.com/leasedesk/leasedesk/internal/services/web/modules/pages"
	"github.com/leasedesk/leasedesk/internal/services/web/modules/properties"
)

// Default returns the modules that together render every view of the
// default route table.
func Default() []Module {
	return []Module{
		pages.New(),
		account.New(),
		properties.New(),
		leases.New(),
	}
}
