// Package modules defines the web module registry.
package modules

import (
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
