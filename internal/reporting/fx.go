package reporting

import (
	"github.com/paydeck/paydeck/internal/reporting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reporting",
	fx.Provide(service.NewService),
)
