package employee

import (
	"github.com/paydeck/paydeck/internal/employee/repository"
	"github.com/paydeck/paydeck/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
