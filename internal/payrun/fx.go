package payrun

import (
	"github.com/paydeck/paydeck/internal/payrun/repository"
	"github.com/paydeck/paydeck/internal/payrun/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payrun",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
