package invoice

import (
	"github.com/smallbiznis/billd/internal/invoice/render"
	"github.com/smallbiznis/billd/internal/invoice/repository"
	"github.com/smallbiznis/billd/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
