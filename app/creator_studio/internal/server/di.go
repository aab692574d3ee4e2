package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/service"
	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/usecase"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/engine"
)

// ProviderSet 是内容工作室的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Engine providers
	NewStudioEngine,
	wire.Bind(new(usecase.Generator), new(*engine.Engine)),

	// UseCase providers
	usecase.NewStudioUseCase,

	// Service providers
	service.NewStudioService,
)
