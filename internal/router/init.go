package router

import (
	userapp "github.com/cliphub/cliphub/internal/application"
	"github.com/cliphub/cliphub/internal/container"
	pginfra "github.com/cliphub/cliphub/internal/infrastructure/postgres"
	handlers "github.com/cliphub/cliphub/internal/interface/http"
	"github.com/cliphub/cliphub/internal/router/modules"
	"github.com/cliphub/cliphub/pkg/helpers"
	"github.com/cliphub/cliphub/pkg/uploader"
)

// InitModules builds the dependency graph from the container singletons and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	channels := pginfra.NewChannelRepository(pool)

	media := uploader.New(
		uploader.NewGCSStorage(container.GetGCS(), cfg.GCSBucket),
		container.GetLogger(),
	)

	// RabbitPublisher and ES client may be nil when those backends are not
	// configured; the service treats both as optional.
	var pub userapp.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	svc := userapp.NewService(
		users,
		channels,
		container.GetJWT(),
		media,
		pub,
		cfg.MailSendEnabled,
		container.GetES(),
		cfg.ESChannelsIndex,
		container.GetLogger(),
	)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(svc, container.GetLogger(), cookies, cfg.TempUploadDir)
	channelHandler := handlers.NewChannelHandler(svc, container.GetLogger())

	r.Add(modules.NewUserModule(userHandler, channelHandler, container.GetJWT()))
	r.Add(modules.NewChannelModule(channelHandler, container.GetJWT()))
}
