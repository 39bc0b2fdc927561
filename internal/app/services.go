package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/internal/service/auth"
	"github.com/medreach/hospital_backend/internal/service/blog"
	svcfile "github.com/medreach/hospital_backend/internal/service/file"
	"github.com/medreach/hospital_backend/internal/service/staff"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/internal/service/workflow"
	"github.com/medreach/hospital_backend/pkg/authorize"
	"github.com/medreach/hospital_backend/pkg/email"
	s3pkg "github.com/medreach/hospital_backend/pkg/s3"
	"github.com/medreach/hospital_backend/pkg/token"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideStaffService,
		ProvideWorkflowService,
		ProvideBlogService,
		ProvideFileService,
		ProvideTokenManager,
	),
)

func ProvideUserService(client *repo.Client, emailClient *email.Client, cfg *config.Config, authz authorize.IAuthorization) user.Service {
	return user.New(client, emailClient, cfg, authz)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	tokens *token.Manager,
	users user.Service,
	cfg *config.Config,
) (auth.Service, error) {
	return auth.New(db, rdb, tokens, users, cfg)
}

func ProvideStaffService(db *repo.Client) staff.Service {
	return staff.New(db, nil)
}

func ProvideWorkflowService(db *repo.Client, staffSvc staff.Service, nc *nats.Conn) workflow.Service {
	return workflow.New(db, staffSvc, nc)
}

func ProvideBlogService(db *repo.Client) blog.Service {
	return blog.New(db)
}

func ProvideFileService(s3 *s3pkg.Client) svcfile.Service {
	return svcfile.New(s3)
}

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewManager(cfg)
}
