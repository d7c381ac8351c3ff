package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/config"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	store       repository.RecordStore
	blobCodec   *codec.Codec
	storeKeys   kvstore.Keys

	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config)           { cfg = c }
func GetConfig() *config.Config            { return cfg }
func SetLogger(l *logrus.Logger)           { logger = l }
func GetLogger() *logrus.Logger            { return logger }
func SetRedis(r *redis.Client)             { redisClient = r }
func GetRedis() *redis.Client              { return redisClient }
func SetStore(s repository.RecordStore)    { store = s }
func GetStore() repository.RecordStore     { return store }
func SetCodec(c *codec.Codec)              { blobCodec = c }
func GetCodec() *codec.Codec               { return blobCodec }
func SetKeys(k kvstore.Keys)               { storeKeys = k }
func GetKeys() kvstore.Keys                { return storeKeys }
func SetJWT(m *helpers.JWTManager)         { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
