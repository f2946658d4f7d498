package main

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xiaot623/chatshare/internal/adapter/llm"
	"github.com/xiaot623/chatshare/internal/adapter/objectstore"
	"github.com/xiaot623/chatshare/internal/config"
	"github.com/xiaot623/chatshare/internal/repository"
	"github.com/xiaot623/chatshare/internal/service"
	"github.com/xiaot623/chatshare/policy"
)

// app holds the long-lived clients shared by every request.
type app struct {
	service  *service.Service
	sessions repository.SessionStore
}

func (a *app) Close() {
	if err := a.sessions.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close session store")
	}
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	var awsCfg aws.Config
	if cfg.UsesAWS() {
		var err error
		if awsCfg, err = loadAWSConfig(ctx, cfg.AWS); err != nil {
			return nil, err
		}
	}

	objects, err := newObjectStore(cfg, awsCfg)
	if err != nil {
		return nil, err
	}

	sessions, err := newSessionStore(ctx, cfg, awsCfg)
	if err != nil {
		return nil, err
	}

	generator, err := llm.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		sessions.Close()
		return nil, errors.Wrap(err, "init generation client")
	}

	policyEngine, err := newPolicyEngine(ctx, cfg.SettingsPolicyFile)
	if err != nil {
		sessions.Close()
		return nil, err
	}

	log.Info().
		Str("blob_backend", cfg.Blob.Backend).
		Str("session_backend", cfg.Sessions.Backend).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("chatshare initialized")

	svc := service.New(sessions, repository.NewChatConfigStore(objects), generator, cfg, policyEngine)
	return &app{service: svc, sessions: sessions}, nil
}

func loadAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "load aws config")
	}
	if cfg.EndpointURL != "" {
		awsCfg.BaseEndpoint = aws.String(cfg.EndpointURL)
	}
	return awsCfg, nil
}

func newObjectStore(cfg *config.Config, awsCfg aws.Config) (objectstore.Store, error) {
	if cfg.Blob.Backend == config.BlobBackendFS {
		return objectstore.NewFSStore(cfg.Blob.Dir)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Local S3 emulators rarely support virtual-hosted buckets.
		o.UsePathStyle = cfg.AWS.EndpointURL != ""
	})
	return objectstore.NewS3Store(client, cfg.Blob.Bucket), nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (repository.SessionStore, error) {
	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, errors.Wrap(err, "connect redis")
		}
		return repository.NewRedisStore(rdb), nil
	case config.SessionBackendSQLite:
		return repository.NewSQLiteStore(cfg.Sessions.DatabaseURL)
	default:
		return repository.NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), cfg.Sessions.Table), nil
	}
}

func newPolicyEngine(ctx context.Context, path string) (*policy.Engine, error) {
	content := policy.DefaultPolicy
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read settings policy")
		}
		content = string(raw)
	}

	engine, err := policy.NewEngine(ctx, content)
	if err != nil {
		return nil, errors.Wrap(err, "init policy engine")
	}
	return engine, nil
}
