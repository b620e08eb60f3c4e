package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"

	"diet-diary/cmd/config"
	migration "diet-diary/cmd/database/migrate"
	"diet-diary/internal/utils"
	"diet-diary/internal/utils/logging"
	"diet-diary/internal/utils/storage"
	"diet-diary/pkg/activity"
	"diet-diary/pkg/fixtures"
	"diet-diary/pkg/product"
	"diet-diary/pkg/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	dir := flag.String("dir", "", "directory holding the fixture files")
	bucket := flag.String("bucket", "", "S3 bucket holding the fixture files (defaults to AWS_S3_BUCKET)")
	prefix := flag.String("prefix", "", "key prefix inside the bucket (defaults to FIXTURES_PREFIX)")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("failed to load config: %v", err)
		}
		log.Printf("%v; continuing with environment configuration only", err)
	}
	utils.InitValidator()

	logger, err := logging.New(logging.ConfigFrom(utils.GetConfigOrDefault))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var src fixtures.Source
	if *dir != "" {
		src = fixtures.NewDirSource(*dir)
	} else {
		s3, err := storage.NewAwsS3(ctx, *bucket)
		if err != nil {
			logger.Fatal("no fixture source: pass -dir or configure a bucket", zap.Error(err))
		}
		p := *prefix
		if p == "" {
			p = utils.GetConfig("FIXTURES_PREFIX")
		}
		src = fixtures.NewS3Source(s3, p)
	}

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	loader := fixtures.NewLoader(
		user.NewUserService(user.NewUserRepository(db), utils.GetConfigInt("BCRYPT_COST", bcrypt.DefaultCost)),
		product.NewProductRepository(db),
		activity.NewDisciplineService(activity.NewDisciplineRepository(db)),
		utils.Validate,
		logger,
	)

	report, err := loader.Load(ctx, src)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}
	logger.Info("fixtures loaded",
		zap.Stringer("source", src),
		zap.Int("users_created", report.Users.Created),
		zap.Int("users_existing", report.Users.Existing),
		zap.Int("users_skipped", report.Users.Skipped),
		zap.Int("products_created", report.Products.Created),
		zap.Int("products_existing", report.Products.Existing),
		zap.Int("products_skipped", report.Products.Skipped),
		zap.Int("disciplines_created", report.Disciplines.Created),
		zap.Int("disciplines_existing", report.Disciplines.Existing),
		zap.Int("disciplines_skipped", report.Disciplines.Skipped),
	)
}
