// Package fixtures populates the store with users, products and disciplines
// from JSON files.
package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"diet-diary/domain"
	"diet-diary/pkg/activity"
	"diet-diary/pkg/product"
	"diet-diary/pkg/user"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	UsersFile       = "users.json"
	ProductsFile    = "products.json"
	DisciplinesFile = "disciplines.json"
)

type (
	Counts struct {
		Created  int
		Existing int
		Skipped  int
	}

	Report struct {
		Users       Counts
		Products    Counts
		Disciplines Counts
	}

	Loader struct {
		userService       user.UserService
		productRepository product.ProductRepository
		disciplineService activity.DisciplineService
		validator         *validator.Validate
		logger            *zap.Logger
	}
)

func NewLoader(
	userService user.UserService,
	productRepository product.ProductRepository,
	disciplineService activity.DisciplineService,
	validator *validator.Validate,
	logger *zap.Logger,
) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		userService:       userService,
		productRepository: productRepository,
		disciplineService: disciplineService,
		validator:         validator,
		logger:            logger,
	}
}

// Load reads every fixture file from src. Missing files are skipped, and
// invalid or duplicate entries are counted as skipped. Re-running a load
// creates nothing new.
func (l *Loader) Load(ctx context.Context, src Source) (Report, error) {
	var (
		report Report
		err    error
	)

	if report.Users, err = l.loadUsers(ctx, src); err != nil {
		return report, err
	}
	if report.Products, err = l.loadProducts(ctx, src); err != nil {
		return report, err
	}
	if report.Disciplines, err = l.loadDisciplines(ctx, src); err != nil {
		return report, err
	}
	return report, nil
}

func (l *Loader) loadUsers(ctx context.Context, src Source) (Counts, error) {
	var (
		entries []domain.UserCreateRequest
		counts  Counts
	)
	if ok, err := l.read(ctx, src, UsersFile, &entries); err != nil || !ok {
		return counts, err
	}

	for i, entry := range entries {
		if !l.valid(UsersFile, i, entry) {
			counts.Skipped++
			continue
		}

		_, err := l.userService.CreateUser(ctx, entry)
		switch {
		case err == nil:
			counts.Created++
		case errors.Is(err, domain.ErrIntegrity):
			counts.Existing++
		default:
			return counts, fmt.Errorf("create user %q: %w", entry.Username, err)
		}
	}
	return counts, nil
}

func (l *Loader) loadProducts(ctx context.Context, src Source) (Counts, error) {
	var (
		entries []domain.ProductCreateRequest
		counts  Counts
	)
	if ok, err := l.read(ctx, src, ProductsFile, &entries); err != nil || !ok {
		return counts, err
	}

	for i, entry := range entries {
		if !l.valid(ProductsFile, i, entry) {
			counts.Skipped++
			continue
		}

		_, created, err := l.productRepository.GetOrCreateProduct(ctx, product.ProductFilter{
			Name:     entry.Name,
			Kcal:     entry.Kcal,
			Carbs:    entry.Carbs,
			Proteins: entry.Proteins,
			Fat:      entry.Fat,
		})
		if err != nil {
			return counts, fmt.Errorf("create product %q: %w", entry.Name, err)
		}
		if created {
			counts.Created++
		} else {
			counts.Existing++
		}
	}
	return counts, nil
}

func (l *Loader) loadDisciplines(ctx context.Context, src Source) (Counts, error) {
	var (
		entries []domain.DisciplineCreateRequest
		counts  Counts
	)
	if ok, err := l.read(ctx, src, DisciplinesFile, &entries); err != nil || !ok {
		return counts, err
	}

	for i, entry := range entries {
		if !l.valid(DisciplinesFile, i, entry) {
			counts.Skipped++
			continue
		}

		_, created, err := l.disciplineService.CreateDiscipline(ctx, entry)
		if err != nil {
			return counts, fmt.Errorf("create discipline %q: %w", entry.Name, err)
		}
		if created {
			counts.Created++
		} else {
			counts.Existing++
		}
	}
	return counts, nil
}

// read decodes name into dst. It reports false when the file does not exist.
func (l *Loader) read(ctx context.Context, src Source, name string, dst any) (bool, error) {
	r, err := src.Open(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("fixture file not found, skipping", zap.String("file", name), zap.Stringer("source", src))
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", name, err)
	}
	defer r.Close()

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (l *Loader) valid(file string, index int, entry any) bool {
	if l.validator == nil {
		return true
	}
	if err := l.validator.Struct(entry); err != nil {
		l.logger.Warn("invalid fixture entry", zap.String("file", file), zap.Int("index", index), zap.Error(err))
		return false
	}
	return true
}
