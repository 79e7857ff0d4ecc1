package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/cars/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/pkg/sqlxutils"
)

const carColumns = `id, name, description, daily_rate, available, license_plate, fine_amount, brand, category_id, created_at`

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) CreateCategory(ctx context.Context, params usecase.CreateCategoryParams) (models.Category, error) {
	const createCmd = `
	INSERT INTO categories (id, name, description)
	VALUES ($1, $2, $3)
	RETURNING id, name, description, created_at;`

	var category models.Category
	err := sqlxutils.Get(ctx, r.db, &category, createCmd, uuid.New(), params.Name, params.Description)
	if err != nil {
		if _, ok := sqlxutils.UniqueViolation(err); ok {
			return models.Category{}, pkgErrors.ErrCategoryAlreadyExists
		}
		return models.Category{}, r.dbError("create category", err)
	}

	return category, nil
}

func (r *SqlxRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	const getCmd = `
	SELECT id, name, description, created_at
	FROM categories
	WHERE id = $1;`

	var category models.Category
	err := sqlxutils.Get(ctx, r.db, &category, getCmd, id)
	if err != nil {
		if sqlxutils.IsNoRows(err) {
			return models.Category{}, pkgErrors.ErrCategoryNotFound
		}
		return models.Category{}, r.dbError("get category", err)
	}

	return category, nil
}

func (r *SqlxRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	const listCmd = `
	SELECT id, name, description, created_at
	FROM categories
	ORDER BY name;`

	categories := make([]models.Category, 0)
	if err := sqlxutils.Select(ctx, r.db, &categories, listCmd); err != nil {
		return nil, r.dbError("list categories", err)
	}

	return categories, nil
}

func (r *SqlxRepository) CreateSpecification(ctx context.Context, params usecase.CreateSpecificationParams) (models.Specification, error) {
	const createCmd = `
	INSERT INTO specifications (id, name, description)
	VALUES ($1, $2, $3)
	RETURNING id, name, description, created_at;`

	var specification models.Specification
	err := sqlxutils.Get(ctx, r.db, &specification, createCmd, uuid.New(), params.Name, params.Description)
	if err != nil {
		if _, ok := sqlxutils.UniqueViolation(err); ok {
			return models.Specification{}, pkgErrors.ErrSpecificationAlreadyExists
		}
		return models.Specification{}, r.dbError("create specification", err)
	}

	return specification, nil
}

func (r *SqlxRepository) ListSpecifications(ctx context.Context) ([]models.Specification, error) {
	const listCmd = `
	SELECT id, name, description, created_at
	FROM specifications
	ORDER BY name;`

	specifications := make([]models.Specification, 0)
	if err := sqlxutils.Select(ctx, r.db, &specifications, listCmd); err != nil {
		return nil, r.dbError("list specifications", err)
	}

	return specifications, nil
}

func (r *SqlxRepository) GetSpecificationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Specification, error) {
	const getCmd = `
	SELECT id, name, description, created_at
	FROM specifications
	WHERE id = ANY($1::uuid[])
	ORDER BY name;`

	specifications := make([]models.Specification, 0, len(ids))
	if err := sqlxutils.Select(ctx, r.db, &specifications, getCmd, toStringArray(ids)); err != nil {
		return nil, r.dbError("get specifications", err)
	}

	return specifications, nil
}

func (r *SqlxRepository) CreateCar(ctx context.Context, params usecase.CreateCarParams) (models.Car, error) {
	const createCmd = `
	INSERT INTO cars (id, name, description, daily_rate, license_plate, fine_amount, brand, category_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + carColumns + `;`

	var car models.Car
	err := sqlxutils.Get(ctx, r.db, &car, createCmd,
		uuid.New(), params.Name, params.Description, params.DailyRate,
		params.LicensePlate, params.FineAmount, params.Brand, params.CategoryID,
	)
	if err != nil {
		if _, ok := sqlxutils.UniqueViolation(err); ok {
			return models.Car{}, pkgErrors.ErrCarAlreadyExists
		}
		if _, ok := sqlxutils.ForeignKeyViolation(err); ok {
			return models.Car{}, pkgErrors.ErrCategoryNotFound
		}
		return models.Car{}, r.dbError("create car", err)
	}

	return car, nil
}

func (r *SqlxRepository) GetCarByID(ctx context.Context, id uuid.UUID) (models.Car, error) {
	const getCmd = `
	SELECT ` + carColumns + `
	FROM cars
	WHERE id = $1;`

	const specificationsCmd = `
	SELECT s.id, s.name, s.description, s.created_at
	FROM specifications s
	JOIN specifications_cars sc ON sc.specification_id = s.id
	WHERE sc.car_id = $1
	ORDER BY s.name;`

	var car models.Car
	err := sqlxutils.Get(ctx, r.db, &car, getCmd, id)
	if err != nil {
		if sqlxutils.IsNoRows(err) {
			return models.Car{}, pkgErrors.ErrCarNotFound
		}
		return models.Car{}, r.dbError("get car", err)
	}

	car.Specifications = make([]models.Specification, 0)
	if err = sqlxutils.Select(ctx, r.db, &car.Specifications, specificationsCmd, id); err != nil {
		return models.Car{}, r.dbError("get car specifications", err)
	}

	return car, nil
}

func (r *SqlxRepository) ListAvailableCars(ctx context.Context, filter usecase.ListFilter) ([]models.Car, error) {
	const listCmd = `
	SELECT ` + carColumns + `
	FROM cars
	WHERE available = TRUE
	  AND ($1 = '' OR brand = $1)
	  AND ($2 = '' OR name = $2)
	  AND ($3::uuid IS NULL OR category_id = $3::uuid)
	ORDER BY created_at DESC;`

	cars := make([]models.Car, 0)
	if err := sqlxutils.Select(ctx, r.db, &cars, listCmd, filter.Brand, filter.Name, filter.CategoryID); err != nil {
		return nil, r.dbError("list available cars", err)
	}

	return cars, nil
}

func (r *SqlxRepository) AddSpecifications(ctx context.Context, carID uuid.UUID, specificationIDs []uuid.UUID) error {
	const addCmd = `
	INSERT INTO specifications_cars (car_id, specification_id)
	SELECT $1, unnest($2::uuid[])
	ON CONFLICT DO NOTHING;`

	_, err := r.db.ExecContext(ctx, addCmd, carID, toStringArray(specificationIDs))
	if err != nil {
		if _, ok := sqlxutils.ForeignKeyViolation(err); ok {
			return pkgErrors.ErrSpecificationNotFound
		}
		return r.dbError("add specifications", err)
	}

	return nil
}

func (r *SqlxRepository) dbError(op string, err error) error {
	r.logger.Error("failed to "+op, slog.String("error", err.Error()))
	return errors.Wrap(pkgErrors.ErrDb, err.Error())
}

func toStringArray(ids []uuid.UUID) pq.StringArray {
	result := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}
