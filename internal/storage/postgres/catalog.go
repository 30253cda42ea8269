package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

// --- CatalogRepository implementation ---

const componentColumns = `id, name, type_id, manufacturer_id, price, stock_quantity, specification`

func scanComponent(row pgx.Row) (*model.Component, error) {
	var c model.Component
	var spec []byte
	err := row.Scan(&c.ID, &c.Name, &c.TypeID, &c.ManufacturerID, &c.Price, &c.StockQuantity, &spec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	c.Specification = spec
	return &c, nil
}

func (r *catalogRepository) CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error) {
	const query = `INSERT INTO components (name, type_id, manufacturer_id, price, stock_quantity, specification)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	created := *component
	err := r.storage.pool.QueryRow(ctx, query,
		component.Name, component.TypeID, component.ManufacturerID,
		component.Price, component.StockQuantity, []byte(component.Specification),
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *catalogRepository) UpdateComponent(ctx context.Context, component *model.Component) error {
	const query = `UPDATE components
                   SET name=$1, type_id=$2, manufacturer_id=$3, price=$4, stock_quantity=$5, specification=$6
                   WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		component.Name, component.TypeID, component.ManufacturerID,
		component.Price, component.StockQuantity, []byte(component.Specification), component.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *catalogRepository) DeleteComponent(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM components WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *catalogRepository) GetComponent(ctx context.Context, id int64) (*model.Component, error) {
	return scanComponent(r.storage.pool.QueryRow(ctx,
		`SELECT `+componentColumns+` FROM components WHERE id=$1`, id))
}

func (r *catalogRepository) GetComponentByName(ctx context.Context, name string) (*model.Component, error) {
	return scanComponent(r.storage.pool.QueryRow(ctx,
		`SELECT `+componentColumns+` FROM components WHERE name=$1`, name))
}

func (r *catalogRepository) ListComponents(ctx context.Context) ([]model.Component, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+componentColumns+` FROM components ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Component
	for rows.Next() {
		var c model.Component
		var spec []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.TypeID, &c.ManufacturerID, &c.Price, &c.StockQuantity, &spec); err != nil {
			return nil, err
		}
		c.Specification = spec
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) UnitPrice(ctx context.Context, componentID int64) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.storage.pool.QueryRow(ctx, `SELECT price FROM components WHERE id=$1`, componentID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, domainErrors.ErrNotFound
		}
		return decimal.Decimal{}, err
	}
	return price, nil
}

func (r *catalogRepository) CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error) {
	m := model.Manufacturer{Name: name}
	err := r.storage.pool.QueryRow(ctx,
		`INSERT INTO manufacturers (name) VALUES ($1) RETURNING id`, name).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &m, nil
}

func (r *catalogRepository) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name FROM manufacturers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Manufacturer
	for rows.Next() {
		var m model.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error) {
	t := model.ComponentType{Name: name, Description: description}
	err := r.storage.pool.QueryRow(ctx,
		`INSERT INTO component_types (name, description) VALUES ($1, $2) RETURNING id`,
		name, description).Scan(&t.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *catalogRepository) ListComponentTypes(ctx context.Context) ([]model.ComponentType, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name, description FROM component_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ComponentType
	for rows.Next() {
		var t model.ComponentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
