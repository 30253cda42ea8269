package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

// --- ConfigurationRepository implementation ---

func (r *configurationRepository) Create(ctx context.Context, userID int64, name *string, description string) (*model.Configuration, error) {
	const query = `INSERT INTO configurations (user_id, name, description)
                   VALUES ($1, $2, $3) RETURNING id, created_at`
	cfg := model.Configuration{UserID: userID, Name: name, Description: description}
	err := r.storage.pool.QueryRow(ctx, query, userID, name, description).Scan(&cfg.ID, &cfg.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *configurationRepository) GetByID(ctx context.Context, id int64) (*model.Configuration, error) {
	const query = `SELECT id, user_id, name, description, created_at FROM configurations WHERE id=$1`
	var cfg model.Configuration
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&cfg.ID, &cfg.UserID, &cfg.Name, &cfg.Description, &cfg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg.Items = items
	return &cfg, nil
}

func (r *configurationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Configuration, error) {
	const query = `SELECT id, user_id, name, description, created_at
                   FROM configurations WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Configuration
	for rows.Next() {
		var cfg model.Configuration
		if err := rows.Scan(&cfg.ID, &cfg.UserID, &cfg.Name, &cfg.Description, &cfg.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *configurationRepository) Update(ctx context.Context, id int64, name *string, description string) error {
	tag, err := r.storage.pool.Exec(ctx,
		`UPDATE configurations SET name=$1, description=$2 WHERE id=$3`, name, description, id)
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

func (r *configurationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM configurations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *configurationRepository) AddItem(ctx context.Context, configurationID, componentID int64, quantity int) (*model.ConfigurationItem, error) {
	const query = `INSERT INTO configuration_items (configuration_id, component_id, quantity)
                   VALUES ($1, $2, $3) RETURNING id`
	item := model.ConfigurationItem{ConfigurationID: configurationID, ComponentID: componentID, Quantity: quantity}
	err := r.storage.pool.QueryRow(ctx, query, configurationID, componentID, quantity).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *configurationRepository) UpdateItemQuantity(ctx context.Context, configurationID, componentID int64, quantity int) error {
	tag, err := r.storage.pool.Exec(ctx,
		`UPDATE configuration_items SET quantity=$1 WHERE configuration_id=$2 AND component_id=$3`,
		quantity, configurationID, componentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *configurationRepository) RemoveItem(ctx context.Context, configurationID, componentID int64) error {
	tag, err := r.storage.pool.Exec(ctx,
		`DELETE FROM configuration_items WHERE configuration_id=$1 AND component_id=$2`,
		configurationID, componentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *configurationRepository) ListItems(ctx context.Context, configurationID int64) ([]model.ConfigurationItem, error) {
	const query = `SELECT ci.id, ci.configuration_id, ci.component_id, c.name, ci.quantity
                   FROM configuration_items ci
                   JOIN components c ON c.id = ci.component_id
                   WHERE ci.configuration_id=$1
                   ORDER BY ci.id`
	rows, err := r.storage.pool.Query(ctx, query, configurationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ConfigurationItem
	for rows.Next() {
		var item model.ConfigurationItem
		if err := rows.Scan(&item.ID, &item.ConfigurationID, &item.ComponentID, &item.ComponentName, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
