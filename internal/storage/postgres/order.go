package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

// --- OrderRepository implementation ---
//
// Every total mutation is a single transaction that changes the total
// additively (total = total + delta). The snapshot row is locked first
// where a delta depends on its current state, so concurrent edits to the
// same order serialize instead of overwriting each other.

func (r *orderRepository) Create(ctx context.Context, userID, configurationID int64, quantity int, unitPrice decimal.Decimal) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var statusID int64
		err := tx.QueryRow(ctx, `SELECT id FROM order_statuses WHERE name=$1`, model.StatusPending).Scan(&statusID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Seeding precondition, not a user-facing outcome.
				return fmt.Errorf("order status vocabulary is not seeded")
			}
			return err
		}

		total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

		o := model.Order{UserID: userID, Total: total, StatusID: statusID, Status: model.StatusPending}
		err = tx.QueryRow(ctx,
			`INSERT INTO orders (user_id, total, status_id) VALUES ($1, $2, $3) RETURNING id, order_date`,
			userID, total, statusID,
		).Scan(&o.ID, &o.OrderDate)
		if err != nil {
			return err
		}

		snapshot := model.OrderConfiguration{
			OrderID:         o.ID,
			ConfigurationID: configurationID,
			Quantity:        quantity,
			PriceAtTime:     unitPrice,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO order_configurations (order_id, configuration_id, quantity, price_at_time)
             VALUES ($1, $2, $3, $4) RETURNING id`,
			o.ID, configurationID, quantity, unitPrice,
		).Scan(&snapshot.ID)
		if err != nil {
			return err
		}

		o.Snapshots = []model.OrderConfiguration{snapshot}
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.user_id, o.order_date, o.total, o.status_id, s.name`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.OrderDate, &o.Total, &o.StatusID, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders o JOIN order_statuses s ON s.id = o.status_id WHERE o.id=$1`, id))
	if err != nil {
		return nil, err
	}

	const snapshotQuery = `SELECT id, order_id, configuration_id, quantity, price_at_time
                           FROM order_configurations WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, snapshotQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.OrderConfiguration
		if err := rows.Scan(&s.ID, &s.OrderID, &s.ConfigurationID, &s.Quantity, &s.PriceAtTime); err != nil {
			return nil, err
		}
		order.Snapshots = append(order.Snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderDate, &o.Total, &o.StatusID, &o.Status); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders o JOIN order_statuses s ON s.id = o.status_id
         WHERE o.user_id=$1 ORDER BY o.order_date DESC`, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders o JOIN order_statuses s ON s.id = o.status_id
         ORDER BY o.order_date DESC`)
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) AttachSnapshot(ctx context.Context, orderID, configurationID int64, quantity int, price decimal.Decimal) (*model.OrderConfiguration, error) {
	snapshot := model.OrderConfiguration{
		OrderID:         orderID,
		ConfigurationID: configurationID,
		Quantity:        quantity,
		PriceAtTime:     price,
	}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO order_configurations (order_id, configuration_id, quantity, price_at_time)
             VALUES ($1, $2, $3, $4) RETURNING id`,
			orderID, configurationID, quantity, price,
		).Scan(&snapshot.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			if isForeignKeyViolation(err) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE orders SET total = total + $1 WHERE id=$2`, snapshot.Cost(), orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *orderRepository) UpdateSnapshotQuantity(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	var snapshot model.OrderConfiguration
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT id, order_id, configuration_id, quantity, price_at_time
             FROM order_configurations
             WHERE order_id=$1 AND configuration_id=$2 FOR UPDATE`,
			orderID, configurationID,
		).Scan(&snapshot.ID, &snapshot.OrderID, &snapshot.ConfigurationID, &snapshot.Quantity, &snapshot.PriceAtTime)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		delta := model.SnapshotDelta(snapshot.PriceAtTime, snapshot.Quantity, quantity)

		if _, err := tx.Exec(ctx, `UPDATE order_configurations SET quantity=$1 WHERE id=$2`, quantity, snapshot.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE orders SET total = total + $1 WHERE id=$2`, delta, orderID); err != nil {
			return err
		}
		snapshot.Quantity = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *orderRepository) RemoveSnapshot(ctx context.Context, orderID, configurationID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var snapshot model.OrderConfiguration
		err := tx.QueryRow(ctx,
			`SELECT id, order_id, configuration_id, quantity, price_at_time
             FROM order_configurations
             WHERE order_id=$1 AND configuration_id=$2 FOR UPDATE`,
			orderID, configurationID,
		).Scan(&snapshot.ID, &snapshot.OrderID, &snapshot.ConfigurationID, &snapshot.Quantity, &snapshot.PriceAtTime)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_configurations WHERE id=$1`, snapshot.ID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE orders SET total = total - $1 WHERE id=$2`, snapshot.Cost(), orderID)
		return err
	})
}

func (r *orderRepository) SetStatus(ctx context.Context, orderID, statusID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status_id=$1 WHERE id=$2`, statusID, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) GetStatusByName(ctx context.Context, name string) (*model.OrderStatus, error) {
	var status model.OrderStatus
	err := r.storage.pool.QueryRow(ctx, `SELECT id, name FROM order_statuses WHERE name=$1`, name).
		Scan(&status.ID, &status.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *orderRepository) ListStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name FROM order_statuses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatus
	for rows.Next() {
		var s model.OrderStatus
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
