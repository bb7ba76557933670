package registrationrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Registration, error) {
	query := `
        SELECT *
        FROM registrations
        WHERE order_id = $1
    `
	return r.findOne(ctx, query, orderID)
}

func (r *Repository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Registration, error) {
	query := `
        SELECT *
        FROM registrations
        WHERE gateway_order_id = $1
    `
	return r.findOne(ctx, query, gatewayOrderID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Registration, error) {
	row := r.db.QueryRow(ctx, query, arg)

	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find registration", zap.Error(err))
		return nil, err
	}
	return reg, nil
}

func (r *Repository) Save(ctx context.Context, reg *domain.Registration) error {
	query := `
        INSERT INTO registrations (order_id, gateway, amount, currency, customer_name, customer_email, customer_phone, payment_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			reg.OrderID, reg.Gateway, reg.Amount, reg.Currency,
			reg.CustomerName, reg.CustomerEmail, reg.CustomerPhone,
			reg.PaymentStatus, reg.CreatedAt,
		)
		if err := row.Scan(&reg.ID); err != nil {
			zap.L().Error("can't save registration", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) AttachSession(ctx context.Context, orderID, gatewayOrderID string) error {
	query := `
        UPDATE registrations
        SET gateway_order_id = $1, updated_at = NOW()
        WHERE order_id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, gatewayOrderID, orderID)
		if err != nil {
			zap.L().Error("can't attach gateway session", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkCompleted applies the completion transition as one conditional statement.
// The status guard makes concurrent deliveries race safely: exactly one caller
// sees a row change and owns the notification side effect.
func (r *Repository) MarkCompleted(ctx context.Context, orderID, gatewayPaymentID, method string) (bool, error) {
	query := `
        UPDATE registrations
        SET payment_status = 'Completed', gateway_payment_id = $1, payment_method = $2, completed_at = NOW(), updated_at = NOW()
        WHERE order_id = $3 AND payment_status <> 'Completed'
    `
	tag, err := r.db.Exec(ctx, query, gatewayPaymentID, method, orderID)
	if err != nil {
		zap.L().Error("can't mark registration completed", zap.String("orderID", orderID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed records a failure reason. Completed is terminal, so a late
// failure notification never downgrades it; re-failing overwrites the reason.
func (r *Repository) MarkFailed(ctx context.Context, orderID, reason string) error {
	query := `
        UPDATE registrations
        SET payment_status = 'Failed', failure_reason = $1, updated_at = NOW()
        WHERE order_id = $2 AND payment_status <> 'Completed'
    `
	_, err := r.db.Exec(ctx, query, reason, orderID)
	if err != nil {
		zap.L().Error("can't mark registration failed", zap.String("orderID", orderID), zap.Error(err))
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	var gatewayOrderID, gatewayPaymentID, paymentMethod, failureReason sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&reg.ID, &reg.OrderID, &reg.Gateway, &gatewayOrderID, &gatewayPaymentID,
		&reg.Amount, &reg.Currency, &reg.CustomerName, &reg.CustomerEmail, &reg.CustomerPhone,
		&reg.PaymentStatus, &paymentMethod, &failureReason, &completedAt,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reg.GatewayOrderID = gatewayOrderID.String
	reg.GatewayPaymentID = gatewayPaymentID.String
	reg.PaymentMethod = paymentMethod.String
	reg.FailureReason = failureReason.String
	if completedAt.Valid {
		reg.CompletedAt = &completedAt.Time
	}
	return &reg, nil
}
