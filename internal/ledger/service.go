// Package ledger owns the inventory records: the product/stock table,
// the outflow history and the login audit log. RecordOutflow is the one
// operation with a multi-step invariant; everything else is a single
// statement against the store.
package ledger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/invenkit/inventario/internal/domain"
)

var (
	// ErrProductNotFound means no product row carries the requested code.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock means the requested quantity exceeds current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service is the inventory ledger. It holds an injected database handle
// rather than ambient package state, so tests and the application wire
// their own connection.
type Service struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewService(db *gorm.DB, queryTimeout time.Duration) *Service {
	return &Service{db: db, queryTimeout: queryTimeout}
}

func (s *Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// RecordLogin appends one audit row for the given email.
func (s *Service) RecordLogin(ctx context.Context, email string) (*domain.LoginEvent, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	event := &domain.LoginEvent{Email: email}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, errors.Wrap(err, "insert login event")
	}
	return event, nil
}

// ImportProducts upserts each product by its code: an existing code gets
// nombre and stock replaced, while categoria, usuario_correo and
// fecha_importacion keep their first-import values. The batch is not
// atomic: the first failing item stops the loop and earlier items stay
// committed. Re-running the same import is safe because each item is an
// upsert. Returns how many items were written.
func (s *Service) ImportProducts(ctx context.Context, products []domain.Product) (int, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	imported := 0
	for i := range products {
		p := products[i]
		p.ID = 0
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_producto"}},
			DoUpdates: clause.AssignmentColumns([]string{"nombre", "stock"}),
		}).Create(&p).Error
		if err != nil {
			return imported, errors.Wrapf(err, "upsert product %s", p.Code)
		}
		imported++
	}
	return imported, nil
}

// RecordOutflow withdraws quantity units of the product identified by
// productCode and appends a history row snapshotting the product's
// current name. The lookup, the decrement and the insert run in one
// transaction; the decrement is conditional on sufficient stock and
// checked by rows affected, so two concurrent outflows against the same
// product cannot drive stock negative.
//
// The stock check is scoped by product code only, not by ownerEmail,
// matching the service's long-standing wire behavior.
func (s *Service) RecordOutflow(ctx context.Context, productCode string, quantity int, ownerEmail string) (*domain.OutflowRecord, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var record *domain.OutflowRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.Where("id_producto = ?", productCode).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return errors.Wrap(err, "lookup product")
		}

		res := tx.Model(&domain.Product{}).
			Where("id_producto = ? AND stock >= ?", productCode, quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return errors.Wrap(res.Error, "decrement stock")
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		record = &domain.OutflowRecord{
			ProductCode: productCode,
			ProductName: product.Name,
			Quantity:    quantity,
			OwnerEmail:  ownerEmail,
		}
		if err := tx.Create(record).Error; err != nil {
			return errors.Wrap(err, "insert outflow record")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ProductsByOwner lists one caller's products ordered by product code.
func (s *Service) ProductsByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []domain.Product
	err := s.db.WithContext(ctx).
		Where("usuario_correo = ?", email).
		Order("id_producto ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query products by owner")
	}
	return rows, nil
}

// OutflowsByOwner lists one caller's outflow history, newest first.
func (s *Service) OutflowsByOwner(ctx context.Context, email string) ([]domain.OutflowRecord, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []domain.OutflowRecord
	err := s.db.WithContext(ctx).
		Where("usuario_correo = ?", email).
		Order("fecha_salida DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query outflows by owner")
	}
	return rows, nil
}

// AllProducts lists every product, most recently imported first.
func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []domain.Product
	err := s.db.WithContext(ctx).Order("fecha_importacion DESC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query all products")
	}
	return rows, nil
}

// AllOutflows lists every outflow record, newest first.
func (s *Service) AllOutflows(ctx context.Context) ([]domain.OutflowRecord, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []domain.OutflowRecord
	err := s.db.WithContext(ctx).Order("fecha_salida DESC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query all outflows")
	}
	return rows, nil
}

// LoginEvents lists the login audit log, newest first.
func (s *Service) LoginEvents(ctx context.Context) ([]domain.LoginEvent, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []domain.LoginEvent
	err := s.db.WithContext(ctx).Order("fecha_login DESC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query login events")
	}
	return rows, nil
}
