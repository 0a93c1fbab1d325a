package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-switch/app/entity"
)

var (
	// ErrConnectorResponseNotFound is the expected miss on a natural-key
	// lookup; callers branch on it to decide insert versus update. Every
	// other storage failure is fatal to the current operation.
	ErrConnectorResponseNotFound = errors.New("connector response not found")
	// ErrConnectorResponseAlreadyExists reports a duplicate natural key on
	// insert. A second insert for the same attempt is never a silent update.
	ErrConnectorResponseAlreadyExists = errors.New("connector response already exists")
)

type ConnectorResponseRepository struct {
	db DBTX
}

func NewConnectorResponseRepository(db DBTX) *ConnectorResponseRepository {
	return &ConnectorResponseRepository{db: db}
}

func (r *ConnectorResponseRepository) Create(ctx context.Context, record *entity.ConnectorResponse) error {
	query := `
		INSERT INTO connector_responses (
			merchant_id, payment_id, txn_id, connector_name,
			amount, connector_transaction_id, return_url, redirect_form_payload,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.MerchantID,
		record.PaymentID,
		record.TxnID,
		record.ConnectorName,
		record.Amount,
		record.ConnectorTransactionID,
		nullableStringValue(record.ReturnURL),
		nullableStringValue(record.RedirectFormPayload),
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrConnectorResponseAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = uint64(id)
	return nil
}

// Update applies the mutable columns of record to the row addressed by its
// internal id. The natural key columns are deliberately absent from the SET
// list.
func (r *ConnectorResponseRepository) Update(ctx context.Context, record *entity.ConnectorResponse) error {
	query := `
		UPDATE connector_responses SET
			connector_name = ?,
			amount = ?,
			connector_transaction_id = ?,
			return_url = ?,
			redirect_form_payload = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		record.ConnectorName,
		record.Amount,
		record.ConnectorTransactionID,
		nullableStringValue(record.ReturnURL),
		nullableStringValue(record.RedirectFormPayload),
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConnectorResponseNotFound
	}

	return nil
}

func (r *ConnectorResponseRepository) FindByPaymentMerchantTransaction(
	ctx context.Context,
	paymentID, merchantID, txnID string,
) (*entity.ConnectorResponse, error) {
	query := `
		SELECT id, merchant_id, payment_id, txn_id, connector_name,
			amount, connector_transaction_id, return_url, redirect_form_payload,
			created_at, updated_at
		FROM connector_responses
		WHERE merchant_id = ? AND payment_id = ? AND txn_id = ?
	`

	record := &entity.ConnectorResponse{}
	err := scanConnectorResponse(r.db.QueryRowContext(ctx, query, merchantID, paymentID, txnID), record)
	if err == sql.ErrNoRows {
		return nil, ErrConnectorResponseNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConnectorResponse(scan rowScanner, record *entity.ConnectorResponse) error {
	var returnURL sql.NullString
	var redirectFormPayload sql.NullString

	err := scan.Scan(
		&record.ID,
		&record.MerchantID,
		&record.PaymentID,
		&record.TxnID,
		&record.ConnectorName,
		&record.Amount,
		&record.ConnectorTransactionID,
		&returnURL,
		&redirectFormPayload,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return err
	}

	record.ReturnURL = stringPtrFromNull(returnURL)
	record.RedirectFormPayload = stringPtrFromNull(redirectFormPayload)
	return nil
}
