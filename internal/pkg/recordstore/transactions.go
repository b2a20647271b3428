package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

const transactionColumns = `id, user_id, strategy_id, plan_level, amount, local_amount, conversion_rate,
	currency, payment_method, external_transaction_id, receipt_reference, status, admin_id,
	rejection_reason, admin_message, admin_message_status, credited_amount, credit_pending,
	platform, account_id, account_password, account_server, created_at, updated_at`

// Decision describes an admin terminal-state transition.
type Decision struct {
	Status       models.TransactionStatus
	AdminID      uuid.UUID
	Reason       string
	CreditAmount decimal.Decimal
}

// CreateTransaction inserts a new pending transaction, generating its id and
// timestamps. The record falls through to the JSON store when the relational
// backend is unreachable.
func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	t.ID = uuid.New()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Status = models.TransactionPending

	query := `
		INSERT INTO wallet_transactions (
			id, user_id, strategy_id, plan_level, amount, local_amount, conversion_rate,
			currency, payment_method, external_transaction_id, receipt_reference, status,
			rejection_reason, admin_message, admin_message_status, credited_amount,
			credit_pending, platform, account_id, account_password, account_server,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :strategy_id, :plan_level, :amount, :local_amount, :conversion_rate,
			:currency, :payment_method, :external_transaction_id, :receipt_reference, :status,
			:rejection_reason, :admin_message, :admin_message_status, :credited_amount,
			:credit_pending, :platform, :account_id, :account_password, :account_server,
			:created_at, :updated_at
		)
	`

	degraded, err := s.writeThrough(ctx, "create_transaction",
		func(ctx context.Context) error {
			_, err := s.db.NamedExecContext(ctx, query, t)
			return err
		},
		func(doc *Document) error {
			doc.WalletTransactions = append(doc.WalletTransactions, transactionRowFromModel(t))
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	t.Degraded = degraded
	return nil
}

// GetTransaction reads a transaction from both backends and merges JSON-only
// fields onto the relational row.
func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var pgTx *models.Transaction
	if s.db != nil {
		var t models.Transaction
		err := s.db.GetContext(ctx, &t, `SELECT `+transactionColumns+` FROM wallet_transactions WHERE id = $1`, id)
		switch {
		case err == nil:
			pgTx = &t
		case errors.Is(err, sql.ErrNoRows):
			// may still exist in the fallback store
		case isBackendUnavailable(err):
			logger.Warn("relational backend unavailable on transaction read",
				logger.String("transaction_id", id.String()),
				logger.Err(err),
			)
		default:
			return nil, fmt.Errorf("failed to get transaction: %w", err)
		}
	}

	fileRow := s.fileTransaction(id)

	switch {
	case pgTx == nil && fileRow == nil:
		return nil, ErrNotFound
	case pgTx == nil:
		return fileRow.toModel(), nil
	default:
		if fileRow != nil {
			overlayTransactionFields(pgTx, fileRow)
		}
		return pgTx, nil
	}
}

// ListTransactionsByUser returns a user's transaction history merged across
// both backends, newest first.
func (s *Store) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var rows []models.Transaction
	if s.db != nil {
		err := s.db.SelectContext(ctx, &rows,
			`SELECT `+transactionColumns+` FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC`,
			userID,
		)
		if err != nil && !isBackendUnavailable(err) {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		if err != nil {
			logger.Warn("relational backend unavailable on transaction list", logger.Err(err))
		}
	}

	seen := make(map[uuid.UUID]int, len(rows))
	for i := range rows {
		seen[rows[i].ID] = i
	}

	_ = s.file.View(func(doc *Document) error {
		for i := range doc.WalletTransactions {
			row := doc.WalletTransactions[i]
			if row.UserID != userID {
				continue
			}
			if idx, ok := seen[row.ID]; ok {
				overlayTransactionFields(&rows[idx], &row)
				continue
			}
			// message-only stubs carry no status and are overlay material,
			// not records in their own right
			if row.Status == "" {
				continue
			}
			rows = append(rows, *row.toModel())
		}
		return nil
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

// ListPendingPayments returns all transactions awaiting an admin decision,
// hydrated with user and strategy display fields.
func (s *Store) ListPendingPayments(ctx context.Context) ([]models.PendingPayment, error) {
	var items []models.PendingPayment
	if s.db != nil {
		query := `
			SELECT t.id, t.user_id, t.strategy_id, t.plan_level, t.amount, t.local_amount,
				t.conversion_rate, t.currency, t.payment_method, t.external_transaction_id,
				t.receipt_reference, t.status, t.admin_id, t.rejection_reason, t.admin_message,
				t.admin_message_status, t.credited_amount, t.credit_pending, t.platform,
				t.account_id, t.account_password, t.account_server, t.created_at, t.updated_at,
				u.email AS user_email, u.fullname AS user_fullname,
				COALESCE(s.name, '') AS strategy_name
			FROM wallet_transactions t
			JOIN users u ON u.id = t.user_id
			LEFT JOIN strategies s ON s.id = t.strategy_id
			WHERE t.status IN ('pending', 'in-process')
			ORDER BY t.created_at DESC
		`
		err := s.db.SelectContext(ctx, &items, query)
		if err != nil && !isBackendUnavailable(err) {
			return nil, fmt.Errorf("failed to list pending payments: %w", err)
		}
		if err != nil {
			logger.Warn("relational backend unavailable on pending payment list", logger.Err(err))
		}
	}

	seen := make(map[uuid.UUID]int, len(items))
	for i := range items {
		seen[items[i].ID] = i
	}

	_ = s.file.View(func(doc *Document) error {
		for i := range doc.WalletTransactions {
			row := doc.WalletTransactions[i]
			if idx, ok := seen[row.ID]; ok {
				overlayTransactionFields(&items[idx].Transaction, &row)
				continue
			}
			if row.Status != models.TransactionPending && row.Status != models.TransactionInProcess {
				continue
			}
			item := models.PendingPayment{Transaction: *row.toModel()}
			if ui := doc.userIndex(row.UserID); ui >= 0 {
				item.UserEmail = doc.Users[ui].Email
				item.UserFullName = doc.Users[ui].Fullname
			}
			if row.StrategyID != nil {
				if si := doc.strategyIndex(*row.StrategyID); si >= 0 {
					item.StrategyName = doc.Strategies[si].Name
				}
			}
			items = append(items, item)
		}
		return nil
	})

	// the overlay may reveal a decision the relational backend missed; a
	// merged-terminal item no longer belongs in the review queue
	pending := items[:0]
	for i := range items {
		if !items[i].Status.IsTerminal() {
			pending = append(pending, items[i])
		}
	}
	items = pending

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// AttachProof stores the receipt reference and account credentials on a
// non-terminal transaction and moves it to in-process. Returns the updated
// record and whether anything changed; a terminal transaction is returned
// unchanged.
func (s *Store) AttachProof(ctx context.Context, id uuid.UUID, proof models.AttachProofRequest) (*models.Transaction, bool, error) {
	now := time.Now()
	changed := false

	query := `
		UPDATE wallet_transactions
		SET status = $2, receipt_reference = $3,
			external_transaction_id = CASE WHEN $4 <> '' THEN $4 ELSE external_transaction_id END,
			platform = $5, account_id = $6, account_password = $7, account_server = $8,
			updated_at = $9
		WHERE id = $1 AND status IN ('pending', 'in-process')
	`

	_, err := s.writeThrough(ctx, "attach_proof",
		func(ctx context.Context) error {
			res, err := s.db.ExecContext(ctx, query,
				id, models.TransactionInProcess, proof.ReceiptReference, proof.ExternalTransactionID,
				proof.Platform, proof.AccountID, proof.AccountPassword, proof.AccountServer, now,
			)
			if err != nil {
				return err
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			changed = rows > 0
			return nil
		},
		func(doc *Document) error {
			i := doc.transactionIndex(id)
			if i < 0 {
				return ErrNotFound
			}
			row := &doc.WalletTransactions[i]
			if row.Status.IsTerminal() {
				return nil
			}
			row.Status = models.TransactionInProcess
			row.ReceiptReference = proof.ReceiptReference
			if proof.ExternalTransactionID != "" {
				row.ExternalTransactionID = proof.ExternalTransactionID
			}
			row.Platform = proof.Platform
			row.AccountID = proof.AccountID
			row.AccountPassword = proof.AccountPassword
			row.AccountServer = proof.AccountServer
			row.UpdatedAt = now
			changed = true
			return nil
		},
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to attach proof: %w", err)
	}

	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return tx, changed, nil
}

// SetAdminMessage records an out-of-band admin note on a non-terminal
// transaction without touching its lifecycle status. When the relational
// backend is down and the record is unknown to the JSON store, a
// message-only stub keyed by the transaction id is written so the note is
// overlaid onto the relational row on later reads.
func (s *Store) SetAdminMessage(ctx context.Context, id uuid.UUID, adminID uuid.UUID, message string) (*models.Transaction, bool, error) {
	now := time.Now()
	changed := false

	query := `
		UPDATE wallet_transactions
		SET admin_message = $2, admin_message_status = $3, admin_id = $4, updated_at = $5
		WHERE id = $1 AND status IN ('pending', 'in-process')
	`

	_, err := s.writeThrough(ctx, "set_admin_message",
		func(ctx context.Context) error {
			res, err := s.db.ExecContext(ctx, query, id, message, models.AdminMessagePending, adminID, now)
			if err != nil {
				return err
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			changed = rows > 0
			return nil
		},
		func(doc *Document) error {
			i := doc.transactionIndex(id)
			if i < 0 {
				admin := adminID
				doc.WalletTransactions = append(doc.WalletTransactions, transactionRow{
					ID:                 id,
					AdminID:            &admin,
					AdminMessage:       message,
					AdminMessageStatus: models.AdminMessagePending,
					CreatedAt:          now,
					UpdatedAt:          now,
				})
				changed = true
				return nil
			}
			row := &doc.WalletTransactions[i]
			if row.Status.IsTerminal() {
				return nil
			}
			admin := adminID
			row.AdminMessage = message
			row.AdminMessageStatus = models.AdminMessagePending
			row.AdminID = &admin
			row.UpdatedAt = now
			changed = true
			return nil
		},
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to set admin message: %w", err)
	}

	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return tx, changed, nil
}

// MarkAdminMessageSent flips the message channel to sent after the notifier
// delivered it. The message status is independent of the lifecycle status.
func (s *Store) MarkAdminMessageSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE wallet_transactions
		SET admin_message_status = $2
		WHERE id = $1 AND admin_message_status = $3
	`
	_, err := s.writeThrough(ctx, "mark_admin_message_sent",
		func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, query, id, models.AdminMessageSent, models.AdminMessagePending)
			return err
		},
		func(doc *Document) error {
			if i := doc.transactionIndex(id); i >= 0 && doc.WalletTransactions[i].AdminMessageStatus == models.AdminMessagePending {
				doc.WalletTransactions[i].AdminMessageStatus = models.AdminMessageSent
			}
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to mark admin message sent: %w", err)
	}
	// keep any fallback copy in step with the relational row
	_ = s.file.Update(func(doc *Document) error {
		if i := doc.transactionIndex(id); i >= 0 && doc.WalletTransactions[i].AdminMessageStatus == models.AdminMessagePending {
			doc.WalletTransactions[i].AdminMessageStatus = models.AdminMessageSent
		}
		return nil
	})
	return nil
}

// DecideTransaction applies a terminal admin decision as a single atomic
// unit: the status transition is a conditional update guarded on the current
// status being non-terminal, and on approval the wallet credit executes in
// the same database transaction. Zero affected rows means the transaction
// was already decided; that is reported as an idempotent no-op, never as an
// error, so duplicate admin clicks and retries are harmless.
func (s *Store) DecideTransaction(ctx context.Context, id uuid.UUID, d Decision) (*models.Transaction, *models.User, bool, error) {
	if !d.Status.IsTerminal() {
		return nil, nil, false, fmt.Errorf("%w: decision status must be terminal, got %q", ErrValidation, d.Status)
	}

	// A decision that landed in the JSON document during an outage stays
	// binding after the relational backend recovers: the record is already
	// terminal, so this call is the idempotent no-op case and must never
	// reach the relational guard, which still sees a non-terminal row and
	// would credit the wallet a second time.
	if row := s.fileTransaction(id); row != nil && row.Status.IsTerminal() {
		s.writeBackFallbackDecision(ctx, row)
		cur, err := s.GetTransaction(ctx, id)
		if err != nil {
			return nil, nil, false, err
		}
		return cur, nil, false, nil
	}

	if s.db != nil {
		tx, user, decided, handled, err := s.decideRelational(ctx, id, d)
		if handled {
			return tx, user, decided, err
		}
	}
	return s.decideFallback(id, d)
}

// writeBackFallbackDecision replays a terminal decision held only by the JSON
// document onto the relational row. The guard keeps a relational decision that
// won the race intact. The wallet credit never reached the relational ledger,
// so a replayed approval carries the compensation flag.
func (s *Store) writeBackFallbackDecision(ctx context.Context, row *transactionRow) {
	if s.db == nil {
		return
	}
	creditPending := row.Status == models.TransactionCompleted
	_, err := s.db.ExecContext(ctx, `
		UPDATE wallet_transactions
		SET status = $2, admin_id = $3, rejection_reason = $4, credited_amount = $5,
			credit_pending = $6, updated_at = $7
		WHERE id = $1 AND status IN ('pending', 'in-process')`,
		row.ID, row.Status, row.AdminID, row.RejectionReason, row.CreditedAmount, creditPending, time.Now(),
	)
	if err != nil {
		logger.Warn("failed to write fallback decision back to relational store",
			logger.String("transaction_id", row.ID.String()),
			logger.Err(err),
		)
	}
}

func (s *Store) decideRelational(ctx context.Context, id uuid.UUID, d Decision) (*models.Transaction, *models.User, bool, bool, error) {
	now := time.Now()

	dbtx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		if isBackendUnavailable(err) {
			return nil, nil, false, false, nil
		}
		return nil, nil, false, true, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbtx.Rollback()

	credited := decimal.Zero
	reason := ""
	if d.Status == models.TransactionCompleted {
		credited = d.CreditAmount
	} else {
		reason = d.Reason
	}

	var userID uuid.UUID
	err = dbtx.QueryRowxContext(ctx, `
		UPDATE wallet_transactions
		SET status = $2, admin_id = $3, rejection_reason = $4, credited_amount = $5,
			credit_pending = FALSE, updated_at = $6
		WHERE id = $1 AND status IN ('pending', 'in-process')
		RETURNING user_id`,
		id, d.Status, d.AdminID, reason, credited, now,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the row may live only in the JSON document, created while the
			// relational backend was down; the decision then belongs to the
			// fallback store, not the idempotent no-op path
			if row := s.fileTransaction(id); row != nil && !row.Status.IsTerminal() {
				return nil, nil, false, false, nil
			}
			// already terminal or unknown id; report idempotently with the
			// current record
			cur, gerr := s.GetTransaction(ctx, id)
			if gerr != nil {
				return nil, nil, false, true, gerr
			}
			return cur, nil, false, true, nil
		}
		if isBackendUnavailable(err) {
			return nil, nil, false, false, nil
		}
		return nil, nil, false, true, fmt.Errorf("failed to update transaction status: %w", err)
	}

	var user *models.User
	if d.Status == models.TransactionCompleted {
		user = &models.User{}
		err = dbtx.GetContext(ctx, user, `
			UPDATE users
			SET wallet_balance = wallet_balance + $1, updated_at = $2
			WHERE id = $3
			RETURNING `+userColumns,
			d.CreditAmount, now, userID,
		)
		if err != nil {
			_ = dbtx.Rollback()
			if isBackendUnavailable(err) {
				return nil, nil, false, false, nil
			}
			// The status decision must not be lost, and the failed credit
			// must not be dropped silently: commit the transition with the
			// credit explicitly flagged as pending compensation.
			logger.Error("wallet credit failed, committing decision with credit pending",
				logger.String("transaction_id", id.String()),
				logger.Err(err),
			)
			_, ferr := s.db.ExecContext(ctx, `
				UPDATE wallet_transactions
				SET status = $2, admin_id = $3, credited_amount = $4, credit_pending = TRUE, updated_at = $5
				WHERE id = $1 AND status IN ('pending', 'in-process')`,
				id, d.Status, d.AdminID, d.CreditAmount, now,
			)
			if ferr != nil {
				return nil, nil, false, true, fmt.Errorf("failed to flag pending credit: %w", ferr)
			}
			cur, gerr := s.GetTransaction(ctx, id)
			if gerr != nil {
				return nil, nil, false, true, gerr
			}
			return cur, nil, true, true, nil
		}
	}

	if err := dbtx.Commit(); err != nil {
		if isBackendUnavailable(err) {
			return nil, nil, false, false, nil
		}
		return nil, nil, false, true, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cur, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, nil, false, true, err
	}
	return cur, user, true, true, nil
}

// decideFallback applies the decision to the JSON document under the file
// lock, which serializes it against every other fallback write.
func (s *Store) decideFallback(id uuid.UUID, d Decision) (*models.Transaction, *models.User, bool, error) {
	var (
		tx      *models.Transaction
		user    *models.User
		decided bool
	)
	now := time.Now()

	err := s.file.Update(func(doc *Document) error {
		i := doc.transactionIndex(id)
		if i < 0 {
			return ErrNotFound
		}
		row := &doc.WalletTransactions[i]
		if row.Status.IsTerminal() {
			tx = row.toModel()
			return nil
		}

		admin := d.AdminID
		row.Status = d.Status
		row.AdminID = &admin
		row.UpdatedAt = now
		if d.Status == models.TransactionFailed {
			row.RejectionReason = d.Reason
		} else {
			row.CreditedAmount = d.CreditAmount
			if ui := doc.userIndex(row.UserID); ui >= 0 {
				u := &doc.Users[ui]
				u.WalletBalance = u.WalletBalance.Add(d.CreditAmount)
				u.UpdatedAt = now
				user = u.toModel()
			} else {
				row.CreditPending = true
			}
		}
		decided = true
		tx = row.toModel()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, false, ErrNotFound
		}
		return nil, nil, false, fmt.Errorf("failed to decide transaction in fallback store: %w", err)
	}
	return tx, user, decided, nil
}

func (s *Store) fileTransaction(id uuid.UUID) *transactionRow {
	var fileRow *transactionRow
	if err := s.file.View(func(doc *Document) error {
		if i := doc.transactionIndex(id); i >= 0 {
			row := doc.WalletTransactions[i]
			fileRow = &row
		}
		return nil
	}); err != nil {
		logger.Warn("failed to read fallback document", logger.Err(err))
	}
	return fileRow
}

// overlayTransactionFields copies JSON-only fields onto a relational row so
// callers see one coherent record regardless of which backend accepted the
// most recent write.
func overlayTransactionFields(pgTx *models.Transaction, row *transactionRow) {
	// a terminal decision recorded in the document during an outage wins over
	// a stale non-terminal relational row; status never moves backward
	if row.Status.IsTerminal() && !pgTx.Status.IsTerminal() {
		pgTx.Status = row.Status
		pgTx.AdminID = row.AdminID
		pgTx.RejectionReason = row.RejectionReason
		pgTx.CreditedAmount = row.CreditedAmount
		pgTx.CreditPending = row.CreditPending
		pgTx.UpdatedAt = row.UpdatedAt
	}
	if pgTx.AdminMessage == "" && row.AdminMessage != "" {
		pgTx.AdminMessage = row.AdminMessage
		pgTx.AdminMessageStatus = row.AdminMessageStatus
	}
	if pgTx.RejectionReason == "" && row.RejectionReason != "" {
		pgTx.RejectionReason = row.RejectionReason
	}
	if row.CreditPending {
		pgTx.CreditPending = true
	}
}
