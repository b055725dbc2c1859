package transactionRepository

const transactionColumns = `
			id,
			user_id,
			amount,
			category,
			date,
			description,
			payment_method,
			transaction_type,
			created_at,
			updated_at`

// normalizedType reads a missing or unrecognised transaction_type as
// expense, matching makeTransaction.
const normalizedType = `
			CASE WHEN transaction_type = 'income' THEN 'income' ELSE 'expense' END`

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			amount,
			category,
			date,
			description,
			payment_method,
			transaction_type,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:category,
			:date,
			:description,
			:payment_method,
			:transaction_type,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryGetTransactionsByUserAndType = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id
			AND` + normalizedType + ` = :transaction_type
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryGetTransactionsByCategory = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id
			AND category = :category
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryGetTransactionsFromDate = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id
			AND date >= :start_date
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryGetTransactionsBetweenDates = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id
			AND date >= :start_date
			AND date <= :end_date
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			amount = :amount,
			category = :category,
			date = :date,
			description = :description,
			payment_method = :payment_method,
			transaction_type = :transaction_type,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`

	// Sums are added in Go with pkg/money; the rows carry raw amounts.
	querySumByType = `
		SELECT amount
		FROM transactions
		WHERE user_id = :user_id
			AND` + normalizedType + ` = :transaction_type
	`

	querySumByCategory = `
		SELECT
			category,
			amount
		FROM transactions
		WHERE user_id = :user_id
			AND` + normalizedType + ` = :transaction_type
	`

	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			color,
			created_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:color,
			:created_at
		)
	`

	queryGetCategoriesByUserID = `
		SELECT
			id,
			user_id,
			name,
			color,
			created_at
		FROM categories
		WHERE user_id = :user_id
		ORDER BY name ASC
	`
)
