package budgetRepository

const budgetColumns = `
			id,
			user_id,
			category,
			allocated_amount,
			period,
			start_date,
			end_date,
			created_at`

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			category,
			allocated_amount,
			period,
			start_date,
			end_date,
			created_at
		) VALUES (
			:id,
			:user_id,
			:category,
			:allocated_amount,
			:period,
			:start_date,
			:end_date,
			:created_at
		)
	`

	queryGetBudgetByID = `
		SELECT` + budgetColumns + `
		FROM budgets
		WHERE id = :id
	`

	queryGetBudgetsByUserID = `
		SELECT` + budgetColumns + `
		FROM budgets
		WHERE user_id = :user_id
		ORDER BY created_at DESC, id DESC
	`

	queryGetBudgetByUserAndCategory = `
		SELECT` + budgetColumns + `
		FROM budgets
		WHERE user_id = :user_id
			AND category = :category
	`

	queryUpdateAllocation = `
		UPDATE budgets
		SET allocated_amount = :allocated_amount
		WHERE id = :id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id
	`

	queryDeleteBudgetByUserAndCategory = `
		DELETE FROM budgets
		WHERE user_id = :user_id
			AND category = :category
	`
)
