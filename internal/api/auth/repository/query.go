package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (id, username, email, phone, password, created_at)
		VALUES (:id, :username, :email, :phone, :password, :created_at)
	`

	queryGetByID = `
		SELECT id, username, email, phone, password, created_at
		FROM users
		WHERE id = :id
	`

	queryGetByUsername = `
		SELECT id, username, email, phone, password, created_at
		FROM users
		WHERE username = :username
	`

	queryGetByEmail = `
		SELECT id, username, email, phone, password, created_at
		FROM users
		WHERE email = :email
	`
)
