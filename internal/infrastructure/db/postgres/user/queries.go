package user

const (
	SelectUserByID = `
		SELECT id, username, email, password, first_name, middle_name, last_name, gender, birthdate, phone_number, city, country, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, email, password, first_name, middle_name, last_name, gender, birthdate, phone_number, city, country, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE username = $1
		LIMIT 2
	`
	SelectUserByEmail = `
		SELECT id, username, email, password, first_name, middle_name, last_name, gender, birthdate, phone_number, city, country, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 2
	`
	InsertUser = `
		INSERT INTO users (username, email, password, first_name, middle_name, last_name, gender, birthdate, phone_number, city, country, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
)
