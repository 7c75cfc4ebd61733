package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	AvatarKey    *string `db:"avatar_key"`
	Bio          *string `db:"bio"`
	IsActive     bool    `db:"is_active"`
}
