package user

import (
	"github.com/subplane/subplane/internal/types"
)

type User struct {
	ID      string `db:"id" json:"id"`
	Email   string `db:"email" json:"email"`
	IsAdmin bool   `db:"is_admin" json:"is_admin"`
	types.BaseModel
}
