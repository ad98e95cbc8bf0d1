package identity

import (
	"context"
	"errors"
)

// Role - роль пользователя в системе
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
)

// User - идентифицированный вызывающий
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

var ErrUnknownUser = errors.New("unknown user")

// Provider разрешает идентификатор вызывающего в пользователя системы
type Provider interface {
	Resolve(ctx context.Context, userID string) (User, error)
}

// StaticProvider - провайдер с фиксированной таблицей пользователей
type StaticProvider struct {
	users map[string]User
}

// NewStaticProvider создает провайдер с набором известных пользователей
func NewStaticProvider() *StaticProvider {
	users := map[string]User{
		"netrunnerX":   {ID: "netrunnerX", Role: RoleAdmin},
		"reliefAdmin":  {ID: "reliefAdmin", Role: RoleContributor},
		"volunteer123": {ID: "volunteer123", Role: RoleContributor},
		"aidWorker01":  {ID: "aidWorker01", Role: RoleContributor},
		"cityHelper":   {ID: "cityHelper", Role: RoleContributor},
		"coordinatorZ": {ID: "coordinatorZ", Role: RoleAdmin},
	}
	return &StaticProvider{users: users}
}

func (p *StaticProvider) Resolve(_ context.Context, userID string) (User, error) {
	user, ok := p.users[userID]
	if !ok {
		return User{}, ErrUnknownUser
	}
	return user, nil
}
