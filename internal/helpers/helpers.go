package helpers

import (
	"context"
	"fmt"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUsername - извлекает имя пользователя из контекста JWT токена
func GetUsername(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	login, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return login, nil
}

// GetRole - извлекает роль пользователя из контекста JWT токена
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}
