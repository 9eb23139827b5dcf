package helpers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// RoleAdmin - роль администратора салона в JWT
const RoleAdmin = "admin"

// GetRole - извлекает роль из контекста JWT токена
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}

// IsAdmin - токен выдан администратору
func IsAdmin(context context.Context) bool {
	role, err := GetRole(context)
	return err == nil && role == RoleAdmin
}

// ClientIP - адрес клиента: первый из X-Forwarded-For, затем X-Real-IP, затем RemoteAddr
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
