package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
)

const adminIDHeader = "X-Admin-ID"

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth проверяет наличие корректного заголовка X-Admin-ID и кладет
// ID администратора в контекст запроса. Аутентификацию выполняет
// API-шлюз, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(adminIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Admin-ID")
			return
		}

		adminID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Admin-ID")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает ID администратора из контекста запроса
func GetAdminID(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}
