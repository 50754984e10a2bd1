package auth

import (
	"crypto/subtle"
	"net/http"
)

// AdminHeader - заголовок, в котором клиент передает общий пароль администратора
const AdminHeader = "x-admin-pwd"

// SecretMatches - сравнение за постоянное время; пустой секрет не совпадает ни с чем
func SecretMatches(given, secret string) bool {
	if secret == "" || given == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(secret)) == 1
}

// SharedSecretMiddlewareInit - пропускает запрос дальше, только если заголовок прошел check.
// Иначе отвечает unauthorized и следующий обработчик не вызывается
func SharedSecretMiddlewareInit(check func(string) bool, unauthorized http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !check(r.Header.Get(AdminHeader)) {
				unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
