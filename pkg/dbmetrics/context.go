package dbmetrics

import "context"

// ctxKey приватный тип ключа контекста
type ctxKey struct{}

// txKey ключ, под которым в контексте хранится активная транзакция
var txKey = ctxKey{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории, получившие такой контекст, выполняют запросы внутри транзакции.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext извлекает транзакцию из контекста, если она там есть
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey).(TxExecutor)
	return tx, ok
}

// GetExecutor возвращает экзекьютор для выполнения запроса:
// транзакцию из контекста, если она начата, иначе fallback (обычно *sql.DB)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}
