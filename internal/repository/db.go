package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL
)

// Параметры пула соединений.
const (
	poolMaxOpen     = 25
	poolMaxIdle     = 10
	poolMaxLifetime = 30 * time.Minute
	poolMaxIdleTime = 5 * time.Minute

	// Ограничение на первую проверку соединения, если у ctx нет своего дедлайна.
	connectTimeout = 5 * time.Second
)

// NewPostgresDB открывает пул к PostgreSQL по dsn и дожидается ответа сервера.
// При неудачной проверке пул закрывается.
func NewPostgresDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, connectTimeout)
		defer cancel()
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}
	db.SetMaxOpenConns(poolMaxOpen)
	db.SetMaxIdleConns(poolMaxIdle)
	db.SetConnMaxLifetime(poolMaxLifetime)
	db.SetConnMaxIdleTime(poolMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("БД недоступна: %w", err)
	}

	log.Println("[DB] Соединение с PostgreSQL установлено")
	return db, nil
}
