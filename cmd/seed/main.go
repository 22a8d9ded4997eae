package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/yogaprasetya/akun-api/config"
)

// Seeds the default demo account. The hash is bcrypt("secret"), the
// fixture credential shipped with the very first version of this API.
const (
	seedEmail    = "johndoe@example.com"
	seedUsername = "johndoe"
	seedHash     = "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, username, password, alamat, nomor_hp, disabled)
		VALUES ($1, $2, $3, '', '', FALSE)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, seedEmail, seedUsername, seedHash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s username=%s\n", id, seedEmail, seedUsername)
}
