package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
    account_number TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    date_of_birth  TEXT NOT NULL,
    phone          TEXT NOT NULL,
    email          TEXT NOT NULL,
    otp            TEXT NOT NULL,
    pin_hash       BYTEA
);

CREATE TABLE IF NOT EXISTS faq_entries (
    id       SERIAL PRIMARY KEY,
    language TEXT NOT NULL,
    category TEXT NOT NULL,
    question TEXT NOT NULL,
    answer   TEXT NOT NULL
);`

var clients = [][]interface{}{
	{"040-1234567-01", "Alice Uwase", "01-02-1990", "250788123456", "alice@example.com", "482913"},
	{"040-7654321-02", "Jean Bosco", "11-30-1985", "250788654321", "jean@example.com", "119275"},
	{"040-9988776-03", "Claudine Mukamana", "07-15-1992", "250788998877", "claudine@example.com", "736250"},
}

var faqEntries = [][]interface{}{
	{"English", "Cards", "My card is blocked", "Visit any BK branch with your ID to unblock your card."},
	{"English", "Mobile Banking", "Mobile app not working", "Reinstall the BK app and log in again. If the problem persists call (+250) 788 143 000."},
	{"English", "Accounts", "How do I open an account", "Bring your national ID to any BK branch, or apply online at bk.rw."},
	{"French", "Cartes", "Ma carte est bloquée", "Rendez-vous dans une agence BK avec votre pièce d'identité."},
	{"French", "Comptes", "Comment ouvrir un compte", "Apportez votre carte d'identité dans une agence BK, ou faites la demande sur bk.rw."},
	{"Kinyarwanda", "Konti", "Sinabona amafaranga yanjye", "Hamagara (+250) 788 143 000 cyangwa usure ishami rya BK."},
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	var count int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		log.Fatalf("count clients: %v", err)
	}
	if count > 0 {
		log.Printf("clients table already has %d rows, skipping", count)
		return
	}

	copied, err := conn.CopyFrom(ctx,
		pgx.Identifier{"clients"},
		[]string{"account_number", "name", "date_of_birth", "phone", "email", "otp"},
		pgx.CopyFromRows(clients))
	if err != nil {
		log.Fatalf("seed clients: %v", err)
	}
	log.Printf("seeded %d clients", copied)

	copied, err = conn.CopyFrom(ctx,
		pgx.Identifier{"faq_entries"},
		[]string{"language", "category", "question", "answer"},
		pgx.CopyFromRows(faqEntries))
	if err != nil {
		log.Fatalf("seed faq: %v", err)
	}
	log.Printf("seeded %d faq entries", copied)
}
