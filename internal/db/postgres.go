package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantTableSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			address VARCHAR(500) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// TEAM MEMBERS
	// -------------------------------
	teamTableSQL := `
		CREATE TABLE IF NOT EXISTS team_members (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			email VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, email)
		)
	`
	if _, err := db.Exec(ctx, teamTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ALLERGEN CATALOG (GLOBAL, READ-ONLY)
	// -------------------------------
	allergenTableSQL := `
		CREATE TABLE IF NOT EXISTS allergens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL
		)
	`
	if _, err := db.Exec(ctx, allergenTableSQL); err != nil {
		return err
	}

	seedAllergensSQL := `
		INSERT INTO allergens (name)
		VALUES
			('Celery'), ('Cereals containing gluten'), ('Crustaceans'),
			('Eggs'), ('Fish'), ('Lupin'), ('Milk'), ('Molluscs'),
			('Mustard'), ('Peanuts'), ('Sesame'), ('Soybeans'),
			('Sulphites'), ('Tree nuts')
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := db.Exec(ctx, seedAllergensSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS + ALLERGEN LINKS
	// -------------------------------
	menuItemTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(255) NOT NULL DEFAULT '',
			price NUMERIC(10,2) NULL,
			active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemTableSQL); err != nil {
		return err
	}

	linkTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_item_allergens (
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			allergen_id UUID NOT NULL REFERENCES allergens(id),
			severity INT NOT NULL DEFAULT 1,
			PRIMARY KEY (menu_item_id, allergen_id)
		)
	`
	if _, err := db.Exec(ctx, linkTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// GUEST MEMORIES
	// -------------------------------
	memoryTableSQL := `
		CREATE TABLE IF NOT EXISTS memories (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			guest_name VARCHAR(255) NOT NULL,
			note TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, memoryTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// FEATURE TOGGLES
	// -------------------------------
	toggleTableSQL := `
		CREATE TABLE IF NOT EXISTS feature_toggles (
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			feature VARCHAR(100) NOT NULL,
			enabled BOOLEAN NOT NULL DEFAULT false,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (restaurant_id, feature)
		)
	`
	if _, err := db.Exec(ctx, toggleTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// IMPORT UPLOADS (CSV + OCR PIPELINE)
	// -------------------------------
	importTableSQL := `
		CREATE TABLE IF NOT EXISTS import_uploads (
			id SERIAL PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			source VARCHAR(20) NOT NULL,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'IMAGE_UPLOADED',
			rows JSONB NULL,
			error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, importTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
