// CLI tool to create a user with a bcrypt-hashed password and an empty
// profile. Body metrics are filled in later through PATCH /api/profile.
// Usage: go run ./cmd/create-user [-timezone America/New_York]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type newUser struct {
	Username string
	Email    string
	Password string
}

func main() {
	timezone := flag.String("timezone", "", "IANA timezone for the profile (default UTC)")
	flag.Parse()

	if *timezone != "" {
		if _, err := time.LoadLocation(*timezone); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid timezone %q: %v\n", *timezone, err)
			os.Exit(1)
		}
	}

	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "no .env loaded, using environment: %v\n", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	u, err := promptUser(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}
	authToken := uuid.New().String()

	tx, err := conn.Begin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting transaction: %v\n", err)
		os.Exit(1)
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password, auth_token)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.Email, string(hash), authToken,
	).Scan(&userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		os.Exit(1)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_profiles (user_id, timezone) VALUES ($1, $2)`,
		userID, *timezone,
	); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating profile: %v\n", err)
		os.Exit(1)
	}
	if err := tx.Commit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error committing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Username:   %s\n", u.Username)
	fmt.Printf("  Auth Token: %s\n", authToken)
}

// promptUser reads username, email and password lines from r, writing the
// prompts to w. Username and password are required.
func promptUser(r io.Reader, w io.Writer) (newUser, error) {
	reader := bufio.NewReader(r)
	ask := func(label string) string {
		fmt.Fprintf(w, "%s: ", label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	u := newUser{
		Username: ask("Username"),
		Email:    ask("Email"),
		Password: ask("Password"),
	}
	if u.Username == "" {
		return newUser{}, fmt.Errorf("username is required")
	}
	if u.Password == "" {
		return newUser{}, fmt.Errorf("password is required")
	}
	return u, nil
}
