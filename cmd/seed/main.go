package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"calldex_backend/internal/auth/password"
	"calldex_backend/platform/config"
	"calldex_backend/platform/db"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/phone"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const seedPassword = "password123"

var firstNames = []string{
	"Alice", "Albert", "Amelia", "Bob", "Bram", "Carla", "Carlalice", "Daan",
	"Emma", "Finn", "Grace", "Hassan", "Iris", "Jack", "Kim", "Lars",
	"Maria", "Noor", "Omar", "Priya", "Quinn", "Rosa", "Sam", "Tess",
}

var lastNames = []string{
	"Anderson", "Bakker", "Chen", "De Vries", "Evans", "Fischer", "Garcia",
	"Hendriks", "Ivanov", "Jansen", "Khan", "Lopez", "Meijer", "Nguyen",
	"Olsen", "Peters", "Rossi", "Smit", "Tanaka", "Visser",
}

func main() {
	var (
		userCount       = flag.Int("users", 50, "number of users to create")
		contactsPerUser = flag.Int("contacts", 8, "average contacts per user")
		spamReports     = flag.Int("spam", 120, "number of spam reports to create")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("seeding database", "users", *userCount, "contactsPerUser", *contactsPerUser, "spamReports", *spamReports)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	passwordHash, err := password.Hash(seedPassword)
	if err != nil {
		log.Error("failed to hash seed password", "error", err)
		panic("failed to hash seed password: " + err.Error())
	}

	userIDs, phoneNumbers, err := seedUsers(ctx, pool, *userCount, passwordHash)
	if err != nil {
		log.Error("failed to seed users", "error", err)
		panic("failed to seed users: " + err.Error())
	}
	log.Info("users created", "count", len(userIDs))

	contactTotal, err := seedContacts(ctx, pool, userIDs, phoneNumbers, *contactsPerUser)
	if err != nil {
		log.Error("failed to seed contacts", "error", err)
		panic("failed to seed contacts: " + err.Error())
	}
	log.Info("contacts created", "count", contactTotal)

	spamTotal, err := seedSpamReports(ctx, pool, userIDs, phoneNumbers, *spamReports)
	if err != nil {
		log.Error("failed to seed spam reports", "error", err)
		panic("failed to seed spam reports: " + err.Error())
	}
	log.Info("spam reports created", "count", spamTotal)

	log.Info("seeding complete", "password", seedPassword)
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, count int, passwordHash string) ([]uuid.UUID, []string, error) {
	ids := make([]uuid.UUID, 0, count)
	numbers := make([]string, 0, count)

	for i := 0; i < count; i++ {
		name := randomName()
		number := randomPhoneNumber()

		var email *string
		if rand.Intn(100) < 70 {
			addr := fmt.Sprintf("%s%d@example.com", strings.ToLower(strings.Fields(name)[0]), i)
			email = &addr
		}

		var id uuid.UUID
		err := pool.QueryRow(ctx,
			`INSERT INTO users (name, phone_number, email, password_hash)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (phone_number) DO NOTHING
			 RETURNING id`,
			name, number, email, passwordHash,
		).Scan(&id)
		if err != nil {
			// Phone number collision; skip this one.
			continue
		}

		ids = append(ids, id)
		numbers = append(numbers, number)
	}

	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("no users created")
	}
	return ids, numbers, nil
}

func seedContacts(ctx context.Context, pool *pgxpool.Pool, userIDs []uuid.UUID, knownNumbers []string, perUser int) (int, error) {
	total := 0
	for _, userID := range userIDs {
		n := 1 + rand.Intn(perUser*2)
		for i := 0; i < n; i++ {
			name := randomName()

			// Most contacts point at unregistered numbers; a share reference
			// registered users so directory lookups show both kinds.
			number := randomPhoneNumber()
			if rand.Intn(100) < 40 {
				number = knownNumbers[rand.Intn(len(knownNumbers))]
			}

			tag, err := pool.Exec(ctx,
				`INSERT INTO contacts (user_id, name, phone_number)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (user_id, phone_number) DO NOTHING`,
				userID, name, number,
			)
			if err != nil {
				return total, fmt.Errorf("insert contact: %w", err)
			}
			total += int(tag.RowsAffected())
		}
	}
	return total, nil
}

func seedSpamReports(ctx context.Context, pool *pgxpool.Pool, userIDs []uuid.UUID, knownNumbers []string, count int) (int, error) {
	// A small pool of repeat offenders so some numbers cross the spam line.
	offenders := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		offenders = append(offenders, randomPhoneNumber())
	}

	total := 0
	for i := 0; i < count; i++ {
		reporter := userIDs[rand.Intn(len(userIDs))]

		number := offenders[rand.Intn(len(offenders))]
		if rand.Intn(100) < 25 {
			number = knownNumbers[rand.Intn(len(knownNumbers))]
		}

		tag, err := pool.Exec(ctx,
			`INSERT INTO spam_reports (phone_number, reported_by)
			 VALUES ($1, $2)
			 ON CONFLICT (phone_number, reported_by) DO NOTHING`,
			number, reporter,
		)
		if err != nil {
			return total, fmt.Errorf("insert spam report: %w", err)
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

func randomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

// randomPhoneNumber produces a 7-15 digit number; roughly a third come out
// in international form the way real clients submit them.
func randomPhoneNumber() string {
	digits := 7 + rand.Intn(9)
	var b strings.Builder
	b.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}

	number := b.String()
	if rand.Intn(100) < 30 {
		return phone.NormalizeE164("+" + number)
	}
	return number
}
