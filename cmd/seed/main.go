package main

import (
	"context"
	"log"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/model"
	"jobboard/internal/repository"

	"gorm.io/gorm"
)

const seedPassword = "password123"

type seedUser struct {
	username string
	role     model.Role
}

type seedVacancy struct {
	company  string
	title    string
	category string
	tags     string
	location string
	contract string
}

var seedUsers = []seedUser{
	{username: "acme", role: model.RoleCompany},
	{username: "initech", role: model.RoleCompany},
	{username: "jane", role: model.RoleCandidate},
}

var seedVacancies = []seedVacancy{
	{company: "acme", title: "Backend Engineer", category: "Engineering", tags: "go,mysql", location: "Berlin", contract: "full-time"},
	{company: "acme", title: "Frontend Engineer", category: "Engineering", tags: "js", location: "Remote", contract: "full-time"},
	{company: "initech", title: "Office Manager", category: "Operations", tags: "", location: "Madrid", contract: "part-time"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Vacancy{}, &model.Application{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	vacancyRepo := repository.NewVacancyRepository(gormDB)

	companies := map[string]*model.User{}
	for _, su := range seedUsers {
		user, err := ensureUser(ctx, userRepo, su)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.username, err)
		}
		if user.Role == model.RoleCompany {
			companies[su.username] = user
		}
	}
	log.Printf("Seeded %d users (password: %q)", len(seedUsers), seedPassword)

	created := 0
	for _, sv := range seedVacancies {
		company, ok := companies[sv.company]
		if !ok {
			log.Printf("Skipping vacancy %q: no company %q", sv.title, sv.company)
			continue
		}
		if err := vacancyRepo.Create(ctx, &model.Vacancy{
			Title:       sv.title,
			Description: sv.title + " at " + sv.company,
			Category:    sv.category,
			Tags:        sv.tags,
			Location:    sv.location,
			Contract:    sv.contract,
			CompanyID:   company.ID,
		}); err != nil {
			log.Fatalf("Failed to seed vacancy %q: %v", sv.title, err)
		}
		created++
	}
	log.Printf("Seeded %d vacancies", created)
}

func ensureUser(ctx context.Context, repo repository.UserRepository, su seedUser) (*model.User, error) {
	existing, err := repo.FindByUsername(ctx, su.username)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}
	username := su.username
	user := &model.User{
		Username:     &username,
		PasswordHash: &hash,
		Role:         su.role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
