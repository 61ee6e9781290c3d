// Package main 建库与初始租户引导
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"inkwell-cms-api/internal/application/auth"
	"inkwell-cms-api/internal/config"
	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/infrastructure/persistence/postgres"
)

func main() {
	_ = godotenv.Load()

	var (
		subdomain  = flag.String("subdomain", "demo", "subdomain of the tenant to create")
		tenantName = flag.String("name", "Demo Site", "display name of the tenant")
		adminEmail = flag.String("admin-email", "", "optional admin user email to seed")
	)
	flag.Parse()

	fmt.Println("Starting bootstrap...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pgClient.Close()

	// 1. 建表
	fmt.Println("Running migrations...")
	if err := pgClient.AutoMigrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// 2. 建初始租户（幂等）
	tenantRepo := postgres.NewTenantRepository(pgClient)
	tenant, err := tenantRepo.GetBySubdomain(ctx, *subdomain)
	if err != nil {
		log.Fatalf("failed to check tenant: %v", err)
	}
	if tenant == nil {
		tenant = entity.NewTenant(*subdomain, *tenantName)
		if err := tenantRepo.Create(ctx, tenant); err != nil {
			log.Fatalf("failed to create tenant: %v", err)
		}
		fmt.Printf("Tenant %q created with ID %s\n", *subdomain, tenant.ID)
	} else {
		fmt.Printf("Tenant %q already exists with ID %s\n", *subdomain, tenant.ID)
	}

	// 3. 可选的管理员账号，口令从 BOOTSTRAP_ADMIN_PASSWORD 读
	if *adminEmail != "" {
		userRepo := postgres.NewUserRepository(pgClient)
		existing, err := userRepo.GetByEmail(ctx, tenant.ID, *adminEmail)
		if err != nil {
			log.Fatalf("failed to check admin user: %v", err)
		}
		if existing == nil {
			password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
			if password == "" {
				log.Fatal("BOOTSTRAP_ADMIN_PASSWORD must be set when seeding an admin user")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				log.Fatalf("failed to hash password: %v", err)
			}
			user := entity.NewUser(tenant.ID, *adminEmail, hash, entity.RoleAdmin)
			if err := userRepo.Create(ctx, user); err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			fmt.Printf("Admin user %s created\n", *adminEmail)
		} else {
			fmt.Printf("Admin user %s already exists\n", *adminEmail)
		}
	}

	fmt.Println("Bootstrap complete.")
}
