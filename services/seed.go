package services

import (
	"context"
	"fmt"
	"log"

	"pdv/models"
	"pdv/utils"

	"github.com/shopspring/decimal"
)

type UserSeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u *models.User) error
}

type ProductSeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *models.Product) error
}

type seedUser struct {
	name, email, password string
}

var defaultUsers = []seedUser{
	{"Pietro", "pietro@admin.turma.do.forno", "pietro123"},
	{"Francesco", "francesco@admin.turma.do.forno", "francesco123"},
}

var defaultProducts = []models.Product{
	{Name: "Pão Francês", Price: decimal.RequireFromString("0.50"), Stock: 50, Category: "Pães", MinimumStock: 10},
	{Name: "Bolo de Chocolate", Price: decimal.RequireFromString("15.00"), Stock: 8, Category: "Bolos", MinimumStock: 5},
	{Name: "Café", Price: decimal.RequireFromString("5.00"), Stock: 30, Category: "Bebidas", MinimumStock: 15},
	{Name: "Suco Natural", Price: decimal.RequireFromString("7.00"), Stock: 25, Category: "Bebidas", MinimumStock: 10},
	{Name: "Croissant", Price: decimal.RequireFromString("4.50"), Stock: 20, Category: "Salgados", MinimumStock: 8},
}

// SeedDefaults fills empty user and product tables with the initial admins and
// catalog. Tables that already hold rows are left alone.
func SeedDefaults(ctx context.Context, users UserSeeder, products ProductSeeder) error {
	n, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n == 0 {
		for _, su := range defaultUsers {
			hash, err := utils.HashPassword(su.password)
			if err != nil {
				return err
			}
			u := &models.User{
				Name:        su.name,
				Email:       su.email,
				Password:    hash,
				Role:        "admin",
				Permissions: models.AdminPermissions,
			}
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", su.email, err)
			}
		}
		log.Printf("Seeded %d admin users, change their passwords", len(defaultUsers))
	}

	n, err = products.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n == 0 {
		for _, p := range defaultProducts {
			p := p
			if err := products.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.Name, err)
			}
		}
		log.Printf("Seeded %d products", len(defaultProducts))
	}
	return nil
}
