package main

import (
	"fmt"
	"io"
	"time"

	"pdv/config"
	"pdv/repositories"
	"pdv/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	apiURL   string
	token    string
	terminal string
}

var rootCmd = &cobra.Command{
	Use:           "pdv",
	Short:         "Turma do Forno point-of-sale terminal",
	Long:          "pdv keeps the cart of a PDV station and submits sales to the PDV API.",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	_ = godotenv.Load()
	cfg := config.Load()

	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.apiURL, "api", cfg.APIURL, "PDV API base URL (PDV_API_URL)")
	f.StringVar(&rootFlags.token, "token", cfg.APIToken, "bearer token from /auth/login (PDV_TOKEN)")
	f.StringVar(&rootFlags.terminal, "terminal", cfg.TerminalID, "terminal id; scopes the cart key (PDV_TERMINAL)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(incCmd)
	rootCmd.AddCommand(decCmd)
	rootCmd.AddCommand(qtyCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(productsCmd)
}

// terminal is everything one command needs to drive the cart.
type terminal struct {
	cart     *services.CartManager
	client   *services.HTTPSaleClient
	customer *cpfField
	redis    *redis.Client
}

func (t *terminal) Close() error {
	return t.redis.Close()
}

func openTerminal(out io.Writer) (*terminal, error) {
	cfg := config.Load()

	client, err := config.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	repo := repositories.NewRedisCartRepository(client, repositories.CartKey(cfg.CartKey, rootFlags.terminal), cfg.SaleTimeout+5*time.Second)
	sales := services.NewHTTPSaleClient(rootFlags.apiURL, rootFlags.token, cfg.SaleTimeout)
	customer := &cpfField{}

	cart := services.NewCartManager(repo, sales, customer, &printNotifier{out: out})
	cart.Subscribe(&tableRenderer{out: out})

	return &terminal{cart: cart, client: sales, customer: customer, redis: client}, nil
}
