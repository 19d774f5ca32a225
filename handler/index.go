package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the root path with a service banner.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"message": "Turma do Forno PDV API",
		"path":    r.URL.Path,
		"routes":  []string{
			"/auth/login", "/products", "/processar_venda", "/vendas", "/pontos/:cpf",
			"/verificar_estoque", "/aumentar_estoque", "/cadastro_produto", "/excluir_produto/:id",
			"/adicionar_usuario", "/excluir_usuario/:id",
		},
	})
}
