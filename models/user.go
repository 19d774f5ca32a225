package models

import "time"

const (
	PermissionManageUsers   = "gerenciar_usuarios"
	PermissionViewStock     = "visualizar_estoque"
	PermissionChangeStock   = "alterar_estoque"
	PermissionSell          = "realizar_vendas"
	PermissionAddProducts   = "cadastrar_produtos"
	PermissionViewReports   = "visualizar_relatorios"
	PermissionManagePresale = "gerenciar_pre_vendas"
)

var AdminPermissions = []string{
	PermissionManageUsers,
	PermissionViewStock,
	PermissionChangeStock,
	PermissionSell,
	PermissionAddProducts,
	PermissionViewReports,
	PermissionManagePresale,
}

// RolePermissions is what a new user of each role is granted. Unknown roles
// get no permissions.
var RolePermissions = map[string][]string{
	"admin":       AdminPermissions,
	"rh":          {PermissionViewStock, PermissionViewReports},
	"pdv":         {PermissionSell},
	"estoquista":  {PermissionChangeStock},
	"cadastrador": {PermissionAddProducts},
}

type User struct {
	ID          int       `json:"id"`
	Name        string    `json:"nome"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"tipo"`
	Permissions []string  `json:"permissoes"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
