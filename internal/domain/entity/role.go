package entity

// Capability es una operación permitida del sistema. Los roles se evalúan una
// sola vez contra esta tabla en el gate de autorización, no con comparaciones
// de strings repartidas por los endpoints.
type Capability string

const (
	CapView          Capability = "view"            // consultas y reportes
	CapMutateLedger  Capability = "mutate-ledger"   // add/sell y creación de órdenes
	CapDeleteHistory Capability = "delete-history"  // borrar entradas del journal
	CapManageUsers   Capability = "manage-users"    // crear/listar/borrar usuarios
	CapCreateAnyRole Capability = "create-any-role" // crear usuarios de cualquier rol
)

// roleCapabilities tabla de capacidades por rol.
// superadmin ⊇ admin ⊇ editor ⊇ viewer.
var roleCapabilities = map[string]map[Capability]bool{
	RoleSuperadmin: {
		CapView:          true,
		CapMutateLedger:  true,
		CapDeleteHistory: true,
		CapManageUsers:   true,
		CapCreateAnyRole: true,
	},
	RoleAdmin: {
		CapView:          true,
		CapMutateLedger:  true,
		CapDeleteHistory: true,
		CapManageUsers:   true,
	},
	RoleEditor: {
		CapView:         true,
		CapMutateLedger: true,
	},
	RoleViewer: {
		CapView: true,
	},
}

// ValidRole reporta si el rol existe en la tabla.
func ValidRole(role string) bool {
	_, ok := roleCapabilities[role]
	return ok
}

// RoleHas reporta si el rol tiene la capacidad. Rol desconocido no tiene ninguna.
func RoleHas(role string, cap Capability) bool {
	return roleCapabilities[role][cap]
}

// CanCreateRole reporta si un usuario con rol creator puede crear usuarios con
// rol target: superadmin crea cualquiera; admin solo editor y viewer.
func CanCreateRole(creator, target string) bool {
	if !ValidRole(target) || !RoleHas(creator, CapManageUsers) {
		return false
	}
	if RoleHas(creator, CapCreateAnyRole) {
		return true
	}
	return target == RoleEditor || target == RoleViewer
}
