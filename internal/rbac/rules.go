package rbac

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

const (
	PermRoundPlay   = "round:play"
	PermRoundView   = "round:view"
	PermJournalView = "journal:view"
)

// RolePermissions is the default policy. A trailing "*" matches any suffix.
var RolePermissions = map[string][]string{
	RolePlayer: {PermRoundPlay, PermRoundView},
	RoleAdmin:  {"*"},
}
