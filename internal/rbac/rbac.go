// Package rbac answers "is action X permitted for role R" as pure
// predicates over the four fixed roles.
//
// Each predicate carries its own explicit allow-list. Permissions are
// deliberately NOT ranked: supervisor and branch_owner overlap without
// nesting (supervisor manages products but cannot view reports), so a
// privilege hierarchy would silently grant or deny the wrong capability
// when a new action is added. Unknown role values fail closed: every
// predicate returns false.
package rbac

import "github.com/caffissimo/admin-api/internal/enum"

var (
	accessAllBranches = allow(enum.RoleSuperAdmin)
	manageUsers       = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	manageOffers      = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	manageProducts    = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner, enum.RoleSupervisor)
	manageBranch      = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner, enum.RoleSupervisor)
	viewReports       = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	cancelOrders      = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	submitFridge      = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner, enum.RoleSupervisor)
	viewAttendance    = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	viewAuditLogs     = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner)
	manageSettings    = allow(enum.RoleSuperAdmin)
	createBranch      = allow(enum.RoleSuperAdmin)
	accessAdmin       = allow(enum.RoleSuperAdmin, enum.RoleBranchOwner, enum.RoleSupervisor)
)

func allow(roles ...enum.Role) map[enum.Role]bool {
	m := make(map[enum.Role]bool, len(roles))
	for _, r := range roles {
		m[r] = true
	}
	return m
}

// CanAccessAllBranches reports whether the role may see data across
// every branch (the branch-filter wildcard).
func CanAccessAllBranches(r enum.Role) bool { return accessAllBranches[r] }

func CanManageUsers(r enum.Role) bool    { return manageUsers[r] }
func CanManageOffers(r enum.Role) bool   { return manageOffers[r] }
func CanManageProducts(r enum.Role) bool { return manageProducts[r] }
func CanManageBranch(r enum.Role) bool   { return manageBranch[r] }
func CanViewReports(r enum.Role) bool    { return viewReports[r] }
func CanCancelOrders(r enum.Role) bool   { return cancelOrders[r] }

func CanSubmitFridgeReport(r enum.Role) bool { return submitFridge[r] }
func CanViewAttendance(r enum.Role) bool     { return viewAttendance[r] }
func CanViewAuditLogs(r enum.Role) bool      { return viewAuditLogs[r] }
func CanManageSettings(r enum.Role) bool     { return manageSettings[r] }
func CanCreateBranch(r enum.Role) bool       { return createBranch[r] }

// CanAccessAdmin reports whether the role may enter the admin surface
// at all. Cashiers operate the POS only.
func CanAccessAdmin(r enum.Role) bool { return accessAdmin[r] }
