package domain

import "strings"

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "En curso"
	ProjectStopped    ProjectStatus = "Detenido"
	ProjectFinished   ProjectStatus = "Finalizado"
)

// BudgetCategories is the canonical set of budget map keys, in display order.
var BudgetCategories = []string{"personal", "materiales", "servicios", "otros"}

type CostCategory string

const (
	CostPersonnel CostCategory = "personnel"
	CostGoods     CostCategory = "goods"
	CostServices  CostCategory = "services"
)

// LineItemKind distinguishes the two structurally identical line item
// collections of a cost schedule.
type LineItemKind string

const (
	ItemMaterial LineItemKind = "material"
	ItemService  LineItemKind = "service"
)

const (
	RoleFormulador  = "Formulador"
	RoleAsistente   = "Asistente"
	RoleEspecialist = "Especialista"

	proyectistaPrefix = "Proyectista"
)

// LeadRoles is the role vocabulary offered for new leads.
var LeadRoles = []string{"Proyectista I", "Proyectista II", "Proyectista III"}

// IsLeadRole reports whether the role string qualifies a person to hold
// project assignments and subordinates.
func IsLeadRole(role string) bool {
	return role == RoleFormulador || strings.HasPrefix(role, proyectistaPrefix)
}

// RoleKind is the explicit classification of a person within the org chart,
// computed once per read instead of re-deriving from role strings at each use.
type RoleKind string

const (
	KindLead        RoleKind = "lead"
	KindSubordinate RoleKind = "subordinate"
	KindUnassigned  RoleKind = "unassigned"
)
