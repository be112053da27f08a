package formatter

import (
	"testing"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonnelReportRows_DeduplicatesAndSorts(t *testing.T) {
	lead := &domain.Person{ID: "l1", Name: "Carlos Mendoza", Role: "Formulador",
		Projects: []string{"Zanja Norte", "Agua Potable"}}
	member := &domain.Person{ID: "m1", Name: "Ana Quispe", Role: "Asistente"}
	idle := &domain.Person{ID: "m2", Name: "Luis Huamán", Role: "Especialista"}

	projects := []*domain.Project{
		// Carlos appears both via his own assignment and the team list.
		{Name: "Agua Potable", Team: []string{"Ana Quispe", "Carlos Mendoza"}},
	}

	rows := PersonnelReportRows(projects, []*domain.Person{lead, member, idle})
	require.Len(t, rows, 4)

	assert.Equal(t, "Agua Potable", rows[0].Project)
	assert.Equal(t, "Agua Potable", rows[1].Project)
	assert.Equal(t, "Sin Asignar", rows[2].Project)
	assert.Equal(t, "Luis Huamán", rows[2].Person.Name)
	assert.Equal(t, "Zanja Norte", rows[3].Project)
}

func TestFormatOrgChart_LeadsWithSubordinatesAndPool(t *testing.T) {
	lead := &domain.Person{ID: "l1", Name: "Carlos Mendoza", Role: "Proyectista II",
		Subordinates: []string{"s1"}}
	sub := &domain.Person{ID: "s1", Name: "Ana Quispe", Role: "Asistente"}
	idle := &domain.Person{ID: "u1", Name: "Rosa Flores", Role: "Especialista"}

	out := FormatOrgChart([]*domain.Person{lead, sub, idle})

	assert.Contains(t, out, "Carlos Mendoza")
	assert.Contains(t, out, "Ana Quispe")
	assert.Contains(t, out, "SIN ASIGNAR")
	assert.Contains(t, out, "Rosa Flores")
}
