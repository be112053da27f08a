package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SubActivity is a single tracked sub-task of a dossier activity.
type SubActivity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Progress     int    `json:"progress"`
	Observations string `json:"observations"`
}

// Activity is one numbered dossier entry. Progress is always derived from the
// sub-activities, never stored.
type Activity struct {
	Name          string        `json:"name"`
	SubActivities []SubActivity `json:"subActivities"`
}

// Dossier maps a 1-based contiguous sequence of keys to activities.
// Iteration order is key-ascending; sub-activities keep insertion order.
type Dossier map[int]Activity

// DossierActivities are the deliverables every new project is seeded with.
var DossierActivities = []string{
	"RESUMEN EJECUTIVO",
	"MEMORIA DESCRIPTIVA",
	"INFORME DE IMPACTO AMBIENTAL",
	"MEMORIA DE CALCULO",
	"METRADOS",
	"COSTOS Y PRESUPUESTOS",
	"PROGRAMACION DE OBRA",
	"ESPECIFICACIONES TECNICAS",
	"ESTUDIOS BASICOS",
	"PLANOS",
	"ANEXOS",
}

// NewDossier builds the default empty dossier for a freshly created project.
func NewDossier() Dossier {
	d := make(Dossier, len(DossierActivities))
	for i, name := range DossierActivities {
		d[i+1] = Activity{Name: name, SubActivities: []SubActivity{}}
	}
	return d
}

// Keys returns the activity keys in ascending order.
func (d Dossier) Keys() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Progress is the mean of all activity progress values, rounded half-up.
func (d Dossier) Progress() int {
	if len(d) == 0 {
		return 0
	}
	total := 0
	for _, a := range d {
		total += a.Progress()
	}
	return roundHalfUp(float64(total) / float64(len(d)))
}

// Progress is the mean of the sub-activities' progress, rounded half-up,
// 0 for an activity with no sub-activities.
func (a Activity) Progress() int {
	if len(a.SubActivities) == 0 {
		return 0
	}
	total := 0
	for _, s := range a.SubActivities {
		total += s.Progress
	}
	return roundHalfUp(float64(total) / float64(len(a.SubActivities)))
}

// AddActivity appends a new activity at key count+1. Existing keys are not
// reordered. The name is persisted upper-cased.
func (d Dossier) AddActivity(name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, Validationf("el nombre de la actividad es obligatorio")
	}
	key := len(d) + 1
	d[key] = Activity{Name: strings.ToUpper(name), SubActivities: []SubActivity{}}
	return key, nil
}

// RenameActivity replaces only the name field, preserving sub-activities.
func (d Dossier) RenameActivity(key int, name string) error {
	if strings.TrimSpace(name) == "" {
		return Validationf("el nombre de la actividad es obligatorio")
	}
	a, ok := d[key]
	if !ok {
		return Validationf("actividad %d no existe", key)
	}
	a.Name = strings.ToUpper(name)
	d[key] = a
	return nil
}

// DeleteActivity removes the keyed activity and re-keys every survivor to
// 1..N in prior key-ascending order. The original keys are discarded; only
// relative order survives.
func (d Dossier) DeleteActivity(key int) (Dossier, error) {
	if _, ok := d[key]; !ok {
		return nil, Validationf("actividad %d no existe", key)
	}
	next := make(Dossier, len(d)-1)
	i := 0
	for _, k := range d.Keys() {
		if k == key {
			continue
		}
		i++
		next[i] = d[k]
	}
	return next, nil
}

// AddSub appends a sub-activity with a fresh id, taking initial progress and
// observations from the draft. Progress is clamped to [0,100].
func (a *Activity) AddSub(draft SubActivity) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", Validationf("el nombre de la sub-actividad es obligatorio")
	}
	draft.ID = a.nextSubID()
	draft.Progress = clampProgress(draft.Progress)
	a.SubActivities = append(a.SubActivities, draft)
	return draft.ID, nil
}

// RemoveSub deletes the sub-activity with the given id, keeping order.
func (a *Activity) RemoveSub(id string) {
	kept := a.SubActivities[:0]
	for _, s := range a.SubActivities {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	a.SubActivities = kept
}

// SetSubProgress updates a sub-activity's progress, clamping to [0,100].
// Out-of-range values are accepted and clamped rather than rejected.
func (a *Activity) SetSubProgress(id string, progress int) error {
	for i, s := range a.SubActivities {
		if s.ID == id {
			a.SubActivities[i].Progress = clampProgress(progress)
			return nil
		}
	}
	return Validationf("sub-actividad %s no existe", id)
}

// SetSubObservations replaces the observation text verbatim.
func (a *Activity) SetSubObservations(id, text string) error {
	for i, s := range a.SubActivities {
		if s.ID == id {
			a.SubActivities[i].Observations = text
			return nil
		}
	}
	return Validationf("sub-actividad %s no existe", id)
}

// nextSubID derives a timestamp id, bumping until unique within the activity.
func (a *Activity) nextSubID() string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !a.hasSub(id) {
			return id
		}
		n++
	}
}

func (a *Activity) hasSub(id string) bool {
	for _, s := range a.SubActivities {
		if s.ID == id {
			return true
		}
	}
	return false
}

func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundHalfUp(v float64) int {
	return int(v + 0.5)
}
