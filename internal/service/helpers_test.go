package service

import (
	"testing"

	"github.com/dperalta/projecthub/internal/repository"
	"github.com/dperalta/projecthub/internal/testutil"
)

type services struct {
	Projects  ProjectService
	Dossier   DossierService
	Personnel PersonnelService
	Schedule  ScheduleService
	Refresh   RefreshService

	ProjectRepo repository.ProjectRepo
	PersonRepo  repository.PersonRepo
}

func setupServices(t *testing.T) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	personnel := repository.NewSQLitePersonRepo(database)
	refresh := NewRefreshService(projects, personnel)
	return &services{
		Projects:    NewProjectService(projects, refresh),
		Dossier:     NewDossierService(projects, refresh),
		Personnel:   NewPersonnelService(personnel, refresh),
		Schedule:    NewScheduleService(projects, refresh),
		Refresh:     refresh,
		ProjectRepo: projects,
		PersonRepo:  personnel,
	}
}
