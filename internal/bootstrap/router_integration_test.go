//go:build integration

package bootstrap

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/config"
	dbConfig "github.com/festy23/ticketing/internal/database/config"
	"github.com/festy23/ticketing/internal/database/database"
	"github.com/festy23/ticketing/internal/database/migrate"
	"github.com/festy23/ticketing/internal/database/pool"
	projectModel "github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/pkg/retry"
)

type PostgresSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *gorm.DB
	app       *testApp
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	t := s.T()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ticketing"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app-pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(s.ctx, "5432/tcp")
	require.NoError(t, err)

	r := retry.PostgresConfig()
	r.InitialDelay = 200 * time.Millisecond
	logger := zap.NewNop().Sugar()

	s.db, err = database.Open(s.ctx, database.Options{
		Config: dbConfig.Config{
			Host: host, User: "app", Password: "app-pass", DBName: "ticketing",
			Port: port.Port(), SSLMode: "disable", TimeZone: "UTC",
		},
		Retry: r,
		Pool:  pool.DefaultPoolConfig(),
	}, logger)
	require.NoError(t, err)

	t.Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(t, migrate.Migrate(s.db, logger))
	require.NoError(t, migrate.Migrate(s.db, logger), "second run must be a no-op")

	verifier, err := auth.NewVerifier(config.AuthConfig{JWTSecret: secret, ClientID: "ticketing-rest-api"})
	require.NoError(t, err)

	s.app = &testApp{t: t, engine: BuildRouter(RouterDeps{
		Config:   config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
		DB:       s.db,
		Logger:   logger,
		Verifier: verifier,
	})}
}

func (s *PostgresSuite) TearDownSuite() {
	_ = database.Close(s.db)
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresSuite) SetupTest() {
	s.app.t = s.T()
	s.Require().NoError(s.db.Exec("TRUNCATE tasks, projects, users").Error)
}

func (s *PostgresSuite) TestProjectLifecycle() {
	t := s.T()
	admin := token(t, "root", auth.RoleAdmin)
	manager := token(t, "mike", auth.RoleManager)
	employee := token(t, "ann", auth.RoleEmployee)

	for _, u := range []map[string]any{
		{"userName": "mike", "firstName": "Mike", "lastName": "Ross", "passWord": "pw", "confirmPassWord": "pw", "role": "Manager"},
		{"userName": "ann", "firstName": "Ann", "lastName": "Lee", "passWord": "pw", "confirmPassWord": "pw", "role": "Employee"},
	} {
		w, env := s.app.call(http.MethodPost, "/api/v1/user", admin, u)
		s.Require().Equal(http.StatusCreated, w.Code, env.Message)
	}

	w, env := s.app.call(http.MethodPost, "/api/v1/project", manager, map[string]any{
		"projectCode": "PRJ1", "startDate": "2025-01-01", "endDate": "2025-03-01",
	})
	s.Require().Equal(http.StatusCreated, w.Code, env.Message)

	w, env = s.app.call(http.MethodGet, "/api/v1/project/PRJ1", manager, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	project := decode[projectModel.ProjectDTO](t, env.Data)
	s.Equal("2025-01-01", project.StartDate)
	s.Equal("2025-03-01", project.EndDate)

	w, env = s.app.call(http.MethodPost, "/api/v1/task", manager, map[string]any{
		"projectCode": "PRJ1", "assignedEmployee": "ann", "taskSubject": "Design",
	})
	s.Require().Equal(http.StatusCreated, w.Code, env.Message)

	w, env = s.app.call(http.MethodGet, "/api/v1/task/employee/pending-tasks", employee, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"taskStatus":"Open"`)

	w, _ = s.app.call(http.MethodPut, "/api/v1/project/manager/complete/PRJ1", manager, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w, env = s.app.call(http.MethodGet, "/api/v1/task/employee/archive", employee, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"taskStatus":"Complete"`)

	w, _ = s.app.call(http.MethodDelete, "/api/v1/project/PRJ1", manager, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var remaining int64
	s.Require().NoError(s.db.Table("tasks").Count(&remaining).Error)
	s.Zero(remaining)
}

func (s *PostgresSuite) TestDuplicateUserIsRejected() {
	admin := token(s.T(), "root", auth.RoleAdmin)
	body := map[string]any{
		"userName": "kate", "firstName": "Kate", "lastName": "Bell", "passWord": "pw", "confirmPassWord": "pw", "role": "Manager",
	}

	w, _ := s.app.call(http.MethodPost, "/api/v1/user", admin, body)
	s.Require().Equal(http.StatusCreated, w.Code)

	w, env := s.app.call(http.MethodPost, "/api/v1/user", admin, body)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("user already exists", env.Message)
}

func (s *PostgresSuite) TestHealth() {
	w, _ := s.app.call(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}
