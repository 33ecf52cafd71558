package employee_test

import (
	"context"
	"regexp"
	"testing"

	"go-geoattend/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return employee.NewRepository(gormDB), mock
}

func TestEmployeeRepository_CompanyScope(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("by id is bounded by company", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE (id = \$1 AND company_id = \$2|company_id = \$1 AND id = \$2)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "company_id"}).
				AddRow(id.String(), "Sari", companyID))

		emp, err := repo.FindByIDAndCompany(ctx, companyID, id.String())

		require.NoError(t, err)
		assert.Equal(t, id, emp.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other company yields record not found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`company_id = $`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByIDAndCompany(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by user is bounded by company", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE (user_id = \$1 AND company_id = \$2|company_id = \$1 AND user_id = \$2)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
				AddRow(uuid.NewString(), "user-1"))

		emp, err := repo.FindByUserIDAndCompany(ctx, companyID, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", *emp.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
