package implementation

import (
	"context"
	"testing"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeadRepository(db)

	id := uuid.New()
	email := "buyer@example.com"
	lead := &entity.Lead{
		FullName:          "Khalid",
		Email:             &email,
		PreferredLanguage: "en",
		FunnelStage:       entity.FunnelStageNew,
		Extra:             map[string]any{"utm_source": "newsletter"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "leads"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), lead))
	assert.Equal(t, id, lead.Id)
	assert.Equal(t, "newsletter", lead.Extra["utm_source"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepository_FindOneMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeadRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "leads" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	lead, err := repo.FindOne(context.Background(), specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, lead)
	assert.NoError(t, mock.ExpectationsWereMet())
}
