package implementation

import (
	"context"
	"testing"
	"time"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLeadRepository_LinkIgnoresDuplicates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionLeadRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "session_leads" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Link(context.Background(), &entity.SessionLead{
		SessionId: "s1",
		LeadId:    "lead-1",
		Source:    entity.SessionLinkSourceEvent,
		BoundAt:   time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionLeadRepository_FindByLead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionLeadRepository(db)

	bound := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "session_leads" WHERE lead_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "lead_id", "source", "bound_at"}).
			AddRow("s1", "lead-1", "form", bound).
			AddRow("s2", "lead-1", "event", bound.Add(time.Hour)))

	links, err := repo.FindAll(context.Background(), specification.ByLeadID{LeadID: "lead-1"})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "form", links[0].Source)
	assert.Equal(t, "s2", links[1].SessionId)
	assert.NoError(t, mock.ExpectationsWereMet())
}
