package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/model"
	"realestate-funnel-be/internal/repository/scope"
	"realestate-funnel-be/internal/repository/specification"
	"realestate-funnel-be/internal/repository/unitofwork"
	"realestate-funnel-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, gormDB.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error)
	require.NoError(t, gormDB.AutoMigrate(model.All()...))

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	sessionID := "sess_it_" + uuid.NewString()
	otherSession := "sess_it_" + uuid.NewString()
	base := time.Now().UTC().Truncate(time.Second)

	t.Run("Anonymous events then lead in one transaction", func(t *testing.T) {
		for i, action := range []string{"view_page", "click_whatsapp"} {
			err := uow.UserBehaviorRepository().Create(ctx, &entity.UserBehavior{
				Id:           uuid.New(),
				SessionId:    sessionID,
				BehaviorType: "page_view",
				Action:       action,
				PageUrl:      "https://aqar.example/ar",
				UserAgent:    "integration",
				CreatedAt:    base.Add(time.Duration(i) * time.Second),
			})
			require.NoError(t, err)
		}

		leadID := uuid.New()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		err := uow.LeadRepository().Create(ctx, &entity.Lead{
			Id:                leadID,
			FullName:          "Integration Lead",
			PreferredLanguage: "en",
			FunnelStage:       entity.FunnelStageNew,
			SessionId:         &sessionID,
			CreatedAt:         base,
		})
		require.NoError(t, err)

		link := &entity.SessionLead{
			SessionId: sessionID,
			LeadId:    leadID.String(),
			Source:    entity.SessionLinkSourceForm,
			BoundAt:   base,
		}
		require.NoError(t, uow.SessionLeadRepository().Link(ctx, link))
		// second link of the same pair is a no-op
		require.NoError(t, uow.SessionLeadRepository().Link(ctx, link))
		require.NoError(t, uow.Commit())

		lead, err := uow.LeadRepository().FindOne(ctx, specification.ByID{ID: leadID})
		require.NoError(t, err)
		require.NotNil(t, lead)
		assert.Equal(t, "Integration Lead", lead.FullName)

		leadStr := leadID.String()
		err = uow.UserBehaviorRepository().Create(ctx, &entity.UserBehavior{
			Id:           uuid.New(),
			SessionId:    sessionID,
			LeadId:       &leadStr,
			BehaviorType: "form_interaction",
			Action:       "submit_form",
			PageUrl:      "https://aqar.example/ar",
			UserAgent:    "integration",
			CreatedAt:    base.Add(5 * time.Second),
		})
		require.NoError(t, err)

		// unrelated session stays out of the timeline
		require.NoError(t, uow.UserBehaviorRepository().Create(ctx, &entity.UserBehavior{
			Id:           uuid.New(),
			SessionId:    otherSession,
			BehaviorType: "page_view",
			Action:       "view_page",
			PageUrl:      "https://aqar.example/en",
			UserAgent:    "integration",
			CreatedAt:    base,
		}))

		timeline, err := uow.UserBehaviorRepository().FindAll(ctx,
			specification.LeadTimeline{LeadID: leadStr},
			specification.WithScopes{scope.OrderByCreatedAsc},
		)
		require.NoError(t, err)
		require.Len(t, timeline, 3)
		assert.Equal(t, "view_page", timeline[0].Action)
		assert.Equal(t, "submit_form", timeline[2].Action)

		links, err := uow.SessionLeadRepository().FindAll(ctx, specification.ByLeadID{LeadID: leadStr})
		require.NoError(t, err)
		assert.Len(t, links, 1)

		// a later lead on the same session keeps its own tagged events
		otherLead := uuid.NewString()
		require.NoError(t, uow.UserBehaviorRepository().Create(ctx, &entity.UserBehavior{
			Id:           uuid.New(),
			SessionId:    sessionID,
			LeadId:       &otherLead,
			BehaviorType: "cta_interaction",
			Action:       "click_whatsapp",
			PageUrl:      "https://aqar.example/ar",
			UserAgent:    "integration",
			CreatedAt:    base.Add(6 * time.Second),
		}))
		timeline, err = uow.UserBehaviorRepository().FindAll(ctx, specification.LeadTimeline{LeadID: leadStr})
		require.NoError(t, err)
		assert.Len(t, timeline, 3)

		require.NoError(t, uow.IntelligenceEventRepository().Create(ctx, &entity.IntelligenceEvent{
			Id:        uuid.New(),
			SessionId: sessionID,
			EventType: "gallery_swipe",
			Metadata:  map[string]any{"photo": 2},
			CreatedAt: base.Add(7 * time.Second),
		}))
		signals, err := uow.IntelligenceEventRepository().FindAll(ctx,
			specification.LeadTimeline{LeadID: leadStr},
			specification.WithScopes{scope.OrderByCreatedAsc},
		)
		require.NoError(t, err)
		require.Len(t, signals, 1)
		assert.Equal(t, "gallery_swipe", signals[0].EventType)
	})

	t.Run("Session events count", func(t *testing.T) {
		count, err := uow.UserBehaviorRepository().Count(ctx, specification.BySessionID{SessionID: sessionID})
		assert.NoError(t, err)
		assert.EqualValues(t, 4, count)

		count, err = uow.UserBehaviorRepository().Count(ctx,
			specification.BySessionID{SessionID: sessionID},
			specification.CreatedBetween{From: base.Add(time.Second), To: base.Add(6 * time.Second)},
		)
		assert.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}
