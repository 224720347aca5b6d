package schedule

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dangolbeeker/streamhive/core"
	"github.com/dangolbeeker/streamhive/internal/testutil"
)

var ctx = context.Background()

func TestRepository(t *testing.T) {

	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	pivot := time.Now()
	userID := "user0000000000000000"
	stageID := "stage000000000000000"

	// :: user-owned, currently in window ::
	current := core.ScheduledStream{
		ID:        "00000000000000000001",
		UserID:    &userID,
		StartTime: pivot.Add(-time.Hour),
		EndTime:   pivot.Add(time.Hour),
		Title:     "now playing",
	}
	assert.NoError(t, db.Create(&current).Error)

	// :: stage-owned, starts in 30 minutes ::
	upcoming := core.ScheduledStream{
		ID:           "00000000000000000002",
		EventStageID: &stageID,
		StartTime:    pivot.Add(30 * time.Minute),
		EndTime:      pivot.Add(90 * time.Minute),
		Title:        "up next",
	}
	assert.NoError(t, db.Create(&upcoming).Error)

	// :: user-owned, already over ::
	expired := core.ScheduledStream{
		ID:        "00000000000000000003",
		UserID:    &userID,
		StartTime: pivot.Add(-3 * time.Hour),
		EndTime:   pivot.Add(-2 * time.Hour),
		Title:     "yesterday",
	}
	assert.NoError(t, db.Create(&expired).Error)

	// :: ListInWindow picks only the entry containing pivot ::
	streams, err := repo.ListInWindow(ctx, pivot)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 1)
		assert.Equal(t, current.ID, streams[0].ID)
	}

	// :: window bounds: start inclusive, end exclusive ::
	streams, err = repo.ListInWindow(ctx, current.StartTime)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 1)
	}
	streams, err = repo.ListInWindow(ctx, current.EndTime)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 0)
	}

	// :: ListExpired picks only the finished entry ::
	streams, err = repo.ListExpired(ctx, pivot)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 1)
		assert.Equal(t, expired.ID, streams[0].ID)
	}

	// :: ListStartingBetween sees both owner kinds ::
	streams, err = repo.ListStartingBetween(ctx, pivot, pivot.Add(time.Hour))
	if assert.NoError(t, err) {
		assert.Len(t, streams, 1)
		assert.Equal(t, upcoming.ID, streams[0].ID)
	}

	// :: ListUserOwnedCreatedBetween skips stage-owned entries ::
	streams, err = repo.ListUserOwnedCreatedBetween(ctx, pivot.Add(-time.Hour), pivot.Add(time.Hour))
	if assert.NoError(t, err) {
		assert.Len(t, streams, 2)
		for _, stream := range streams {
			assert.NotNil(t, stream.UserID)
		}
	}

	// :: ClearVideo drops the blob reference only ::
	expired.VideoBucket = "vods"
	expired.VideoKey = "yesterday.mp4"
	assert.NoError(t, db.Save(&expired).Error)

	err = repo.ClearVideo(ctx, expired.ID)
	assert.NoError(t, err)

	streams, err = repo.ListExpired(ctx, pivot)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 1)
		assert.False(t, streams[0].HasPrerecordedVideo())
		assert.Equal(t, expired.Title, streams[0].Title)
	}

	// :: Delete ::
	err = repo.Delete(ctx, expired.ID)
	assert.NoError(t, err)

	streams, err = repo.ListExpired(ctx, pivot)
	if assert.NoError(t, err) {
		assert.Len(t, streams, 0)
	}
}
