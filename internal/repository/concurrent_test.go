package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/testutil"
)

// A watch loop reading the saved location while a refresh writes it must
// always see a complete row.
func TestConcurrentAccess_LocationReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	repo := NewSQLiteLocationRepo(database)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testutil.NewTestLocation()))

	var wg sync.WaitGroup
	errs := make(chan error, 40)

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			loc := testutil.NewTestLocation(testutil.WithCity(fmt.Sprintf("City %d", i)))
			if err := repo.Save(ctx, loc); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			got, err := repo.Get(ctx)
			if err != nil {
				errs <- err
				return
			}
			if got.TimeZone != "Asia/Riyadh" {
				errs <- fmt.Errorf("torn row: %+v", got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
