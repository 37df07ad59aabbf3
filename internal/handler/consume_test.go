package handler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/handler"
)

func TestConsumer_SetupRepeatableAcrossSessions(t *testing.T) {
	t.Parallel()

	recordReturn := func(ctx context.Context, username string) error { return nil }
	consumer := handler.NewConsumer(recordReturn, zap.NewExample().Named("test"))

	// The consumer group loop reuses one handler for every session, so a
	// rebalance or broker restart calls Setup again on the same instance.
	require.NotPanics(t, func() {
		require.NoError(t, consumer.Setup(nil))
		require.NoError(t, consumer.Setup(nil))
	})
}
