package usecase_test

import (
	"context"

	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func entityPaneID(id string) entity.PaneID {
	return entity.PaneID(id)
}
