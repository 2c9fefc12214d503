package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/pofit/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(tb, err)
	require.NoError(tb, db.AutoMigrate(&model.Assessment{}))

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newAssessment(name, email string, createdAt time.Time) *model.Assessment {
	return &model.Assessment{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		BlockScores: datatypes.NewJSONType(model.BlockScoreMap{
			"B1": 5, "B2": 1, "B3": 1, "B4": 5, "B5": 1,
			"B6": 1, "B7": 1, "B8": 1, "B9": 1, "B10": 5,
		}),
		IPA:            5,
		IRCC:           1,
		IISE:           1,
		AxisX:          2.5,
		AxisY:          1,
		OverallScore:   44,
		Classification: "Isolated specialist profile",
		CreatedAt:      createdAt,
	}
}
