package app

import (
	"context"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/config"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewServices_SharedBackend(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageDriver: storage.DriverFile, DataDir: t.TempDir()}

	services, err := NewServices(ctx, cfg, zap.NewNop())
	require.NoError(t, err)

	created, err := services.Catalog.CreateService(ctx, service.ServiceInput{Name: "Haircut", Price: 1500, Duration: 30})
	require.NoError(t, err)
	subject, err := services.Study.CreateSubject(ctx, service.StudySubjectInput{Name: "Math"})
	require.NoError(t, err)
	instructor, err := services.Courses.CreateInstructor(ctx, service.InstructorInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	services.Close()

	// Второй экземпляр видит данные первого
	reopened, err := NewServices(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Catalog.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", got.Name)

	_, err = reopened.Study.GetSubject(ctx, subject.ID)
	assert.NoError(t, err)
	_, err = reopened.Courses.GetInstructor(ctx, instructor.ID)
	assert.NoError(t, err)
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	_, err := OpenBackend(context.Background(), &config.Config{StorageDriver: "sqlite"}, zap.NewNop())
	assert.Error(t, err)
}
