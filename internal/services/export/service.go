package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/domain/models"
)

type taskRepository interface {
	CreateTask(ctx context.Context) (uuid.UUID, error)
	TaskByID(ctx context.Context, taskUUID uuid.UUID) (*models.ExportTask, error)
}

type Service struct {
	log *slog.Logger

	tasks taskRepository
}

func New(log *slog.Logger, tasks taskRepository) *Service {
	return &Service{
		log:   log,
		tasks: tasks,
	}
}

// Enqueue registers a spreadsheet export job and returns its id. The actual
// file generation happens in the background worker.
func (s *Service) Enqueue(ctx context.Context) (uuid.UUID, error) {
	const op = "services.export.Enqueue"

	taskUUID, err := s.tasks.CreateTask(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op, slog.String("task_uuid", taskUUID.String()))

	return taskUUID, nil
}

func (s *Service) Status(ctx context.Context, taskUUID uuid.UUID) (*models.ExportTask, error) {
	const op = "services.export.Status"

	task, err := s.tasks.TaskByID(ctx, taskUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return task, nil
}
