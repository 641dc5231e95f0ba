package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

type exportRepository interface {
	ClaimTask(ctx context.Context) (*models.ExportTask, error)
	FinishTask(ctx context.Context, taskUUID uuid.UUID, filePath string) error
	FailTask(ctx context.Context, taskUUID uuid.UUID) error
	Dump(ctx context.Context) ([]models.MenuExport, error)
}

// Worker turns queued export tasks into xlsx files. It polls the task table,
// claims one task at a time and writes the full hierarchy snapshot to the
// media directory.
type Worker struct {
	log *slog.Logger

	repo         exportRepository
	mediaPath    string
	pollInterval time.Duration
}

func NewWorker(log *slog.Logger, repo exportRepository, mediaPath string, pollInterval time.Duration) *Worker {
	return &Worker{
		log:          log,
		repo:         repo,
		mediaPath:    mediaPath,
		pollInterval: pollInterval,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	const op = "exporter.Run"

	if err := os.MkdirAll(w.mediaPath, 0o755); err != nil {
		return fmt.Errorf("%s: create media dir: %w", op, err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.processNext(ctx); err != nil {
				w.log.Error(op, slog.String("error", err.Error()))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) processNext(ctx context.Context) error {
	const op = "exporter.processNext"

	task, err := w.repo.ClaimTask(ctx)
	if err != nil {
		return fmt.Errorf("%s: claim task: %w", op, err)
	}
	if task == nil {
		return nil
	}

	w.log.InfoContext(ctx, op, slog.String("task_uuid", task.ID.String()))

	filePath, err := w.export(ctx, task.ID)
	if err != nil {
		if failErr := w.repo.FailTask(ctx, task.ID); failErr != nil {
			w.log.Error(op, slog.String("error", failErr.Error()))
		}
		return fmt.Errorf("%s: export: %w", op, err)
	}

	if err = w.repo.FinishTask(ctx, task.ID, filePath); err != nil {
		return fmt.Errorf("%s: finish task: %w", op, err)
	}

	return nil
}

func (w *Worker) export(ctx context.Context, taskUUID uuid.UUID) (string, error) {
	menus, err := w.repo.Dump(ctx)
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range buildRows(menus) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err = file.SetSheetRow(sheet, cell, &row); err != nil {
			return "", err
		}
	}

	filePath := filepath.Join(w.mediaPath, fmt.Sprintf("%s_data_dump.xlsx", taskUUID))
	if err = file.SaveAs(filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

// buildRows lays the hierarchy out the way the spreadsheet consumers expect:
// menus in the first column, submenus shifted by one, dishes by two, each
// level numbered from 1 within its parent.
func buildRows(menus []models.MenuExport) [][]interface{} {
	var rows [][]interface{}

	for menuNum, menu := range menus {
		rows = append(rows, []interface{}{menuNum + 1, menu.Title, menu.Description})

		for submenuNum, submenu := range menu.Submenus {
			rows = append(rows, []interface{}{"", submenuNum + 1, submenu.Title, submenu.Description})

			for dishNum, dish := range submenu.Dishes {
				rows = append(rows, []interface{}{
					"", "", dishNum + 1, dish.Title, dish.Description, dish.Price.String(),
				})
			}
		}
	}

	return rows
}
