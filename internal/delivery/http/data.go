package menu_service_http

import (
	"fmt"
	"net/http"

	"github.com/restomenu/menu_service/internal/domain/models"
	httpresponse "github.com/restomenu/menu_service/internal/lib/http"
)

func (h *Handler) seedTestData(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.seedTestData"

	if err := h.seedService.Fill(r.Context()); err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, httpresponse.H{"push_test_data": true})
}

func (h *Handler) createExportTask(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.createExportTask"

	taskUUID, err := h.exportService.Enqueue(r.Context())
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, httpresponse.H{"task_id": taskUUID})
}

// exportTaskStatus reports the task state and, once the worker is done,
// serves the generated file itself.
func (h *Handler) exportTaskStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.exportTaskStatus"

	taskUUID, ok := h.pathUUID(w, r, "task_id")
	if !ok {
		return
	}

	task, err := h.exportService.Status(r.Context(), taskUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	if task.Status != models.ExportStatusDone {
		// task_result stays null until the worker produces the file; a done
		// task answers with the file itself instead.
		h.writeJSON(w, http.StatusOK, httpresponse.H{
			"task_id":     task.ID,
			"task_status": task.Status,
			"task_result": nil,
		})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_data_dump.xlsx", task.ID)))
	http.ServeFile(w, r, task.FilePath)
}
