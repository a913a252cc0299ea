package tasks

import (
	"context"
	"encoding/json"
	"time"

	"arca/internal/config"
	"arca/internal/events"
	"arca/internal/models"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

var (
	cfg, _ = config.Load()
)

// TaskHandler handles task processing with improved error handling and logging
type TaskHandler struct {
	db         *gorm.DB
	logger     *logger.Logger
	taskClient *TaskClient
	journals   *services.JournalService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		db:         db,
		logger:     logger.New("task_handler"),
		taskClient: NewTaskClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB),
		journals:   services.NewJournalService(db),
	}
}

// ModerationNotifyPayload describes a moderation decision to notify the
// submitter about.
type ModerationNotifyPayload struct {
	Kind   string `json:"kind"` // article or video
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// SubscribeModerationEvents enqueues a notification task whenever an
// article or video is approved or rejected.
func (h *TaskHandler) SubscribeModerationEvents() {
	events.On("article.approved", func(data interface{}) {
		if a, ok := data.(*models.Article); ok {
			h.enqueueNotify("article", a.ID, a.UserID, string(a.Status))
		}
	})
	events.On("article.rejected", func(data interface{}) {
		if a, ok := data.(*models.Article); ok {
			h.enqueueNotify("article", a.ID, a.UserID, string(a.Status))
		}
	})
	events.On("video.approved", func(data interface{}) {
		if v, ok := data.(*models.Video); ok {
			h.enqueueNotify("video", v.ID, v.UserID, string(v.Status))
		}
	})
	events.On("video.rejected", func(data interface{}) {
		if v, ok := data.(*models.Video); ok {
			h.enqueueNotify("video", v.ID, v.UserID, string(v.Status))
		}
	})
}

func (h *TaskHandler) enqueueNotify(kind, id, userID, status string) {
	err := h.taskClient.EnqueueModerationNotify(ModerationNotifyPayload{
		Kind:   kind,
		ID:     id,
		UserID: userID,
		Status: status,
	})
	if err != nil {
		h.logger.Warn("failed to enqueue moderation notification for %s %s: %v", kind, id, err)
	}
}

// HandleModerationNotify tells the submitter about a moderation decision.
// Delivery is a log line for now; the payload carries everything a mail
// or push channel would need.
func (h *TaskHandler) HandleModerationNotify(ctx context.Context, t *asynq.Task) error {
	var payload ModerationNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return h.logger.Error("invalid moderation notify payload", err)
	}

	var user models.User
	if err := h.db.WithContext(ctx).
		Where("id = ? AND is_deleted = false", payload.UserID).First(&user).Error; err != nil {
		// Submitter is gone; nothing to notify.
		h.logger.Warn("skipping moderation notification, user %s not found", payload.UserID)
		return nil
	}

	h.logger.Success("notified %s: %s %s is now %s", user.Email, payload.Kind, payload.ID, payload.Status)
	return nil
}

// HandleJournalClose closes every open journal whose closing date has
// passed. Runs periodically; a run that closes nothing is normal.
func (h *TaskHandler) HandleJournalClose(ctx context.Context, t *asynq.Task) error {
	closed, err := h.journals.CloseExpired(ctx, time.Now())
	if err != nil {
		return h.logger.Error("failed to close expired journals", err)
	}

	if closed > 0 {
		h.logger.Success("journal close run finished, closed %d journals", closed)
	}
	return nil
}
