package quests

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/dto"
	"github.com/GlebRadaev/valorhood/internal/handlers/respond"
	"github.com/GlebRadaev/valorhood/pkg/auth"
	"github.com/GlebRadaev/valorhood/pkg/utils"
)

type Service interface {
	CreateQuest(ctx context.Context, creatorID string, draft domain.QuestDraft) (*domain.Quest, error)
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
	GetActiveQuests(ctx context.Context) ([]domain.Quest, error)
}

type Lifecycle interface {
	CompleteQuest(ctx context.Context, questID int64, helperID string) (*domain.Completion, error)
}

type QuestHandler struct {
	questService Service
	lifecycle    Lifecycle
}

func New(questService Service, lifecycle Lifecycle) *QuestHandler {
	return &QuestHandler{
		questService: questService,
		lifecycle:    lifecycle,
	}
}

// CreateQuest godoc
//
//	@Summary		Publish a quest
//	@Description	Create an active quest owned by the authenticated user. It can be completed for 30 minutes.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateQuestRequestDTO	true	"Quest payload"
//	@Success		201		{object}	dto.QuestDTO
//	@Failure		400		{object}	utils.Response	"Invalid quest"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/quests [post]
func (h *QuestHandler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateQuestRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quest, err := h.questService.CreateQuest(r.Context(), userID, req.Draft())
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewQuestDTO(quest))
}

// GetActiveQuests godoc
//
//	@Summary		List active quests
//	@Description	List quests that can still be completed, soonest expiry first.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.QuestDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/quests [get]
func (h *QuestHandler) GetActiveQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := h.questService.GetActiveQuests(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQuestDTOs(quests))
}

// GetQuest godoc
//
//	@Summary		Get a quest
//	@Tags			Quests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Quest id"
//	@Success		200	{object}	dto.QuestDTO
//	@Failure		400	{object}	utils.Response	"Invalid quest id"
//	@Failure		404	{object}	utils.Response	"Quest not found"
//	@Router			/api/quests/{id} [get]
func (h *QuestHandler) GetQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := questID(w, r)
	if !ok {
		return
	}
	quest, err := h.questService.GetQuest(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQuestDTO(quest))
}

// CompleteQuest godoc
//
//	@Summary		Complete a quest
//	@Description	Mark the quest completed and credit its reward to the authenticated user.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Quest id"
//	@Success		200	{object}	dto.CompletionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid quest id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Quest not found or expired"
//	@Failure		409	{object}	utils.Response	"Quest already completed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/quests/{id}/complete [post]
func (h *QuestHandler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := questID(w, r)
	if !ok {
		return
	}

	completion, err := h.lifecycle.CompleteQuest(r.Context(), id, userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCompletionResponseDTO(completion))
}

func questID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, domain.ErrInvalidQuestID)
		return 0, false
	}
	return id, true
}
